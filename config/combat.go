package config

import "time"

// AttackKind distinguishes the two attack inputs.
type AttackKind int

const (
	AttackLight AttackKind = iota
	AttackHeavy
)

// AttackSpec describes one attack variant: how long it runs, what it deals,
// how hard it pushes the character along the attack direction, and the pose
// targets the animator blends the weapon arm and weapon toward.
type AttackSpec struct {
	Name     string
	Duration time.Duration
	Damage   int
	Impulse  float64 // Horizontal momentum added along the attack direction
	Lift     float64 // Vertical velocity added (aerial variant)

	// Pose targets in radians (XYZ)
	ArmTarget    [3]float64
	WeaponTarget [3]float64
}

// CombatConfig contains the combo tables and combo window tuning
type CombatConfig struct {
	// A follow-up light attack inside this window advances the combo
	// instead of restarting it.
	ComboResetTimeout time.Duration

	MaxCombo int

	// Light combo steps indexed by combo count at the time of the attack
	Light [3]AttackSpec

	Heavy  AttackSpec // Grounded heavy
	Aerial AttackSpec // Airborne heavy
}

var Combat CombatConfig

func initCombat() {
	Combat = CombatConfig{
		ComboResetTimeout: 900 * time.Millisecond,
		MaxCombo:          3,

		Light: [3]AttackSpec{
			{
				Name:         "slash",
				Duration:     350 * time.Millisecond,
				Damage:       8,
				Impulse:      2.0,
				ArmTarget:    [3]float64{-1.6, 0, 0.3},
				WeaponTarget: [3]float64{-1.2, 0, 0},
			},
			{
				Name:         "backslash",
				Duration:     400 * time.Millisecond,
				Damage:       10,
				Impulse:      2.5,
				ArmTarget:    [3]float64{-1.2, 0.6, 0},
				WeaponTarget: [3]float64{-0.9, 1.1, 0},
			},
			{
				Name:         "thrust",
				Duration:     500 * time.Millisecond,
				Damage:       15,
				Impulse:      3.5,
				ArmTarget:    [3]float64{-1.5, 0, -0.4},
				WeaponTarget: [3]float64{-1.5, 0, 0.5},
			},
		},

		Heavy: AttackSpec{
			Name:         "heavy",
			Duration:     700 * time.Millisecond,
			Damage:       25,
			Impulse:      5.0,
			ArmTarget:    [3]float64{-2.4, 0, 0},
			WeaponTarget: [3]float64{-2.0, 0, 0},
		},

		Aerial: AttackSpec{
			Name:         "aerial",
			Duration:     600 * time.Millisecond,
			Damage:       20,
			Impulse:      3.0,
			Lift:         4.0,
			ArmTarget:    [3]float64{-2.0, 0, 0.5},
			WeaponTarget: [3]float64{-1.8, 0.4, 0},
		},
	}
}
