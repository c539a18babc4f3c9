package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning mirrors the numeric tuning values that may be overridden from a
// YAML file. Nil fields leave the built-in default untouched.
type Tuning struct {
	Player *PlayerTuning `yaml:"player"`
	Slide  *SlideTuning  `yaml:"slide"`
	Dash   *DashTuning   `yaml:"dash"`
	Camera *CameraTuning `yaml:"camera"`
}

type PlayerTuning struct {
	WalkSpeed       *float64 `yaml:"walk_speed"`
	SprintSpeed     *float64 `yaml:"sprint_speed"`
	MomentumLerp    *float64 `yaml:"momentum_lerp"`
	MomentumDecay   *float64 `yaml:"momentum_decay"`
	Gravity         *float64 `yaml:"gravity"`
	JumpForce       *float64 `yaml:"jump_force"`
	DoubleJumpForce *float64 `yaml:"double_jump_force"`
	JumpCooldown    *float64 `yaml:"jump_cooldown"`
	RollDuration    *float64 `yaml:"roll_duration"`
}

type SlideTuning struct {
	Speed      *float64 `yaml:"speed"`
	MaxTime    *float64 `yaml:"max_time"`
	Cooldown   *float64 `yaml:"cooldown"`
	CancelKeep *float64 `yaml:"cancel_keep"`
}

type DashTuning struct {
	Force          *float64 `yaml:"force"`
	Duration       *float64 `yaml:"duration"`
	GroundCooldown *float64 `yaml:"ground_cooldown"`
	AirCooldown    *float64 `yaml:"air_cooldown"`
}

type CameraTuning struct {
	Distance  *float64 `yaml:"distance"`
	Height    *float64 `yaml:"height"`
	TurnSpeed *float64 `yaml:"turn_speed"`
}

// ApplyTuningBytes parses YAML tuning data and applies every present field
// over the current configuration.
func ApplyTuningBytes(data []byte) error {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	t.apply()
	return nil
}

// LoadTuningFile reads and applies a tuning override file from disk.
func LoadTuningFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	if err := ApplyTuningBytes(data); err != nil {
		return fmt.Errorf("config: apply tuning %s: %w", path, err)
	}
	return nil
}

func (t *Tuning) apply() {
	if p := t.Player; p != nil {
		setIf(&Player.WalkSpeed, p.WalkSpeed)
		setIf(&Player.SprintSpeed, p.SprintSpeed)
		setIf(&Player.MomentumLerp, p.MomentumLerp)
		setIf(&Player.MomentumDecay, p.MomentumDecay)
		setIf(&Player.Gravity, p.Gravity)
		setIf(&Player.JumpForce, p.JumpForce)
		setIf(&Player.DoubleJumpForce, p.DoubleJumpForce)
		setIf(&Player.JumpCooldown, p.JumpCooldown)
		setIf(&Player.RollDuration, p.RollDuration)
	}
	if s := t.Slide; s != nil {
		setIf(&Slide.Speed, s.Speed)
		setIf(&Slide.MaxTime, s.MaxTime)
		setIf(&Slide.Cooldown, s.Cooldown)
		setIf(&Slide.CancelKeep, s.CancelKeep)
	}
	if d := t.Dash; d != nil {
		setIf(&Dash.Force, d.Force)
		setIf(&Dash.Duration, d.Duration)
		setIf(&Dash.GroundCooldown, d.GroundCooldown)
		setIf(&Dash.AirCooldown, d.AirCooldown)
	}
	if c := t.Camera; c != nil {
		setIf(&Camera.Distance, c.Distance)
		setIf(&Camera.Height, c.Height)
		setIf(&Camera.TurnSpeed, c.TurnSpeed)
	}
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
