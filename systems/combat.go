package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat reads the attack inputs and starts attacks.
func UpdateCombat(e *ecs.ECS) {
	input := GetInput(e)

	components.Combat.Each(e.World, func(entry *donburi.Entry) {
		if GetAction(input, cfg.ActionAttackLight).JustPressed {
			PerformAttack(e, entry, cfg.AttackLight)
		}
		if GetAction(input, cfg.ActionAttackHeavy).JustPressed {
			PerformAttack(e, entry, cfg.AttackHeavy)
		}
	})
}

// PerformAttack starts a light or heavy attack on the entity. A light
// attack advances the combo inside the combo window; a heavy attack picks
// the grounded or aerial variant and resets the combo. No-op while an
// attack is already playing.
func PerformAttack(e *ecs.ECS, entry *donburi.Entry, kind cfg.AttackKind) {
	t := GetTime(e)
	sched := GetScheduler(e)
	if t == nil || sched == nil {
		return
	}
	if !entry.HasComponent(components.Combat) || !entry.HasComponent(components.Motion) {
		return
	}
	combat := components.Combat.Get(entry)
	motion := components.Motion.Get(entry)

	if combat.IsAttacking {
		return
	}

	// Combo window: too long since the last hit resets the chain first.
	if !combat.LastAttackAt.IsZero() && t.Now.Sub(combat.LastAttackAt) > cfg.Combat.ComboResetTimeout {
		combat.ComboCount = 0
	}

	var spec cfg.AttackSpec
	switch kind {
	case cfg.AttackLight:
		step := combat.ComboCount % cfg.Combat.MaxCombo
		spec = cfg.Combat.Light[step]
		combat.ComboCount++
	case cfg.AttackHeavy:
		if motion.Grounded {
			spec = cfg.Combat.Heavy
		} else {
			spec = cfg.Combat.Aerial
		}
		combat.ComboCount = 0
	}

	combat.IsAttacking = true
	combat.LastAttackAt = t.Now
	combat.Active = spec
	combat.LastDamage = spec.Damage
	combat.LastKind = spec.Name
	combat.Generation++
	gen := combat.Generation

	// Immediate impulse along the attack direction: current movement, or
	// facing when stationary.
	dir := gamemath.Flatten(motion.Momentum)
	if dir.Len() == 0 {
		dir = gamemath.YawForward(motion.Yaw)
	}
	motion.Momentum = motion.Momentum.Add(dir.Mul(spec.Impulse))
	if spec.Lift != 0 && !motion.Grounded {
		motion.Velocity[1] += spec.Lift
	}

	if entry.HasComponent(components.Pose) {
		pose := components.Pose.Get(entry)
		pose.ArmTarget = vec3(spec.ArmTarget)
		pose.ArmHold = true
		pose.ArmRecover = nil
		pose.WeaponTarget = vec3(spec.WeaponTarget)
		pose.WeaponTween = gween.New(0, 1, float32(spec.Duration.Seconds()), ease.OutCubic)
	}

	// The attack-end reset is a scheduled callback keyed to this attack's
	// generation; a newer attack makes it a no-op.
	sched.After(t.Now, spec.Duration, func() {
		if combat.Generation != gen {
			return
		}
		combat.IsAttacking = false
		if combat.ComboCount >= cfg.Combat.MaxCombo {
			combat.ComboCount = 0
		}
		if entry.HasComponent(components.Pose) {
			pose := components.Pose.Get(entry)
			pose.ArmHold = false
			pose.ArmRecover = gween.New(1, 0, float32(cfg.Anim.ArmRecovery), ease.Linear)
		}
	})
}

func vec3(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}
