package systems

import (
	"testing"

	cfg "github.com/voidwalk/revenant/config"
)

// attack presses light and lets the current attack play out fully.
func attack(w *testWorld) {
	w.step(cfg.ActionAttackLight)
	w.stepN(frames(w.combat().Active.Duration.Seconds()) + 1)
}

func TestLightComboAdvances(t *testing.T) {
	w := newTestWorld(t)

	w.step(cfg.ActionAttackLight)
	c := w.combat()
	if !c.IsAttacking {
		t.Fatal("attack did not start")
	}
	if c.ComboCount != 1 || c.LastKind != "slash" {
		t.Fatalf("combo = %d kind = %q, want 1 slash", c.ComboCount, c.LastKind)
	}

	w.stepN(frames(cfg.Combat.Light[0].Duration.Seconds()) + 1)
	if c.IsAttacking {
		t.Fatal("first attack did not end")
	}

	w.step(cfg.ActionAttackLight)
	if c.ComboCount != 2 || c.LastKind != "backslash" {
		t.Fatalf("combo = %d kind = %q, want 2 backslash", c.ComboCount, c.LastKind)
	}

	w.stepN(frames(cfg.Combat.Light[1].Duration.Seconds()) + 1)
	w.step(cfg.ActionAttackLight)
	if c.ComboCount != 3 || c.LastKind != "thrust" {
		t.Fatalf("combo = %d kind = %q, want 3 thrust", c.ComboCount, c.LastKind)
	}

	// The finisher's end resets the chain
	w.stepN(frames(cfg.Combat.Light[2].Duration.Seconds()) + 1)
	if c.IsAttacking {
		t.Fatal("finisher did not end")
	}
	if c.ComboCount != 0 {
		t.Errorf("combo after finisher = %d, want 0", c.ComboCount)
	}
}

func TestComboWindowExpires(t *testing.T) {
	w := newTestWorld(t)

	attack(w)
	w.stepN(frames(cfg.Combat.ComboResetTimeout.Seconds()) + 1)

	w.step(cfg.ActionAttackLight)
	c := w.combat()
	if c.ComboCount != 1 || c.LastKind != "slash" {
		t.Errorf("combo = %d kind = %q, want restart at 1 slash", c.ComboCount, c.LastKind)
	}
}

func TestAttackPressIgnoredWhileAttacking(t *testing.T) {
	w := newTestWorld(t)

	w.step(cfg.ActionAttackLight)
	gen := w.combat().Generation

	w.step()
	w.step(cfg.ActionAttackLight)

	c := w.combat()
	if c.Generation != gen {
		t.Errorf("generation = %d, want %d", c.Generation, gen)
	}
	if c.ComboCount != 1 {
		t.Errorf("combo = %d, want 1", c.ComboCount)
	}
}

func TestHeavyGroundedResetsCombo(t *testing.T) {
	w := newTestWorld(t)

	attack(w)
	if w.combat().ComboCount != 1 {
		t.Fatalf("combo = %d, want 1", w.combat().ComboCount)
	}

	w.step(cfg.ActionAttackHeavy)
	c := w.combat()
	if c.LastKind != "heavy" {
		t.Errorf("kind = %q, want heavy", c.LastKind)
	}
	if c.ComboCount != 0 {
		t.Errorf("combo = %d, want 0", c.ComboCount)
	}
	if c.LastDamage != cfg.Combat.Heavy.Damage {
		t.Errorf("damage = %d, want %d", c.LastDamage, cfg.Combat.Heavy.Damage)
	}
}

func TestHeavyAirbornePicksAerial(t *testing.T) {
	w := newTestWorld(t)
	motion := w.motion()
	motion.Grounded = false
	motion.Position[1] = 5

	before := motion.Velocity.Y()
	w.step(cfg.ActionAttackHeavy)

	c := w.combat()
	if c.LastKind != "aerial" {
		t.Fatalf("kind = %q, want aerial", c.LastKind)
	}
	want := before + cfg.Combat.Aerial.Lift + cfg.Player.Gravity*testDelta
	if got := motion.Velocity.Y(); got != want {
		t.Errorf("velocity.y = %v, want %v", got, want)
	}
}

func TestAttackAddsMomentumImpulse(t *testing.T) {
	w := newTestWorld(t)
	w.motion().Yaw = 0 // Facing +z

	w.step(cfg.ActionAttackLight)

	if got := w.motion().Momentum.Z(); got < cfg.Combat.Light[0].Impulse*0.8 {
		t.Errorf("momentum.z = %v, want near %v", got, cfg.Combat.Light[0].Impulse)
	}
}

func TestStaleAttackEndIsIgnored(t *testing.T) {
	w := newTestWorld(t)

	w.step(cfg.ActionAttackLight)
	w.combat().Generation++

	w.stepN(frames(cfg.Combat.Light[0].Duration.Seconds()) + 5)

	if !w.combat().IsAttacking {
		t.Error("stale end callback cleared a superseding attack")
	}
}
