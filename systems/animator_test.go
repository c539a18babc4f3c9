package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
)

func TestWeaponMovesToBackWhileSprinting(t *testing.T) {
	w := newTestWorld(t)

	if w.pose().Weapon != components.SocketHand {
		t.Fatalf("initial socket = %v, want hand", w.pose().Weapon)
	}

	w.stepN(60, cfg.ActionForward, cfg.ActionSprint)
	if w.state().Current != cfg.Sprinting {
		t.Fatalf("state = %v, want sprinting", w.state().Current)
	}
	if w.pose().Weapon != components.SocketBack {
		t.Errorf("socket while sprinting = %v, want back", w.pose().Weapon)
	}

	// Dropping sprint returns the weapon to the hand
	w.stepN(10, cfg.ActionForward)
	if w.pose().Weapon != components.SocketHand {
		t.Errorf("socket after sprint = %v, want hand", w.pose().Weapon)
	}
}

func TestSocketOnlyChangesOnTransition(t *testing.T) {
	w := newTestWorld(t)

	w.stepN(60, cfg.ActionForward, cfg.ActionSprint)
	w.pose().Weapon = components.SocketHand // Outside interference

	// Still sprinting: no transition, so the animator must not touch it
	w.stepN(5, cfg.ActionForward, cfg.ActionSprint)
	if w.pose().Weapon != components.SocketHand {
		t.Error("socket reassigned without a state transition")
	}
}

func TestGaitSwingsLegsInAntiphase(t *testing.T) {
	w := newTestWorld(t)

	w.stepN(40, cfg.ActionForward)
	if w.state().Current != cfg.Walking {
		t.Fatalf("state = %v, want walking", w.state().Current)
	}

	// Sample two instants; at least one must have the thighs split
	split := false
	for i := 0; i < 10; i++ {
		w.step(cfg.ActionForward)
		seg := w.pose().Segments
		if seg.LeftThigh[0]*seg.RightThigh[0] < -1e-4 {
			split = true
			break
		}
	}
	if !split {
		t.Error("thighs never swung in opposite directions")
	}
}

func TestShinsNeverHyperextend(t *testing.T) {
	w := newTestWorld(t)

	w.stepN(30, cfg.ActionForward, cfg.ActionSprint)
	for i := 0; i < 60; i++ {
		w.step(cfg.ActionForward, cfg.ActionSprint)
		seg := w.pose().Segments
		if seg.LeftShin[0] < 0 || seg.RightShin[0] < 0 {
			t.Fatalf("shin bent forward: left %v right %v", seg.LeftShin[0], seg.RightShin[0])
		}
	}
}

func TestAttackHoldsWeaponArm(t *testing.T) {
	w := newTestWorld(t)

	w.step(cfg.ActionAttackLight)

	pose := w.pose()
	if !pose.ArmHold {
		t.Fatal("arm not held during the attack")
	}
	want := cfg.Combat.Light[0].ArmTarget
	if pose.Segments.RightArm != (mgl64.Vec3{want[0], want[1], want[2]}) {
		t.Errorf("right arm = %v, want %v", pose.Segments.RightArm, want)
	}
	if pose.WeaponTween == nil {
		t.Error("weapon swing tween not started")
	}
}

func TestWeaponSnapsBackAfterSwing(t *testing.T) {
	w := newTestWorld(t)

	w.step(cfg.ActionAttackLight)
	w.step()
	if w.pose().WeaponRot == (mgl64.Vec3{}) {
		t.Fatal("weapon rotation never left the socket preset")
	}

	w.stepN(frames(cfg.Combat.Light[0].Duration.Seconds()) + 5)
	pose := w.pose()
	if pose.WeaponTween != nil {
		t.Error("weapon tween still alive after the swing")
	}
	if pose.WeaponRot != (mgl64.Vec3{}) {
		t.Errorf("weapon rotation = %v, want snapped back to zero", pose.WeaponRot)
	}
}

func TestArmRecoveryRunsAfterAttack(t *testing.T) {
	w := newTestWorld(t)

	w.step(cfg.ActionAttackLight)
	w.stepN(frames(cfg.Combat.Light[0].Duration.Seconds()) + 1)

	pose := w.pose()
	if pose.ArmHold {
		t.Fatal("arm still held after the attack ended")
	}
	if pose.ArmRecover == nil {
		t.Fatal("arm recovery tween not started")
	}

	w.stepN(frames(cfg.Anim.ArmRecovery) + 2)
	if w.pose().ArmRecover != nil {
		t.Error("arm recovery never finished")
	}
}

func TestIdleBreathingMovesTorso(t *testing.T) {
	w := newTestWorld(t)

	moved := false
	var last float64
	for i := 0; i < 90; i++ {
		w.step()
		torso := w.pose().Segments.Torso[0]
		if i > 0 && torso != last {
			moved = true
		}
		last = torso
	}
	if !moved {
		t.Error("idle torso never moved with breathing")
	}
}
