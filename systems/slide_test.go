package systems

import (
	"math"
	"testing"

	cfg "github.com/voidwalk/revenant/config"
)

func TestSlideOverridesMomentum(t *testing.T) {
	w := newTestWorld(t)

	w.stepN(10, cfg.ActionForward)
	w.step(cfg.ActionForward, cfg.ActionSlide)

	actions := w.actions()
	if !actions.IsSliding {
		t.Fatal("slide did not start")
	}
	if actions.CanSlide {
		t.Error("slide not consumed")
	}
	if got := w.speed(); math.Abs(got-cfg.Slide.Speed) > 1e-9 {
		t.Errorf("speed = %v, want %v", got, cfg.Slide.Speed)
	}
	// Held forward, so the slide goes along camera forward (-z)
	if w.motion().Momentum.Z() >= 0 {
		t.Errorf("momentum.z = %v, want negative", w.motion().Momentum.Z())
	}
	if w.state().Current != cfg.Sliding {
		t.Errorf("state = %v, want sliding", w.state().Current)
	}
}

func TestSlideWithoutInputUsesFacing(t *testing.T) {
	w := newTestWorld(t)
	w.motion().Yaw = math.Pi / 2 // Facing +x

	w.step(cfg.ActionSlide)

	if !w.actions().IsSliding {
		t.Fatal("slide did not start")
	}
	if w.motion().Momentum.X() < cfg.Slide.Speed*0.9 {
		t.Errorf("momentum.x = %v, want near %v", w.motion().Momentum.X(), cfg.Slide.Speed)
	}
}

func TestSlideTimesOut(t *testing.T) {
	w := newTestWorld(t)

	w.stepN(frames(cfg.Slide.MaxTime)+5, cfg.ActionSlide)

	actions := w.actions()
	if actions.IsSliding {
		t.Fatal("slide still running past its window")
	}
	if actions.CanSlide {
		t.Error("slide cooldown not started")
	}
	if actions.SlideCooldown <= 0 {
		t.Errorf("slide cooldown = %v, want positive", actions.SlideCooldown)
	}
}

func TestSlideCancelKeepsMoreSpeedThanTimeout(t *testing.T) {
	cancel := func() float64 {
		w := newTestWorld(t)
		w.stepN(10, cfg.ActionSlide)
		w.step() // Release cancels
		return w.speed()
	}()
	timeout := func() float64 {
		w := newTestWorld(t)
		w.stepN(frames(cfg.Slide.MaxTime)+1, cfg.ActionSlide)
		return w.speed()
	}()

	if cancel <= timeout {
		t.Errorf("cancel keep %v not above timeout keep %v", cancel, timeout)
	}
}

func TestSlideCooldownRearms(t *testing.T) {
	w := newTestWorld(t)

	w.stepN(5, cfg.ActionSlide)
	w.step() // Cancel
	if w.actions().CanSlide {
		t.Fatal("slide not on cooldown")
	}

	w.stepN(frames(cfg.Slide.Cooldown))
	if !w.actions().CanSlide {
		t.Error("slide did not re-arm after cooldown")
	}

	w.step(cfg.ActionSlide)
	if !w.actions().IsSliding {
		t.Error("re-armed slide did not start")
	}
}

func TestSlideRequiresGround(t *testing.T) {
	w := newTestWorld(t)
	w.motion().Grounded = false

	w.step(cfg.ActionSlide)

	if w.actions().IsSliding {
		t.Error("slide started while airborne")
	}
	if !w.actions().CanSlide {
		t.Error("airborne press consumed the slide")
	}
}

func TestSlidePressWhileCoolingIsIgnored(t *testing.T) {
	w := newTestWorld(t)

	w.stepN(5, cfg.ActionSlide)
	w.step() // Cancel, cooldown starts
	w.step()
	w.step(cfg.ActionSlide)

	if w.actions().IsSliding {
		t.Error("slide started during cooldown")
	}
}
