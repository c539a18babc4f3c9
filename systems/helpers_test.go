package systems

import (
	"math"
	"testing"
	"time"

	"github.com/voidwalk/revenant/archetypes"
	"github.com/voidwalk/revenant/clock"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDelta = 1.0 / 60

// testWorld wires the gameplay systems against a manual clock. Input is fed
// through step(), which writes the action buffers directly instead of
// polling the keyboard.
type testWorld struct {
	ecs    *ecs.ECS
	clk    *clock.Manual
	player *donburi.Entry
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())

	timekeeper := archetypes.Timekeeper.Spawn(e)
	clk := clock.NewManual(time.Unix(0, 0))
	components.Time.SetValue(timekeeper, components.TimeData{
		Clock: clk,
		Delta: testDelta,
	})
	components.Scheduler.SetValue(timekeeper, clock.Scheduler{})

	archetypes.InputReader.Spawn(e)

	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{
		Yaw:     math.Pi,
		Forward: gamemath.YawForward(math.Pi),
		Right:   gamemath.YawRight(math.Pi),
	})

	player := archetypes.Player.Spawn(e)
	components.Motion.SetValue(player, components.MotionData{Grounded: true})
	components.Actions.SetValue(player, components.ActionsData{
		CanJump:  true,
		CanSlide: true,
		CanDash:  true,
	})
	components.State.SetValue(player, components.StateData{
		Current:  cfg.Idle,
		Previous: cfg.StateNone,
	})
	components.Pose.SetValue(player, components.PoseData{
		Weapon: components.SocketHand,
	})

	return &testWorld{ecs: e, clk: clk, player: player}
}

// step advances one frame with the given actions held.
func (w *testWorld) step(held ...cfg.ActionID) {
	input := GetInput(w.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}

	w.clk.Advance(time.Second / 60)
	UpdateTime(w.ecs)
	UpdateSettings(w.ecs)
	UpdateCamera(w.ecs)
	UpdateActions(w.ecs)
	UpdateSlide(w.ecs)
	UpdateDash(w.ecs)
	UpdateCombat(w.ecs)
	UpdateLocomotion(w.ecs)
	UpdateScheduler(w.ecs)
	UpdateStates(w.ecs)
	UpdateAnimator(w.ecs)
}

// stepN advances n frames with the same actions held every frame.
func (w *testWorld) stepN(n int, held ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		w.step(held...)
	}
}

func (w *testWorld) motion() *components.MotionData {
	return components.Motion.Get(w.player)
}

func (w *testWorld) actions() *components.ActionsData {
	return components.Actions.Get(w.player)
}

func (w *testWorld) combat() *components.CombatData {
	return components.Combat.Get(w.player)
}

func (w *testWorld) pose() *components.PoseData {
	return components.Pose.Get(w.player)
}

func (w *testWorld) state() *components.StateData {
	return components.State.Get(w.player)
}

func (w *testWorld) speed() float64 {
	return gamemath.HorizontalLen(w.motion().Momentum)
}

func frames(seconds float64) int {
	return int(math.Ceil(seconds/testDelta)) + 1
}
