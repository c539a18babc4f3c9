package scenes

import (
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/voidwalk/revenant/archetypes"
	"github.com/voidwalk/revenant/clock"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/voidwalk/revenant/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaScene runs the character in an open test arena.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *cfg.Watcher
	saved        *systems.SavedSettings
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, watcher *cfg.Watcher, saved *systems.SavedSettings) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, watcher: watcher, saved: saved}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.pollTuning()
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// pollTuning drains pending tuning-file events without blocking the frame.
func (as *ArenaScene) pollTuning() {
	if as.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-as.watcher.Events:
			if !ok {
				as.watcher = nil
				return
			}
			if err := cfg.LoadTuningFile(path); err != nil {
				log.Printf("tuning reload %s: %v", path, err)
			} else {
				log.Printf("tuning reloaded from %s", path)
			}
		case err, ok := <-as.watcher.Errors:
			if !ok {
				as.watcher = nil
				return
			}
			log.Printf("tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Frame order: sample time and input first, resolve actions before
	// locomotion integrates, run due callbacks before states are
	// classified, pose last.
	e.AddSystem(systems.UpdateTime)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateActions)
	e.AddSystem(systems.UpdateSlide)
	e.AddSystem(systems.UpdateDash)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateLocomotion)
	e.AddSystem(systems.UpdateScheduler)
	e.AddSystem(systems.UpdateStates)
	e.AddSystem(systems.UpdateAnimator)
	e.AddSystem(systems.UpdatePersistence)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawCharacter)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	as.ecs = e

	timekeeper := archetypes.Timekeeper.Spawn(e)
	components.Time.SetValue(timekeeper, components.TimeData{
		Clock: clock.Monotonic{},
		Delta: 1.0 / 60,
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
	components.Motion.SetValue(player, components.MotionData{
		Grounded:    true,
		GroundLevel: cfg.Player.GroundLevel,
	})
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

	systems.ApplySavedSettings(e, as.saved)
}
