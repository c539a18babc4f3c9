package systems

import (
	"github.com/voidwalk/revenant/clock"
	"github.com/voidwalk/revenant/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTime samples the injected clock into the Time singleton.
// Must run first in the system order.
func UpdateTime(e *ecs.ECS) {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	t := components.Time.Get(entry)
	if t.Clock == nil {
		return
	}
	t.Now = t.Clock.Now()
}

// GetTime returns the Time singleton, or nil when the scene has not been
// configured yet.
func GetTime(e *ecs.ECS) *components.TimeData {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return nil
	}
	return components.Time.Get(entry)
}

// GetScheduler returns the scheduler singleton, or nil before configuration.
func GetScheduler(e *ecs.ECS) *clock.Scheduler {
	entry, ok := components.Scheduler.First(e.World)
	if !ok {
		return nil
	}
	return components.Scheduler.Get(entry)
}

// UpdateScheduler drains due delayed callbacks. Runs after movement
// integration and before state classification so a frame's delayed effects
// land in a deterministic spot.
func UpdateScheduler(e *ecs.ECS) {
	t := GetTime(e)
	s := GetScheduler(e)
	if t == nil || s == nil {
		return
	}
	s.RunDue(t.Now)
}

func playerEntry(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Motion.First(e.World)
	if !ok {
		return nil
	}
	return entry
}
