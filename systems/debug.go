package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/voidwalk/revenant/components"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints the motion and action internals in the top-right
// corner. Toggled with the debug key.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	entry := playerEntry(e)
	if entry == nil {
		return
	}
	motion := components.Motion.Get(entry)
	actions := components.Actions.Get(entry)
	combat := components.Combat.Get(entry)
	state := components.State.Get(entry)
	sched := GetScheduler(e)
	if sched == nil {
		return
	}

	lines := []string{
		fmt.Sprintf("pos   %6.2f %6.2f %6.2f", motion.Position[0], motion.Position[1], motion.Position[2]),
		fmt.Sprintf("mom   %6.2f %6.2f %6.2f", motion.Momentum[0], motion.Momentum[1], motion.Momentum[2]),
		fmt.Sprintf("speed %6.2f  yaw %5.2f", gamemath.HorizontalLen(motion.Momentum), motion.Yaw),
		fmt.Sprintf("vel.y %6.2f  grounded %v", motion.Velocity[1], motion.Grounded),
		fmt.Sprintf("state %s  phase %.2f", state.Current, state.Phase),
		fmt.Sprintf("combo %d  attacking %v  gen %d", combat.ComboCount, combat.IsAttacking, combat.Generation),
		fmt.Sprintf("roll %v  slide %v  dash %v", actions.IsRolling, actions.IsSliding, actions.IsDashing),
		fmt.Sprintf("tasks %d  tps %.1f", sched.Pending(), ebiten.ActualTPS()),
	}

	x := screen.Bounds().Dx() - 260
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, 10+i*16)
	}
}
