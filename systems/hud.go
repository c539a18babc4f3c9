package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin    = 10
	hudBarWidth  = 110
	hudBarHeight = 8
	hudPipSize   = 10
	hudPipGap    = 4
)

// DrawHUD renders the state readout, combo pips and ability cooldown bars
// in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry := playerEntry(e)
	if entry == nil {
		return
	}
	state := components.State.Get(entry)
	actions := components.Actions.Get(entry)
	combat := components.Combat.Get(entry)

	ebitenutil.DebugPrintAt(screen, state.Current.String(), hudMargin, hudMargin)

	// Combo pips light up with the chain
	pipY := float32(hudMargin + 20)
	for i := 0; i < cfg.Combat.MaxCombo; i++ {
		clr := cfg.DarkGrey
		if i < combat.ComboCount {
			clr = cfg.Yellow
		}
		x := float32(hudMargin + i*(hudPipSize+hudPipGap))
		vector.DrawFilledRect(screen, x, pipY, hudPipSize, hudPipSize, clr, false)
	}

	drawCooldownBar(screen, hudMargin+40, "slide", actions.CanSlide, actions.SlideCooldown, cfg.Slide.Cooldown)
	drawCooldownBar(screen, hudMargin+60, "dash", actions.CanDash, 0, 1)
	drawCooldownBar(screen, hudMargin+80, "jump", actions.CanJump, actions.JumpCooldown, cfg.Player.JumpCooldown)

	if combat.IsAttacking {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s  %d dmg", combat.LastKind, combat.LastDamage),
			hudMargin, hudMargin+100)
	}
}

// drawCooldownBar shows how close an ability is to being ready. A full
// green bar means ready; a partial grey bar is the remaining cooldown.
func drawCooldownBar(screen *ebiten.Image, y int, label string, ready bool, remaining, total float64) {
	vector.DrawFilledRect(screen,
		hudMargin, float32(y),
		hudBarWidth, hudBarHeight,
		cfg.DarkGrey, false)

	ratio := 1.0
	if !ready && total > 0 {
		ratio = gamemath.Clamp(1-remaining/total, 0, 1)
	}
	clr := cfg.Grey
	if ready {
		clr = cfg.Green
	}
	vector.DrawFilledRect(screen,
		hudMargin, float32(y),
		float32(float64(hudBarWidth)*ratio), hudBarHeight,
		clr, false)

	ebitenutil.DebugPrintAt(screen, label, hudMargin+hudBarWidth+6, y-4)
}
