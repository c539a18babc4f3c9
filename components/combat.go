package components

import (
	"time"

	"github.com/voidwalk/revenant/config"
	"github.com/yohamta/donburi"
)

// CombatData tracks the melee combo state machine. Generation increases on
// every attack start; scheduled attack-end callbacks compare it so a stale
// reset from a superseded attack is a no-op.
type CombatData struct {
	IsAttacking  bool
	ComboCount   int
	LastAttackAt time.Time
	Generation   uint64

	// The attack currently playing
	Active config.AttackSpec

	// Feedback for the hit-detection collaborator and the HUD
	LastDamage int
	LastKind   string
}

var Combat = donburi.NewComponentType[CombatData]()
