package components

import (
	"time"

	"github.com/voidwalk/revenant/clock"
	"github.com/yohamta/donburi"
)

// TimeData is the singleton frame clock. Now is sampled from the injected
// clock once per frame; Delta stays fixed so physics integration is
// independent of frame rate variance.
type TimeData struct {
	Clock clock.Clock
	Now   time.Time
	Delta float64 // Seconds per frame
}

var Time = donburi.NewComponentType[TimeData]()

// Scheduler is the singleton delayed-callback queue, drained once per frame
// after movement integration.
var Scheduler = donburi.NewComponentType[clock.Scheduler]()
