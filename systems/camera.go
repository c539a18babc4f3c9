package systems

import (
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera turns the orbit camera with the camera keys and refreshes the
// flattened forward/right basis movement input is expressed in.
func UpdateCamera(e *ecs.ECS) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	t := GetTime(e)
	if t == nil {
		return
	}

	input := GetInput(e)
	turn := cfg.Camera.TurnSpeed * t.Delta
	if settings := GetOrCreateSettings(e); settings.CameraInvert {
		turn = -turn
	}
	if GetAction(input, cfg.ActionCameraLeft).Pressed {
		cam.Yaw = gamemath.WrapAngle(cam.Yaw + turn)
	}
	if GetAction(input, cfg.ActionCameraRight).Pressed {
		cam.Yaw = gamemath.WrapAngle(cam.Yaw - turn)
	}

	cam.Forward = gamemath.YawForward(cam.Yaw)
	cam.Right = gamemath.YawRight(cam.Yaw)
}
