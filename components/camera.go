package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the orbit camera state. Forward and Right are unit vectors
// flattened to the ground plane; movement input is expressed in this basis.
type CameraData struct {
	Yaw     float64
	Forward mgl64.Vec3
	Right   mgl64.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
