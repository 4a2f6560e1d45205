package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // smoothed horizontal offset in the facing direction
}

// Offset returns the translation from world to screen space.
func (c *CameraData) Offset(screenW, screenH int) (float64, float64) {
	return float64(screenW)/2 - c.Position.X, float64(screenH)/2 - c.Position.Y
}

var Camera = donburi.NewComponentType[CameraData]()
