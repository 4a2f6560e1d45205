package systems

import (
	"math"

	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/config"
	"github.com/flintgame/flint/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the local character, leading in the facing direction
// while it moves.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.LocalPlayer.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	c := components.Character.Get(playerEntry)

	// Freeze the look-ahead while standing so the view doesn't drift back.
	if math.Abs(c.Body.Velocity().X) > config.Camera.LookAheadSpeedThreshold {
		target := c.Ability.Facing().Sign() * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	followTarget(e, camera, obj.X+obj.W/2+camera.LookAheadX, obj.Y+obj.H/2)
}

// followTarget eases the camera toward x, y while keeping the view inside
// the level. Levels smaller than the screen are centred.
func followTarget(e *ecs.ECS, camera *components.CameraData, x, y float64) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelW, levelH := components.Level.Get(levelEntry).Size()

	x = clampAxis(x, float64(config.C.Width), float64(levelW))
	y = clampAxis(y, float64(config.C.Height), float64(levelH))

	camera.Position.X += (x - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (y - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampAxis(v, view, level float64) float64 {
	lo, hi := view/2, level-view/2
	if lo > hi {
		return level / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
