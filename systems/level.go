package systems

import (
	"github.com/flintgame/flint/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the pre-rendered tile background.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Asset == nil || level.Asset.Background == nil {
		return
	}

	camX, camY := components.Camera.Get(cameraEntry).Offset(screen.Bounds().Dx(), screen.Bounds().Dy())
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(camX, camY)
	screen.DrawImage(level.Asset.Background, opts)
}
