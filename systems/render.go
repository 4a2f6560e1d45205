package systems

import (
	"image/color"

	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// cullPadding keeps sprites from popping at the screen edges.
const cullPadding = 64.0

type viewport struct {
	camX, camY             float64
	minX, maxX, minY, maxY float64
}

func newViewport(camera *components.CameraData, screen *ebiten.Image) viewport {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := camera.Offset(w, h)
	return viewport{
		camX: camX,
		camY: camY,
		minX: -camX - cullPadding,
		maxX: -camX + float64(w) + cullPadding,
		minY: -camY - cullPadding,
		maxY: -camY + float64(h) + cullPadding,
	}
}

func (v viewport) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

// DrawCharacters renders locally simulated characters from their collision
// objects.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	view := newViewport(components.Camera.Get(cameraEntry), screen)

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		c := components.Character.Get(e)

		fallback := cfg.Blue
		if !c.Body.IsGrounded() {
			fallback = cfg.Purple
		}
		drawCharacter(screen, view, components.Animation.Get(e), o.X, o.Y, o.W, o.H, c.Ability.Facing(), nil, fallback)
	})
}

// drawCharacter draws the current frame anchored bottom-center on the
// collision box at x, y. Without a frame it fills the box instead.
func drawCharacter(screen *ebiten.Image, view viewport, anim *components.AnimationData, x, y, w, h float64, facing ability.Facing, tint *color.RGBA, fallback color.RGBA) {
	var img *ebiten.Image
	if anim != nil {
		img = anim.Frame()
	}

	if img == nil {
		if tint != nil {
			fallback = *tint
		}
		vector.DrawFilledRect(screen, float32(x+view.camX), float32(y+view.camY), float32(w), float32(h), fallback, false)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Feet line up with the bottom of the collision box.
	drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))
	if facing == ability.Left {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(x+w/2, y+h)
	drawOp.GeoM.Translate(view.camX, view.camY)

	if tint != nil {
		drawOp.ColorScale.ScaleWithColor(*tint)
	}
	screen.DrawImage(img, drawOp)
}

// DrawPlatforms fills every one-way platform, moving or not.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	view := newViewport(components.Camera.Get(cameraEntry), screen)

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		vector.DrawFilledRect(screen, float32(o.X+view.camX), float32(o.Y+view.camY), float32(o.W), float32(o.H), cfg.Brown, false)
	})
}

func characterSize() (float64, float64) {
	return cfg.Flint.Tuning.Width, cfg.Flint.Tuning.Height
}
