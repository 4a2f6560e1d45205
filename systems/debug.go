package systems

import (
	"fmt"
	"image/color"

	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/fonts"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/flintgame/flint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a face source per size
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the local
// character's ability state. Toggled with F1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	view := newViewport(components.Camera.Get(cameraEntry), screen)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).Collision; level != nil {
			for _, obj := range level.Objects() {
				if !view.visible(obj.X, obj.Y, obj.W, obj.H) {
					continue
				}
				strokeRect(screen, obj.X+view.camX, obj.Y+view.camY, obj.W, obj.H, debugColor(obj))
			}
		}
	}

	playerEntry, ok := tags.LocalPlayer.First(ecs.World)
	if !ok {
		return
	}
	c := components.Character.Get(playerEntry)
	v := c.Body.Velocity()
	lines := []string{
		fmt.Sprintf("jumps %d/%d  phase %s  hold %.2f", c.Ability.CurrentJumpCount(), c.Ability.MaxJumpCount(), c.Ability.Phase(), c.Ability.RemainingHold()),
		fmt.Sprintf("dash cooldown %v  facing %s", c.Ability.DashOnCooldown(), c.Ability.Facing()),
		fmt.Sprintf("vel %.2f, %.2f  grounded %v", v.X, v.Y, c.Body.IsGrounded()),
	}
	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - 6 - 10*(len(lines)-1)
	for i, line := range lines {
		text.Draw(screen, line, face, 4, y+10*i, cfg.Yellow)
	}
}

func debugColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(charsim.TagSolid):
		return cfg.Grey
	case obj.HasTags(charsim.TagRamp):
		return cfg.Orange
	case obj.HasTags(charsim.TagPlatform):
		return cfg.Brown
	case obj.HasTags(charsim.TagCharacter):
		return cfg.Blue
	}
	return cfg.Cyan
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, c, false)
	vector.DrawFilledRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(h), c, false)
	vector.DrawFilledRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)
}
