package systems

import (
	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/fonts"
	"github.com/flintgame/flint/systems/factory"
	"github.com/flintgame/flint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a face source per size
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the local character's remaining jumps and dash cooldown
// in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.LocalPlayer.First(ecs.World)
	if !ok {
		return
	}
	state := components.Character.Get(playerEntry).Ability

	readiness := state.DashReadiness(factory.GetOrCreateScheduler(ecs).Remaining(state.CooldownTimer()))

	drawAbilityHUD(screen, state.MaxJumpCount()-state.CurrentJumpCount(), state.MaxJumpCount(), readiness)
}

// drawAbilityHUD draws one pip per jump and a bar that fills as the dash
// recharges. readiness is 0..1.
func drawAbilityHUD(screen *ebiten.Image, jumpsLeft, maxJumps int, readiness float64) {
	h := cfg.HUD
	x, y := h.Margin, h.Margin

	for i := 0; i < maxJumps; i++ {
		c := h.PipEmpty
		if i < jumpsLeft {
			c = h.PipFull
		}
		px := x + float64(i)*(h.PipSize+h.PipGap)
		vector.DrawFilledRect(screen, float32(px), float32(y), float32(h.PipSize), float32(h.PipSize), c, false)
	}

	barY := y + h.PipSize + h.PipGap
	if readiness < 0 {
		readiness = 0
	}
	if readiness >= 1 {
		vector.DrawFilledRect(screen, float32(x), float32(barY), float32(h.CooldownWidth), float32(h.CooldownHeight), h.ReadyColor, false)
	} else {
		vector.DrawFilledRect(screen, float32(x), float32(barY), float32(h.CooldownWidth), float32(h.CooldownHeight), h.CooldownBg, false)
		vector.DrawFilledRect(screen, float32(x), float32(barY), float32(h.CooldownWidth*readiness), float32(h.CooldownHeight), h.CooldownFg, false)
	}

	text.Draw(screen, "DASH", fonts.Small.Get(), int(x+h.CooldownWidth+h.PipGap), int(barY+h.CooldownHeight), h.TextColor)
}
