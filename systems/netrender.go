package systems

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/fonts"
	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a face source per size
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawNetworkedCharacters renders replicated characters at their smoothed
// NetPosition. Remote characters are tinted in join order.
func DrawNetworkedCharacters(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	view := newViewport(components.Camera.Get(cameraEntry), screen)
	w, h := characterSize()
	smallFont := fonts.Small.Get()
	colorIndex := 0

	esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetPosition) || !entry.HasComponent(netcomponents.NetCharacter) {
			return
		}
		pos := netcomponents.NetPosition.Get(entry)
		x, y := pos.X, pos.Y
		c := netcomponents.NetCharacter.Get(entry)

		var tint *color.RGBA
		if !c.IsLocal {
			t := cfg.RemoteColors[colorIndex%len(cfg.RemoteColors)]
			tint = &t
			colorIndex++
		}
		if !view.visible(x, y, w, h) {
			return
		}

		var anim *components.AnimationData
		if entry.HasComponent(components.Animation) {
			anim = components.Animation.Get(entry)
		}
		drawCharacter(screen, view, anim, x, y, w, h, ability.Facing(c.Facing), tint, cfg.BrightGreen)

		if nid := esync.GetNetworkId(entry); nid != nil {
			label := "ID:" + strconv.Itoa(int(*nid))
			labelX := int(x+w/2+view.camX) - len(label)*3
			labelY := int(y+view.camY) - 4
			text.Draw(screen, label, smallFont, labelX, labelY, cfg.White)
		}
	})
}

// DrawNetworkHUD shows the connection summary and the local character's
// ability state.
func DrawNetworkHUD(e *ecs.ECS, screen *ebiten.Image) {
	entityCount := 0
	var local *netcomponents.NetCharacterData
	esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
		entityCount++
		if entry.HasComponent(netcomponents.NetCharacter) {
			if c := netcomponents.NetCharacter.Get(entry); c.IsLocal {
				local = c
			}
		}
	})

	if local != nil {
		drawAbilityHUD(screen, local.JumpsLeft(), local.MaxJumpCount, dashReadiness(local.DashOnCooldown))
	}

	info := fmt.Sprintf("Online - Characters: %d", entityCount)
	text.Draw(screen, info, fonts.Small.Get(), 4, screen.Bounds().Dy()-6, cfg.LightGreen)
}

// dashReadiness maps the replicated cooldown flag to a bar fill. The server
// only sends the flag, so a cooling dash shows an empty bar.
func dashReadiness(onCooldown bool) float64 {
	if onCooldown {
		return 0
	}
	return 1
}
