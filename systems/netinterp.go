package systems

import (
	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewNetInterpSystem returns an update system that moves each replicated
// character from its previous snapshot position to the latest one over a
// single server tick.
func NewNetInterpSystem(tickRate func() int) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		rate := tickRate()
		if rate <= 0 {
			return
		}
		step := tickSeconds() * float64(rate)

		components.NetInterp.Each(e.World, func(entry *donburi.Entry) {
			interp := components.NetInterp.Get(entry)
			if !interp.Initialized || !entry.HasComponent(netcomponents.NetPosition) {
				return
			}
			interp.T += step
			if interp.T > 1 {
				interp.T = 1
			}
			netcomponents.NetPosition.SetValue(entry, *netcomponents.LerpNetPosition(
				netcomponents.NetPositionData{X: interp.PrevX, Y: interp.PrevY},
				netcomponents.NetPositionData{X: interp.TargetX, Y: interp.TargetY},
				interp.T,
			))
		})
	}
}

// SetInterpTarget starts a new interpolation leg toward x, y from wherever
// the character is drawn now. The first target snaps.
func SetInterpTarget(entry *donburi.Entry, x, y float64) {
	interp := components.NetInterp.Get(entry)
	if !interp.Initialized {
		*interp = components.NetInterpData{
			PrevX: x, PrevY: y,
			TargetX: x, TargetY: y,
			T:           1,
			Initialized: true,
		}
		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: x, Y: y})
		return
	}
	pos := netcomponents.NetPosition.Get(entry)
	interp.PrevX, interp.PrevY = pos.X, pos.Y
	interp.TargetX, interp.TargetY = x, y
	interp.T = 0
}
