package systems

import (
	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi/ecs"
)

// NewNetCameraSystem returns an update system that follows the local
// character in networked mode. It reads NetPosition instead of the
// collision object.
func NewNetCameraSystem(localNetID func() esync.NetworkId) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)

		entity := esync.FindByNetworkId(e.World, localNetID())
		if !e.World.Valid(entity) {
			return
		}
		entry := e.World.Entry(entity)
		if !entry.HasComponent(netcomponents.NetPosition) {
			return
		}

		pos := netcomponents.NetPosition.Get(entry)
		w, h := characterSize()
		followTarget(e, camera, pos.X+w/2, pos.Y+h/2)
	}
}
