package factory

import (
	"github.com/flintgame/flint/archetypes"
	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, object *resolv.Object) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	return platform
}

// CreateFloatingPlatform wraps a platform whose gween sequence moves it back
// and forth.
func CreateFloatingPlatform(ecs *ecs.ECS, p *charsim.MovingPlatform) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	p.Object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: p.Object})
	components.Platform.SetValue(platform, components.PlatformData{Moving: p})
	return platform
}
