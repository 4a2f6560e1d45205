package factory

import (
	"github.com/flintgame/flint/archetypes"
	"github.com/flintgame/flint/assets"
	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity, fills its collision space and creates
// an entity for every platform so the object systems can move them.
func CreateLevel(ecs *ecs.ECS, asset *assets.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	collision := charsim.NewLevel(asset.Data)
	components.Level.SetValue(level, components.LevelData{
		Asset:     asset,
		Collision: collision,
	})

	moving := make(map[*resolv.Object]*charsim.MovingPlatform, len(collision.Platforms))
	for _, p := range collision.Platforms {
		moving[p.Object] = p
	}
	for _, obj := range collision.Objects() {
		if !obj.HasTags(charsim.TagPlatform) {
			continue
		}
		if p, ok := moving[obj]; ok {
			CreateFloatingPlatform(ecs, p)
		} else {
			CreatePlatform(ecs, obj)
		}
	}

	return level
}
