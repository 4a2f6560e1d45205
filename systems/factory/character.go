package factory

import (
	"fmt"

	"github.com/flintgame/flint/archetypes"
	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns a character described by c at the n-th spawn point
// of the current level. The level entity must exist.
func CreateCharacter(ecs *ecs.ECS, c cfg.CharacterConfig, spawn int) *donburi.Entry {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		panic(fmt.Sprintf("cannot spawn %s without a level", c.Name))
	}
	level := components.Level.Get(levelEntry)

	character := archetypes.Character.Spawn(ecs)

	body := level.Collision.SpawnBody(spawn, c.Tuning, tags.ResolvPlayer)
	body.Object.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: body.Object})

	components.Character.SetValue(character, components.CharacterData{
		Name:    c.Name,
		Ability: ability.New(c.Ability, body, GetOrCreateScheduler(ecs)),
		Body:    body,
		Local:   -1,
	})

	components.Animation.Set(character, GenerateAnimations(c.SpriteKey, c.FrameWidth, c.FrameHeight))

	return character
}

// CreateFlint spawns the Flint character.
func CreateFlint(ecs *ecs.ECS, spawn int) *donburi.Entry {
	return CreateCharacter(ecs, cfg.Flint, spawn)
}
