package scenes

import (
	"github.com/flintgame/flint/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PawnFactory spawns a playable character at the n-th spawn point.
type PawnFactory func(ecs *ecs.ECS, spawn int) *donburi.Entry

// GameMode decides which character a local player controls.
type GameMode struct {
	Name        string
	DefaultPawn PawnFactory
}

// FlintGameMode plays as Flint.
func FlintGameMode() GameMode {
	return GameMode{
		Name:        "Flint",
		DefaultPawn: factory.CreateFlint,
	}
}
