package factory

import (
	"github.com/flintgame/flint/archetypes"
	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/shared/timers"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateScheduler returns the world's timer scheduler, creating it on
// first use. Every character in the world shares it.
func GetOrCreateScheduler(ecs *ecs.ECS) *timers.Scheduler {
	entry, ok := components.Timers.First(ecs.World)
	if !ok {
		entry = archetypes.Timers.Spawn(ecs)
		components.Timers.SetValue(entry, components.TimersData{Scheduler: timers.New()})
	}
	return components.Timers.Get(entry).Scheduler
}
