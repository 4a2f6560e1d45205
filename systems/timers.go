package systems

import (
	"github.com/flintgame/flint/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the world's scheduler by one tick, firing any due
// callbacks such as dash cooldown expiry.
func UpdateTimers(ecs *ecs.ECS) {
	factory.GetOrCreateScheduler(ecs).Advance(tickSeconds())
}
