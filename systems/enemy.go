package systems

import (
	"github.com/automoto/pollo/components"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies drifts every live chicken left at its own speed.
func UpdateEnemies(ecs *engine.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Boss) || components.Health.Get(e).Dead {
			return
		}
		enemy := components.Enemy.Get(e)
		components.Object.Get(e).X -= enemy.Speed
	})
}
