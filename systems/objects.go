package systems

import (
	"github.com/automoto/pollo/components"
	"github.com/automoto/pollo/engine"
)

// UpdateObjects refreshes every collision object's cells in the space.
func UpdateObjects(ecs *engine.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object != nil {
			obj.Update()
		}
	}
}
