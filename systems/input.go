package systems

import (
	"github.com/automoto/pollo/components"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/systems/factory"
)

// UpdateInput samples the input source once per frame.
// Must run BEFORE UpdateCharacter in the system order.
func UpdateInput(ecs *engine.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = ecs.Input.Poll()
}

func getOrCreateInput(ecs *engine.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = factory.CreateInput(ecs)
	}
	return components.Input.Get(entry)
}
