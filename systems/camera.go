package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/yohamta/donburi"
)

// updateCamera keeps the character at a fixed offset from the left edge.
// It runs after the character moves, dead or alive.
func updateCamera(ecs *engine.ECS, character *donburi.Entry) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	camera.Position.X = -components.Object.Get(character).X + cfg.Level.CameraOffset
}
