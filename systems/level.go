package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
)

// UpdateClouds drifts the background clouds left, wrapping past the level start.
func UpdateClouds(ecs *engine.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(entry)
	span := cfg.Level.SegmentWidth * float64(cfg.Level.Segments)

	for i := range levelData.Clouds {
		c := &levelData.Clouds[i]
		c.X -= cfg.Level.CloudSpeed
		if c.X+cfg.Level.CloudWidth < -cfg.Level.SegmentWidth {
			c.X += span
		}
	}
}
