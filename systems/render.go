package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// Viewport culling skips actors that are entirely off-screen. A small
// padding keeps sprites from popping at the edges.
const cullPadding = 64.0

// Actors are drawn in this order, back to front
var drawOrder = []*query.Query{
	query.NewQuery(filter.Contains(tags.Character)),
	query.NewQuery(filter.Contains(tags.Coin)),
	query.NewQuery(filter.Contains(tags.BottlePickup)),
	query.NewQuery(filter.Contains(tags.Enemy)),
	query.NewQuery(filter.Contains(tags.Projectile)),
}

// DrawWorld draws the level in world space: background, clouds, then the
// actors. The camera offset is applied for the duration of the call.
func DrawWorld(ecs *engine.ECS, sink engine.RenderSink) {
	camX := 0.0
	if entry, ok := components.Camera.First(ecs.World); ok {
		camX = components.Camera.Get(entry).Position.X
	}

	sink.Translate(camX, 0)
	defer sink.Translate(-camX, 0)

	drawBackground(sink)
	drawClouds(ecs, sink)

	minX := -camX - cullPadding
	maxX := -camX + float64(cfg.C.Width) + cullPadding

	for _, q := range drawOrder {
		q.Each(ecs.World, func(e *donburi.Entry) {
			drawActor(sink, e, minX, maxX)
		})
	}
}

func drawBackground(sink engine.RenderSink) {
	w := cfg.Level.SegmentWidth
	h := float64(cfg.C.Height)
	for i := -1; i < cfg.Level.Segments; i++ {
		x := float64(i) * w
		for _, layer := range cfg.BackgroundLayers {
			// One pixel of overlap hides the seams
			sink.DrawSprite(layer, x, 0, w+1, h, false)
		}
	}
}

func drawClouds(ecs *engine.ECS, sink engine.RenderSink) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	for _, c := range components.Level.Get(entry).Clouds {
		sink.DrawSprite(cfg.CloudImage, c.X, c.Y, cfg.Level.CloudWidth, cfg.Level.CloudHeight, false)
	}
}

func drawActor(sink engine.RenderSink, e *donburi.Entry, minX, maxX float64) {
	obj := components.Object.Get(e)
	if obj.X+obj.W < minX || obj.X > maxX {
		return
	}
	sprite := components.Sprite.Get(e)

	x, y, w, h := obj.X, obj.Y, obj.W, obj.H
	if e.HasComponent(components.Pickup) {
		if grow := components.Pickup.Get(e).Grow; grow != 0 {
			x -= grow / 2
			y -= grow / 2
			w += grow
			h += grow
		}
	}
	sink.DrawSprite(sprite.Image, x, y, w, h, sprite.Mirrored)
}
