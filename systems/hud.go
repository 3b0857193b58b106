package systems

import (
	"fmt"
	"sort"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

// DrawHUD draws the status bars in screen space, after DrawWorld has
// restored the camera translation.
func DrawHUD(ecs *engine.ECS, sink engine.RenderSink) {
	var bars []*components.StatusBarData
	tags.StatusBar.Each(ecs.World, func(e *donburi.Entry) {
		bars = append(bars, components.StatusBar.Get(e))
	})
	sort.Slice(bars, func(i, j int) bool { return bars[i].Kind < bars[j].Kind })

	char, hasChar := characterEntry(ecs)

	for _, bar := range bars {
		l := bar.Layout
		sink.DrawSprite(bar.Image(), l.X, l.Y, l.W, l.H, false)

		label := ""
		switch bar.Kind {
		case cfg.BarHealth:
			label = fmt.Sprintf("%.0f", bar.Displayed)
		case cfg.BarBottles:
			if hasChar {
				label = fmt.Sprintf("%d", components.Character.Get(char).CollectedBottles)
			}
		case cfg.BarCoins:
			if hasChar {
				label = fmt.Sprintf("%d", components.Character.Get(char).CollectedCoins)
			}
		}
		if label != "" {
			sink.DrawText(label, l.X+l.W+8, l.Y+l.H/2)
		}
	}
}
