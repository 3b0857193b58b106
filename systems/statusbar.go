package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

// SetBar sets the percentage of the HUD bar of the given kind, if present.
func SetBar(ecs *engine.ECS, kind cfg.BarKind, pct float64) {
	tags.StatusBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.StatusBar.Get(e)
		if bar.Kind != kind {
			return
		}
		bar.SetPercentage(pct)
		bar.StartFill(float32(cfg.StatusBars.Smoothing.Milliseconds()))
	})
}

// UpdateStatusBars eases each bar's displayed fill toward its percentage.
func UpdateStatusBars(ecs *engine.ECS) {
	dt := float32(cfg.Timing.Frame) / 1e6
	tags.StatusBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.StatusBar.Get(e)
		if bar.Fill == nil {
			return
		}
		v, done := bar.Fill.Update(dt)
		bar.Displayed = float64(v)
		if done {
			bar.Fill = nil
			bar.Displayed = bar.Percentage
		}
	})
}
