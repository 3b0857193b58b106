package factory

import (
	"github.com/automoto/pollo/archetypes"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/yohamta/donburi"
)

func CreateStatusBar(ecs *engine.ECS, kind cfg.BarKind, layout cfg.StatusBarLayout, pct float64) *donburi.Entry {
	bar := archetypes.StatusBar.Spawn(ecs)

	data := components.StatusBarData{
		Kind:   kind,
		Images: cfg.StatusBarImages[kind],
		Strict: kind == cfg.BarBoss,
		Layout: layout,
	}
	data.SetPercentage(pct)
	data.Displayed = data.Percentage
	components.StatusBar.SetValue(bar, data)

	return bar
}
