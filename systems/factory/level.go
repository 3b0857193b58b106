package factory

import (
	"fmt"

	"github.com/automoto/pollo/archetypes"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns every actor described by the level and the HUD bars.
func CreateLevel(ecs *engine.ECS, level *leveldata.Level) (*donburi.Entry, error) {
	if level == nil {
		return nil, fmt.Errorf("create level: nil level")
	}

	entry := archetypes.Level.Spawn(ecs)
	levelData := &components.LevelData{Level: level}
	for _, c := range level.Clouds {
		levelData.Clouds = append(levelData.Clouds, components.Cloud{X: c.X, Y: c.Y})
	}
	components.Level.Set(entry, levelData)

	// Space covers the level plus the area behind the start
	CreateSpace(ecs, level.Width+cfg.C.Width, cfg.C.Height+cfg.C.Height/2, 48, 48)

	CreateCharacter(ecs)
	for _, spawn := range level.Enemies {
		CreateEnemy(ecs, spawn)
	}
	for _, spawn := range level.Boss {
		CreateBoss(ecs, spawn)
	}
	for _, p := range level.Coins {
		CreateCoin(ecs, p)
	}
	for _, p := range level.Bottles {
		CreateBottlePickup(ecs, p)
	}

	CreateStatusBar(ecs, cfg.BarHealth, cfg.StatusBars.Health, 100)
	CreateStatusBar(ecs, cfg.BarBottles, cfg.StatusBars.Bottles, 0)
	CreateStatusBar(ecs, cfg.BarCoins, cfg.StatusBars.Coins, 0)
	if len(level.Boss) > 0 {
		CreateStatusBar(ecs, cfg.BarBoss, cfg.StatusBars.Boss, 100)
	}

	return entry, nil
}
