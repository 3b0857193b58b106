package factory

import (
	"github.com/automoto/pollo/archetypes"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

func CreateBoss(ecs *engine.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	rules := cfg.KindConfig(cfg.KindBoss)
	boss := archetypes.Boss.Spawn(ecs)

	x := spawn.X
	if x == 0 {
		x = cfg.Boss.StartX
	}
	y := cfg.Boss.RestY[cfg.PhaseNormal]

	addObject(ecs, boss, x, y, rules.Width, rules.Height, tags.ResolvEnemy)
	components.Hitbox.SetValue(boss, components.HitboxData{Insets: gamemath.Insets(rules.Hitbox)})
	components.Enemy.SetValue(boss, components.EnemyData{
		Kind:         cfg.KindBoss,
		Rules:        rules,
		RemovalDelay: rules.RemovalDelay,
	})
	components.Boss.SetValue(boss, components.BossData{
		Phase:     cfg.PhaseNormal,
		PatrolDir: -1,
	})
	components.Health.SetValue(boss, components.HealthData{
		Energy:  cfg.Boss.Energy,
		Max:     cfg.Boss.Energy,
		LastHit: components.NeverHit,
	})
	components.Physics.SetValue(boss, components.PhysicsData{
		RestY:    y,
		Category: cfg.CategoryEnemy,
		OnGround: true,
	})
	components.Timers.SetValue(boss, components.NewTimers())
	components.Animation.Set(boss, GenerateAnimations("boss", cfg.Alert))

	return boss
}
