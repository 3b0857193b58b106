package factory

import (
	"log"

	"github.com/automoto/pollo/archetypes"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns a chicken. Unknown kinds fall back to a normal chicken,
// and a spawn without a position is scattered along the level.
func CreateEnemy(ecs *engine.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	kind := cfg.EnemyKind(spawn.Kind)
	if kind != cfg.KindNormal && kind != cfg.KindSmall {
		log.Printf("Warning: unknown enemy kind %q, using %q", spawn.Kind, cfg.KindNormal)
		kind = cfg.KindNormal
	}
	rules := cfg.KindConfig(kind)

	enemy := archetypes.Enemy.Spawn(ecs)

	x, y := spawn.X, spawn.Y
	if x <= 0 {
		x = cfg.Level.ChickenMinX + ecs.Rand.Float64()*cfg.Level.ChickenSpread
	}
	if y == 0 {
		y = rules.Y
	}
	addObject(ecs, enemy, x, y, rules.Width, rules.Height, tags.ResolvEnemy)
	components.Hitbox.SetValue(enemy, components.HitboxData{Insets: gamemath.Insets(rules.Hitbox)})

	speed := spawn.Speed
	if speed <= 0 {
		speed = rules.MinSpeed + ecs.Rand.Float64()*(rules.MaxSpeed-rules.MinSpeed)
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:         kind,
		Rules:        rules,
		Speed:        speed,
		RemovalDelay: rules.RemovalDelay,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Energy:  1,
		Max:     1,
		LastHit: components.NeverHit,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		RestY:    y,
		Category: cfg.CategoryEnemy,
		OnGround: true,
	})
	components.Timers.SetValue(enemy, components.NewTimers())
	components.Animation.Set(enemy, GenerateAnimations(rules.Name, cfg.Walk))

	return enemy
}
