package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var projectileQuery = query.NewQuery(filter.Contains(tags.Projectile))

// UpdateProjectiles moves each airborne bottle and splashes it on the first
// live enemy it overlaps, or on the ground. A splashed bottle is inert.
func UpdateProjectiles(ecs *engine.ECS) {
	for _, e := range collect(ecs, projectileQuery) {
		if !e.Valid() || components.Projectile.Get(e).HasSplashed {
			continue
		}
		updateProjectile(ecs, e)
	}
}

func updateProjectile(ecs *engine.ECS, e *donburi.Entry) {
	projectile := components.Projectile.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	obj.X += projectile.Direction * projectile.Speed
	if obj.Space != nil {
		obj.Update()
	}

	box := components.BoxOf(e)
	for _, enemy := range nearby(ecs, e, tags.ResolvEnemy, tags.Enemy) {
		if !collidable(enemy) {
			continue
		}
		enemyBox := components.BoxOf(enemy)
		if !gamemath.Overlaps(box, enemyBox) {
			continue
		}

		// Center on the enemy
		target := components.Object.Get(enemy)
		obj.X = target.X + target.W/2 - obj.W/2
		obj.Y = target.Y + target.H/2 - obj.H/2
		splash(ecs, e)

		switch components.Enemy.Get(enemy).Kind {
		case cfg.KindBoss:
			DamageBoss(ecs, enemy)
		default:
			KillEnemy(ecs, enemy)
		}
		return
	}

	if physics.OnGround || obj.Y >= physics.RestY {
		splash(ecs, e)
	}
}

func splash(ecs *engine.ECS, e *donburi.Entry) {
	components.Projectile.Get(e).HasSplashed = true

	physics := components.Physics.Get(e)
	physics.VelocityX = 0
	physics.VelocityY = 0
	physics.Gravity = 0

	setAnimation(ecs, e, cfg.Splash)
	PlaySFX(ecs, cfg.SoundSplash)
	scheduleRemoval(ecs, e, cfg.Projectile.Removal)
}
