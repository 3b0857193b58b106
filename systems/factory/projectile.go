package factory

import (
	"github.com/automoto/pollo/archetypes"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

// CreateProjectile throws a bottle from the character in the direction it faces.
func CreateProjectile(ecs *engine.ECS, owner *donburi.Entry) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	conf := cfg.Projectile

	ownerObj := components.Object.Get(owner)
	direction := 1.0
	offset := conf.OffsetRight
	if components.Sprite.Get(owner).Mirrored {
		direction = -1
		offset = conf.OffsetLeft
	}

	addObject(ecs, p, ownerObj.X+offset, ownerObj.Y+conf.OffsetY, conf.Width, conf.Height, tags.ResolvProjectile)
	components.Projectile.SetValue(p, components.ProjectileData{
		Direction: direction,
		Speed:     conf.Speed,
	})
	components.Physics.SetValue(p, components.PhysicsData{
		VelocityY: -conf.LaunchSpeed,
		Gravity:   conf.Gravity,
		RestY:     conf.GroundY,
		Category:  cfg.CategoryProjectile,
	})
	components.Sprite.SetValue(p, components.SpriteData{Mirrored: direction < 0})
	components.Animation.Set(p, GenerateAnimations("bottle", cfg.Rotate))

	return p
}
