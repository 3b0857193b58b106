package factory

import (
	"github.com/automoto/pollo/archetypes"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

func CreateCharacter(ecs *engine.ECS) *donburi.Entry {
	c := archetypes.Character.Spawn(ecs)
	conf := cfg.Character

	addObject(ecs, c, conf.StartX, conf.StartY, conf.Width, conf.Height, tags.ResolvCharacter)
	components.Hitbox.SetValue(c, components.HitboxData{Insets: gamemath.Insets(conf.Hitbox)})
	components.Health.SetValue(c, components.HealthData{
		Energy:  conf.MaxEnergy,
		Max:     conf.MaxEnergy,
		LastHit: components.NeverHit,
	})
	components.Physics.SetValue(c, components.PhysicsData{
		Gravity:  conf.Gravity,
		RestY:    conf.RestY,
		Category: cfg.CategoryCharacter,
	})
	components.Character.SetValue(c, components.CharacterData{
		LastActionAt: ecs.Now(),
		LastHurtSFX:  components.NeverHit,
	})
	components.Timers.SetValue(c, components.NewTimers())
	components.Animation.Set(c, GenerateAnimations("character", cfg.Idle))

	return c
}
