package archetypes

import (
	"github.com/automoto/pollo/components"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
		components.Hitbox,
		components.Health,
		components.Physics,
		components.Animation,
		components.Sprite,
		components.Timers,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Hitbox,
		components.Health,
		components.Physics,
		components.Animation,
		components.Sprite,
		components.Timers,
	)
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Enemy,
		components.Boss,
		components.Object,
		components.Hitbox,
		components.Health,
		components.Physics,
		components.Animation,
		components.Sprite,
		components.Timers,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Animation,
		components.Sprite,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Pickup,
		components.Object,
		components.Hitbox,
		components.Animation,
		components.Sprite,
	)
	BottlePickup = newArchetype(
		tags.BottlePickup,
		components.Pickup,
		components.Object,
		components.Hitbox,
		components.Animation,
		components.Sprite,
	)
	StatusBar = newArchetype(
		tags.StatusBar,
		components.StatusBar,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	GameState = newArchetype(
		components.GameState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *engine.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.World.Create(all...))
}
