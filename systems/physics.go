package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates gravity and clamps each body to its own ground.
func UpdatePhysics(ecs *engine.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Gravity == 0 && physics.VelocityY == 0 {
			return
		}

		obj := components.Object.Get(e)
		if obj.Y >= physics.RestY && physics.VelocityY >= 0 {
			land(physics, obj)
			return
		}

		obj.Y, physics.VelocityY = gamemath.StepGravity(obj.Y, physics.VelocityY, physics.Gravity)
		physics.OnGround = false
		if obj.Y >= physics.RestY && physics.VelocityY >= 0 {
			land(physics, obj)
		}
	})
}

func land(physics *components.PhysicsData, obj *components.ObjectData) {
	physics.VelocityY = 0
	physics.OnGround = true

	// A projectile keeps the position where it crossed the ground and
	// UpdateProjectiles splashes it there
	if physics.Category == cfg.CategoryProjectile {
		physics.Gravity = 0
		return
	}
	obj.Y = physics.RestY
}
