package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions resolves character/enemy contact once per world tick.
// Every enemy is checked for a stomp before any side hit is considered, and
// a stomp ends the tick.
func UpdateCollisions(ecs *engine.ECS) {
	e, ok := characterEntry(ecs)
	if !ok || components.Health.Get(e).Dead {
		return
	}

	character := components.Character.Get(e)
	physics := components.Physics.Get(e)
	charBox := components.BoxOf(e)
	enemies := nearby(ecs, e, tags.ResolvEnemy, tags.Enemy)

	for _, enemy := range enemies {
		if !collidable(enemy) || !components.Enemy.Get(enemy).Rules.Stompable {
			continue
		}
		if classify(charBox, enemy, physics.VelocityY) != gamemath.ContactStomp {
			continue
		}
		stomp(ecs, e, enemy)
		return
	}

	if character.JustStomped {
		return
	}

	for _, enemy := range enemies {
		if !collidable(enemy) || !components.Enemy.Get(enemy).Rules.ContactDamage {
			continue
		}
		if classify(charBox, enemy, physics.VelocityY) == gamemath.ContactSide {
			DamageCharacter(ecs, e, cfg.Character.ContactDamage)
			break
		}
	}
}

func collidable(enemy *donburi.Entry) bool {
	if !enemy.Valid() || components.Health.Get(enemy).Dead {
		return false
	}
	data := components.Enemy.Get(enemy)
	return !data.IgnoreCollisions && data.Rules != nil
}

func classify(charBox gamemath.Box, enemy *donburi.Entry, velY float64) gamemath.Contact {
	rules := components.Enemy.Get(enemy).Rules
	return gamemath.ClassifyContact(charBox, components.BoxOf(enemy), velY, gamemath.ContactRule{
		MinHorizontalOverlap: rules.MinHorizontalOverlap,
		MinVerticalOverlap:   rules.MinVerticalOverlap,
	})
}

func stomp(ecs *engine.ECS, e, enemy *donburi.Entry) {
	KillEnemy(ecs, enemy)

	physics := components.Physics.Get(e)
	physics.VelocityY = cfg.Character.StompBounce
	physics.OnGround = false

	character := components.Character.Get(e)
	character.JustStomped = true
	character.StompInvulnerable = true

	timers := components.Timers.Get(e)
	until := ecs.Now() + cfg.Character.StompGrace
	timers.Start(components.TimerJustStomped, until)
	timers.Start(components.TimerStompInvulnerable, until)
}
