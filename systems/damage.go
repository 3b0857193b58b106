package systems

import (
	"log"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/yohamta/donburi"
)

// KillEnemy is the generic chicken death. It is a no-op on an enemy that is
// already dead, and the boss only takes damage through DamageBoss.
func KillEnemy(ecs *engine.ECS, e *donburi.Entry) {
	health := components.Health.Get(e)
	if health.Dead {
		return
	}
	enemy := components.Enemy.Get(e)
	if enemy.Kind == cfg.KindBoss {
		log.Printf("Warning: KillEnemy called on boss, use DamageBoss")
		return
	}

	health.Dead = true
	health.Energy = 0
	health.LastHit = ecs.Now()
	enemy.IgnoreCollisions = true
	enemy.Speed = 0

	PlaySFX(ecs, cfg.SoundHit)
	setAnimation(ecs, e, cfg.Die)

	obj := components.Object.Get(e)
	if enemy.Rules != nil {
		obj.Y += enemy.Rules.DeathNudge
	}

	components.Timers.Get(e).CancelAll()
	scheduleRemoval(ecs, e, enemy.RemovalDelay)
}

// DamageCharacter applies contact damage unless the character is inside its
// hurt window or stomp invulnerability. Returns true if damage was applied.
func DamageCharacter(ecs *engine.ECS, e *donburi.Entry, amount int) bool {
	health := components.Health.Get(e)
	if health.Dead {
		return false
	}
	character := components.Character.Get(e)
	if health.IsHurt(ecs.Now(), cfg.Character.HurtWindow) || character.StompInvulnerable {
		return false
	}
	applyCharacterDamage(ecs, e, amount)
	return true
}

// DamageCharacterFull applies damage ignoring the hurt window. Used by the
// boss jump attack.
func DamageCharacterFull(ecs *engine.ECS, e *donburi.Entry, amount int) bool {
	if components.Health.Get(e).Dead {
		return false
	}
	applyCharacterDamage(ecs, e, amount)
	return true
}

func applyCharacterDamage(ecs *engine.ECS, e *donburi.Entry, amount int) {
	now := ecs.Now()
	health := components.Health.Get(e)
	character := components.Character.Get(e)

	health.Energy = gamemath.ClampEnergy(health.Energy-amount, health.Max)
	health.LastHit = now

	if now-character.LastHurtSFX >= cfg.Character.HurtWindow {
		PlaySFX(ecs, cfg.SoundHurt)
		character.LastHurtSFX = now
	}
	SetBar(ecs, cfg.BarHealth, percentOf(health.Energy, health.Max))

	if health.Energy == 0 {
		health.Dead = true
		setAnimation(ecs, e, cfg.Die)
		if character.Walking {
			character.Walking = false
			StopLoop(ecs, cfg.SoundWalking)
		}
	}
}

func percentOf(value, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(value) * 100 / float64(max)
}
