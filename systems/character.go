package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateCharacter applies the frame's input: walking, jumping and throwing.
// It also drives the camera, the walking loop and the character animation.
func UpdateCharacter(ecs *engine.ECS) {
	e, ok := characterEntry(ecs)
	if !ok {
		return
	}
	defer updateCamera(ecs, e)

	if components.Health.Get(e).Dead {
		return
	}

	input := getOrCreateInput(ecs).Current
	character := components.Character.Get(e)
	physics := components.Physics.Get(e)
	sprite := components.Sprite.Get(e)
	obj := components.Object.Get(e)
	now := ecs.Now()

	moved := false
	if input.Right && obj.X < levelEndX(ecs) {
		obj.X += cfg.Character.Speed
		sprite.Mirrored = false
		moved = true
	}
	if input.Left && obj.X > 0 {
		obj.X -= cfg.Character.Speed
		sprite.Mirrored = true
		moved = true
	}

	if input.Jump && physics.OnGround {
		physics.VelocityY = -cfg.Character.JumpSpeed
		physics.OnGround = false
		PlaySFX(ecs, cfg.SoundJump)
	}

	handleThrow(ecs, e, input.Throw)

	if input != (engine.InputState{}) {
		character.LastActionAt = now
	}

	walking := moved && physics.OnGround
	if walking != character.Walking {
		character.Walking = walking
		if walking {
			StartLoop(ecs, cfg.SoundWalking)
		} else {
			StopLoop(ecs, cfg.SoundWalking)
		}
	}

	updateCharacterAnimation(ecs, e, moved)
}

// handleThrow throws one bottle per press. ThrowBlocked is set by a throw and
// cleared when the button is released.
func handleThrow(ecs *engine.ECS, e *donburi.Entry, pressed bool) {
	character := components.Character.Get(e)
	if !pressed {
		character.ThrowBlocked = false
		return
	}
	if character.ThrowBlocked {
		return
	}
	character.ThrowBlocked = true

	if character.CollectedBottles <= 0 {
		return
	}
	character.CollectedBottles--
	factory.CreateProjectile(ecs, e)
	PlaySFX(ecs, cfg.SoundThrow)
	SetBar(ecs, cfg.BarBottles, percentOf(character.CollectedBottles, cfg.Character.MaxBottles))
}

func updateCharacterAnimation(ecs *engine.ECS, e *donburi.Entry, moved bool) {
	health := components.Health.Get(e)
	physics := components.Physics.Get(e)
	character := components.Character.Get(e)
	now := ecs.Now()

	var state cfg.StateID
	switch {
	case health.IsHurt(now, cfg.Character.HurtWindow):
		state = cfg.Hurt
	case !physics.OnGround:
		state = cfg.Jump
	case moved:
		state = cfg.Walk
	case now-character.LastActionAt >= cfg.Character.LongIdleAfter:
		state = cfg.LongIdle
	default:
		state = cfg.Idle
	}
	setAnimation(ecs, e, state)
}
