package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/yohamta/donburi"
)

// UpdateTimers clears the character's stomp flags once their grace expires.
// Boss step deadlines are consumed by UpdateBossSequence.
func UpdateTimers(ecs *engine.ECS) {
	e, ok := characterEntry(ecs)
	if !ok {
		return
	}
	timers := components.Timers.Get(e)
	character := components.Character.Get(e)
	now := ecs.Now()

	if timers.Fired(components.TimerJustStomped, now) {
		character.JustStomped = false
	}
	if timers.Fired(components.TimerStompInvulnerable, now) {
		character.StompInvulnerable = false
	}
}

// HaltAll stops the game: every actor's timers are cancelled, every
// animation stops, the loops stop and pending removals complete.
func HaltAll(ecs *engine.ECS) {
	components.Timers.Each(ecs.World, func(e *donburi.Entry) {
		components.Timers.Get(e).CancelAll()
	})
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		components.Animation.Get(e).Halted = true
	})
	if e, ok := characterEntry(ecs); ok {
		components.Character.Get(e).Walking = false
	}
	StopLoop(ecs, cfg.SoundWalking)
	StopLoop(ecs, cfg.SoundMusic)
	flushDeaths(ecs)
	ecs.Stop()
}
