package systems

import (
	"time"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/yohamta/donburi"
)

// UpdateGameState watches for the end of the level. On game over or victory
// it waits for the death animation to play, then halts the game.
func UpdateGameState(ecs *engine.ECS) {
	state := getOrCreateGameState(ecs)
	now := ecs.Now()

	switch state.State {
	case cfg.GamePlaying:
		if char, ok := characterEntry(ecs); ok && components.Health.Get(char).Dead {
			state.State = cfg.GameOver
			state.Outcome = cfg.GameOver
			state.EndAt = now + endDelay(char, 7)
			return
		}
		if state.BossDefeated && state.Victory {
			boss, _ := bossEntry(ecs)
			state.State = cfg.GameVictory
			state.Outcome = cfg.GameVictory
			state.EndAt = now + endDelay(boss, 3)
		}

	case cfg.GameOver, cfg.GameVictory:
		if now < state.EndAt {
			return
		}
		outcome := state.State
		state.State = cfg.GameHalted
		HaltAll(ecs)
		if outcome == cfg.GameOver {
			PlaySFX(ecs, cfg.SoundGameOver)
		}
	}
}

// endDelay is the frame count of the actor's death animation times the end
// screen frame duration. frames is used when the actor has none.
func endDelay(e *donburi.Entry, frames int) time.Duration {
	if e != nil && e.Valid() && e.HasComponent(components.Animation) {
		if anim, ok := components.Animation.Get(e).Animations[cfg.Die]; ok && len(anim.Frames) > 0 {
			frames = len(anim.Frames)
		}
	}
	return time.Duration(frames) * cfg.Timing.EndScreenFrame
}
