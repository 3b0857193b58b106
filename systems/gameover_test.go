package systems

import (
	"testing"
	"time"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
)

func TestGameOverHaltsAfterDeathAnimation(t *testing.T) {
	ecs := newTestECS(t)
	char := standingCharacter(ecs, 100)
	boss := bossAt(ecs, 200)
	StartLoop(ecs, cfg.SoundMusic)
	UpdateBoss(ecs)

	DamageCharacterFull(ecs, char, 100)
	UpdateGameState(ecs)

	state := getOrCreateGameState(ecs)
	if state.State != cfg.GameOver || state.Outcome != cfg.GameOver {
		t.Fatalf("state = %v", state.State)
	}
	// Seven death frames
	if state.EndAt != 1400*time.Millisecond {
		t.Fatalf("end at %v, want 1.4s", state.EndAt)
	}

	ecs.Update(1399 * time.Millisecond)
	UpdateGameState(ecs)
	if state.State != cfg.GameOver {
		t.Fatalf("halted early")
	}

	ecs.Update(time.Millisecond)
	UpdateGameState(ecs)
	if state.State != cfg.GameHalted {
		t.Fatalf("state = %v, want halted", state.State)
	}
	if !ecs.Stopped() {
		t.Fatalf("scheduler still running")
	}
	if components.Timers.Get(boss).Len() != 0 {
		t.Fatalf("boss timers survived the halt")
	}
	if !components.Animation.Get(char).Halted {
		t.Fatalf("animations still running")
	}
	if countSFX(ecs, cfg.SoundGameOver) != 1 {
		t.Fatalf("game over sound not queued")
	}
	if GetOrCreateAudio(ecs).Looping[cfg.SoundMusic] {
		t.Fatalf("music still looping")
	}
}

func TestVictoryWaitsForBossDeath(t *testing.T) {
	ecs := newTestECS(t)
	standingCharacter(ecs, 100)
	boss := bossAt(ecs, 2500)
	components.Health.Get(boss).Energy = 20

	DamageBoss(ecs, boss)
	UpdateGameState(ecs)

	state := getOrCreateGameState(ecs)
	if state.State != cfg.GameVictory {
		t.Fatalf("state = %v, want victory", state.State)
	}
	if state.EndAt != 600*time.Millisecond {
		t.Fatalf("end at %v, want 0.6s", state.EndAt)
	}

	ecs.Update(600 * time.Millisecond)
	UpdateGameState(ecs)
	if state.State != cfg.GameHalted || state.Outcome != cfg.GameVictory {
		t.Fatalf("state = %v outcome = %v", state.State, state.Outcome)
	}
	if boss.Valid() {
		t.Fatalf("dying boss left in the halted world")
	}
	if countSFX(ecs, cfg.SoundGameOver) != 0 {
		t.Fatalf("game over sound on victory")
	}
}

func TestGameOverCheckedBeforeVictory(t *testing.T) {
	ecs := newTestECS(t)
	char := standingCharacter(ecs, 100)
	state := getOrCreateGameState(ecs)
	state.BossDefeated, state.Victory = true, true

	DamageCharacterFull(ecs, char, 100)
	UpdateGameState(ecs)

	if state.State != cfg.GameOver {
		t.Fatalf("state = %v, want game over", state.State)
	}
}
