package components

import (
	"time"

	"github.com/automoto/pollo/config"
	"github.com/yohamta/donburi"
)

// GameStateData tracks the level outcome (singleton component).
type GameStateData struct {
	State        config.GameStateID
	Outcome      config.GameStateID // GameOver or GameVictory once decided
	EndAt        time.Duration
	BossDefeated bool
	Victory      bool
}

var GameState = donburi.NewComponentType[GameStateData]()
