package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type CharacterData struct {
	CollectedBottles int
	CollectedCoins   int

	StompInvulnerable bool
	JustStomped       bool

	ThrowBlocked bool // set on throw, cleared when the throw input is released
	Walking      bool
	LastActionAt time.Duration
	LastHurtSFX  time.Duration
}

var Character = donburi.NewComponentType[CharacterData]()
