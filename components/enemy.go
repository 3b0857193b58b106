package components

import (
	"time"

	"github.com/automoto/pollo/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind  config.EnemyKind
	Rules *config.EnemyKindConfig // Cached reference to kind configuration

	// Set together with death so a second contact in the same tick is ignored
	IgnoreCollisions bool
	Speed            float64 // horizontal drift, px per frame
	RemovalDelay     time.Duration
}

var Enemy = donburi.NewComponentType[EnemyData]()
