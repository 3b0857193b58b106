package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DeathData marks an entity waiting to be removed. It stays in the world,
// rendered but inert, until RemoveAt.
type DeathData struct {
	RemoveAt time.Duration
}

var Death = donburi.NewComponentType[DeathData]()
