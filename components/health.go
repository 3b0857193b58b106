package components

import (
	"math"
	"time"

	"github.com/yohamta/donburi"
)

// NeverHit is the LastHit value of an actor that has not been damaged.
const NeverHit = time.Duration(math.MinInt64 / 2)

type HealthData struct {
	Energy  int
	Max     int
	LastHit time.Duration
	Dead    bool
}

// IsHurt reports whether the actor is inside its hurt window.
func (h *HealthData) IsHurt(now, window time.Duration) bool {
	return now-h.LastHit < window
}

var Health = donburi.NewComponentType[HealthData]()
