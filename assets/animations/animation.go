package animations

import (
	"time"

	"github.com/automoto/pollo/config"
)

// Animation steps through a list of frame images on a fixed duration.
type Animation struct {
	Frames           []string
	FrameDuration    time.Duration
	nextAt           time.Duration
	frame            int
	started          bool
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the frame when its duration has elapsed. Returns true if
// the frame changed.
func (a *Animation) Update(now time.Duration) bool {
	if len(a.Frames) == 0 {
		return false
	}
	if !a.started {
		a.started = true
		a.nextAt = now + a.FrameDuration
		return false
	}
	if now < a.nextAt {
		return false
	}
	a.nextAt = now + a.FrameDuration
	if a.frame+1 >= len(a.Frames) {
		a.Looped = true
		if a.FreezeOnComplete {
			return false
		}
		a.frame = 0
		return true
	}
	a.frame++
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

// Image returns the current frame path, or "" for an empty animation.
func (a *Animation) Image() string {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.frame%len(a.Frames)]
}

// Done reports whether a frozen animation has reached its last frame.
func (a *Animation) Done() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = 0
	a.started = false
	a.Looped = false
}

// Duration is the time to play every frame once.
func (a *Animation) Duration() time.Duration {
	return time.Duration(len(a.Frames)) * a.FrameDuration
}

func NewAnimation(def config.AnimationDef) *Animation {
	return &Animation{
		Frames:           def.Frames,
		FrameDuration:    def.FrameDuration,
		FreezeOnComplete: !def.Loop,
	}
}

// NewSet builds one animation per state from an actor's definitions.
func NewSet(defs map[config.StateID]config.AnimationDef) map[config.StateID]*Animation {
	set := make(map[config.StateID]*Animation, len(defs))
	for state, def := range defs {
		set[state] = NewAnimation(def)
	}
	return set
}
