package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
)

// System is a fixed-cadence update.
type System func(ecs *ECS)

// Renderer draws the world into a sink.
type Renderer func(ecs *ECS, sink RenderSink)

type scheduled struct {
	every time.Duration
	next  time.Duration
	fn    System
}

// ECS couples a donburi world with the collaborators systems need and a
// multi-rate scheduler over a virtual clock.
type ECS struct {
	World  donburi.World
	Clock  *Clock
	Rand   *rand.Rand
	Sound  SoundSink
	Input  InputSource
	Images ImageCache

	systems   []*scheduled
	renderers []Renderer
	stopped   bool
	warned    map[string]struct{}
}

func NewECS(world donburi.World) *ECS {
	return &ECS{
		World:  world,
		Clock:  &Clock{},
		Rand:   rand.New(rand.NewSource(1)),
		Sound:  NopSound,
		Input:  NoInput,
		Images: ImageSet{},
	}
}

// Now is the current virtual time.
func (e *ECS) Now() time.Duration { return e.Clock.Now() }

// AddSystem runs fn every period, first at the current time.
func (e *ECS) AddSystem(every time.Duration, fn System) *ECS {
	if every <= 0 {
		every = time.Millisecond
	}
	e.systems = append(e.systems, &scheduled{every: every, next: e.Clock.Now(), fn: fn})
	return e
}

func (e *ECS) AddRenderer(fn Renderer) *ECS {
	e.renderers = append(e.renderers, fn)
	return e
}

// Update advances the clock by dt. Due systems run at their own deadline in
// deadline order; systems due at the same instant run in registration order.
func (e *ECS) Update(dt time.Duration) {
	target := e.Clock.Now() + dt
	for !e.stopped {
		next, ok := e.nextDeadline(target)
		if !ok {
			break
		}
		e.Clock.set(next)
		for _, s := range e.systems {
			if s.next == next {
				s.fn(e)
				s.next += s.every
			}
		}
	}
	e.Clock.set(target)
}

// Stop ends scheduling once the current batch of due systems has run. The
// clock still advances.
func (e *ECS) Stop() { e.stopped = true }

func (e *ECS) Stopped() bool { return e.stopped }

// WarnOnce logs a warning the first time key is seen.
func (e *ECS) WarnOnce(key, format string, args ...any) {
	if _, ok := e.warned[key]; ok {
		return
	}
	if e.warned == nil {
		e.warned = make(map[string]struct{})
	}
	e.warned[key] = struct{}{}
	log.Printf("Warning: "+format, args...)
}

func (e *ECS) nextDeadline(limit time.Duration) (time.Duration, bool) {
	found := false
	var best time.Duration
	for _, s := range e.systems {
		if s.next > limit {
			continue
		}
		if !found || s.next < best {
			best = s.next
			found = true
		}
	}
	return best, found
}

func (e *ECS) Draw(sink RenderSink) {
	for _, r := range e.renderers {
		r(e, sink)
	}
}
