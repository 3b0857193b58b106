package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type TimerID int

const (
	TimerJustStomped TimerID = iota
	TimerStompInvulnerable
	TimerBossStep
)

// TimersData is an actor's own set of pending deadlines. The deadlines go
// away with the actor, and CancelAll stops only this actor's work.
type TimersData struct {
	deadlines map[TimerID]time.Duration
}

func NewTimers() TimersData {
	return TimersData{deadlines: make(map[TimerID]time.Duration)}
}

// Start schedules id to fire at the given time, replacing any pending one.
func (t *TimersData) Start(id TimerID, at time.Duration) {
	if t.deadlines == nil {
		t.deadlines = make(map[TimerID]time.Duration)
	}
	t.deadlines[id] = at
}

// Pending reports whether id is scheduled and has not fired yet.
func (t *TimersData) Pending(id TimerID, now time.Duration) bool {
	at, ok := t.deadlines[id]
	return ok && now < at
}

// Fired reports, once, that id's deadline has passed.
func (t *TimersData) Fired(id TimerID, now time.Duration) bool {
	at, ok := t.deadlines[id]
	if !ok || now < at {
		return false
	}
	delete(t.deadlines, id)
	return true
}

func (t *TimersData) Cancel(id TimerID) {
	delete(t.deadlines, id)
}

func (t *TimersData) CancelAll() {
	clear(t.deadlines)
}

func (t *TimersData) Len() int {
	return len(t.deadlines)
}

var Timers = donburi.NewComponentType[TimersData]()
