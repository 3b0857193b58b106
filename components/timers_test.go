package components

import (
	"testing"
	"time"
)

func TestTimerFiresOnce(t *testing.T) {
	timers := NewTimers()
	timers.Start(TimerJustStomped, 300*time.Millisecond)

	if !timers.Pending(TimerJustStomped, 100*time.Millisecond) {
		t.Fatalf("timer not pending before deadline")
	}
	if timers.Fired(TimerJustStomped, 299*time.Millisecond) {
		t.Fatalf("fired early")
	}
	if !timers.Fired(TimerJustStomped, 300*time.Millisecond) {
		t.Fatalf("did not fire at deadline")
	}
	if timers.Fired(TimerJustStomped, time.Second) {
		t.Fatalf("fired twice")
	}
	if timers.Pending(TimerJustStomped, time.Second) {
		t.Fatalf("still pending after firing")
	}
}

func TestTimerRestartReplacesDeadline(t *testing.T) {
	timers := NewTimers()
	timers.Start(TimerBossStep, 100*time.Millisecond)
	timers.Start(TimerBossStep, 500*time.Millisecond)

	if timers.Fired(TimerBossStep, 200*time.Millisecond) {
		t.Fatalf("old deadline fired")
	}
	if timers.Len() != 1 {
		t.Fatalf("len = %d, want 1", timers.Len())
	}
}

func TestCancelAll(t *testing.T) {
	var timers TimersData
	timers.Start(TimerJustStomped, time.Second)
	timers.Start(TimerStompInvulnerable, time.Second)
	timers.Cancel(TimerJustStomped)
	if timers.Len() != 1 {
		t.Fatalf("len after cancel = %d, want 1", timers.Len())
	}

	timers.CancelAll()
	if timers.Len() != 0 || timers.Fired(TimerStompInvulnerable, 2*time.Second) {
		t.Fatalf("timers survived CancelAll")
	}
}
