package engine

import (
	"testing"
	"time"

	"github.com/yohamta/donburi"
)

func TestUpdateRunsSystemsAtTheirCadence(t *testing.T) {
	e := NewECS(donburi.NewWorld())

	var log []string
	var at []time.Duration
	e.AddSystem(10*time.Millisecond, func(e *ECS) {
		log = append(log, "fast")
		at = append(at, e.Now())
	})
	e.AddSystem(25*time.Millisecond, func(e *ECS) {
		log = append(log, "slow")
		at = append(at, e.Now())
	})

	e.Update(30 * time.Millisecond)

	wantLog := []string{"fast", "slow", "fast", "fast", "slow", "fast"}
	wantAt := []time.Duration{0, 0, 10, 20, 25, 30}
	if len(log) != len(wantLog) {
		t.Fatalf("ran %v, want %v", log, wantLog)
	}
	for i := range wantLog {
		if log[i] != wantLog[i] || at[i] != wantAt[i]*time.Millisecond {
			t.Fatalf("call %d = %s@%v, want %s@%v", i, log[i], at[i], wantLog[i], wantAt[i]*time.Millisecond)
		}
	}
	if e.Now() != 30*time.Millisecond {
		t.Fatalf("clock = %v", e.Now())
	}
}

func TestUpdateSplitAcrossCallsIsEquivalent(t *testing.T) {
	count := func(steps ...time.Duration) int {
		e := NewECS(donburi.NewWorld())
		n := 0
		e.AddSystem(7*time.Millisecond, func(*ECS) { n++ })
		for _, s := range steps {
			e.Update(s)
		}
		return n
	}

	whole := count(100 * time.Millisecond)
	split := count(33*time.Millisecond, 33*time.Millisecond, 34*time.Millisecond)
	if whole != split {
		t.Fatalf("whole = %d, split = %d", whole, split)
	}
}

func TestImageSet(t *testing.T) {
	s := NewImageSet("a.png")
	if !s.Has("a.png") || s.Has("b.png") {
		t.Fatalf("unexpected membership")
	}
}

func TestStopEndsSchedulingAfterBatch(t *testing.T) {
	e := NewECS(donburi.NewWorld())

	var ran []string
	e.AddSystem(10*time.Millisecond, func(e *ECS) {
		ran = append(ran, "stopper")
		e.Stop()
	})
	e.AddSystem(10*time.Millisecond, func(*ECS) { ran = append(ran, "after") })

	e.Update(50 * time.Millisecond)

	if len(ran) != 2 || ran[1] != "after" {
		t.Fatalf("ran %v, want one full batch", ran)
	}
	if !e.Stopped() {
		t.Fatalf("expected stopped")
	}
	if e.Now() != 50*time.Millisecond {
		t.Fatalf("clock = %v", e.Now())
	}
}
