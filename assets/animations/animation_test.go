package animations

import (
	"testing"
	"time"

	"github.com/automoto/pollo/config"
)

func TestLoopingAnimation(t *testing.T) {
	a := NewAnimation(config.AnimationDef{Frames: []string{"a", "b", "c"}, FrameDuration: 100 * time.Millisecond, Loop: true})

	a.Update(0)
	if a.Image() != "a" {
		t.Fatalf("first frame = %s", a.Image())
	}
	a.Update(50 * time.Millisecond)
	if a.Image() != "a" {
		t.Fatalf("advanced early")
	}
	for i, want := range []string{"b", "c", "a"} {
		a.Update(time.Duration(i+1) * 100 * time.Millisecond)
		if a.Image() != want {
			t.Fatalf("step %d = %s, want %s", i, a.Image(), want)
		}
	}
	if !a.Looped || a.Done() {
		t.Fatalf("looped = %v done = %v", a.Looped, a.Done())
	}
}

func TestFrozenAnimation(t *testing.T) {
	a := NewAnimation(config.AnimationDef{Frames: []string{"a", "b"}, FrameDuration: 10 * time.Millisecond})
	for now := time.Duration(0); now <= 100*time.Millisecond; now += 10 * time.Millisecond {
		a.Update(now)
	}
	if a.Image() != "b" || !a.Done() {
		t.Fatalf("frame = %s done = %v", a.Image(), a.Done())
	}
	a.Restart()
	if a.Image() != "a" || a.Done() {
		t.Fatalf("restart did not rewind")
	}
}

func TestEmptyAnimation(t *testing.T) {
	a := NewAnimation(config.AnimationDef{})
	if a.Update(time.Second) || a.Image() != "" {
		t.Fatalf("empty animation should be inert")
	}
}
