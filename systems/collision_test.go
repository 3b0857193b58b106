package systems

import (
	"testing"
	"time"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"pgregory.net/rapid"
)

func TestSideHitRespectsHurtWindow(t *testing.T) {
	ecs := newTestECS(t)
	char := standingCharacter(ecs, 100)
	chickenAt(ecs, cfg.KindNormal, 120, 360)

	UpdateCollisions(ecs)
	if got := energy(char); got != 80 {
		t.Fatalf("energy after first hit = %d, want 80", got)
	}
	if got := components.Health.Get(char).LastHit; got != 0 {
		t.Fatalf("last hit = %v, want 0", got)
	}

	ecs.Update(200 * time.Millisecond)
	UpdateCollisions(ecs)
	if got := energy(char); got != 80 {
		t.Fatalf("energy inside hurt window = %d, want 80", got)
	}

	ecs.Update(900 * time.Millisecond)
	UpdateCollisions(ecs)
	if got := energy(char); got != 60 {
		t.Fatalf("energy after hurt window = %d, want 60", got)
	}
	if got := components.Health.Get(char).LastHit; got != 1100*time.Millisecond {
		t.Fatalf("last hit = %v, want 1.1s", got)
	}
}

func TestStompKillsAndBounces(t *testing.T) {
	ecs := newTestECS(t)
	char := characterAt(ecs, 100, 120, 2)
	chicken := chickenAt(ecs, cfg.KindNormal, 120, 360)

	UpdateCollisions(ecs)

	health := components.Health.Get(chicken)
	enemy := components.Enemy.Get(chicken)
	if !health.Dead || !enemy.IgnoreCollisions {
		t.Fatalf("chicken dead=%v ignore=%v, want both", health.Dead, enemy.IgnoreCollisions)
	}
	if !chicken.HasComponent(components.Death) {
		t.Fatalf("chicken not scheduled for removal")
	}
	if got := components.Death.Get(chicken).RemoveAt; got != 500*time.Millisecond {
		t.Fatalf("remove at %v, want 500ms", got)
	}

	physics := components.Physics.Get(char)
	if physics.VelocityY != cfg.Character.StompBounce {
		t.Fatalf("velocity = %v, want bounce %v", physics.VelocityY, cfg.Character.StompBounce)
	}
	character := components.Character.Get(char)
	if !character.JustStomped || !character.StompInvulnerable {
		t.Fatalf("stomp flags not set: %+v", character)
	}
	if got := energy(char); got != 100 {
		t.Fatalf("stomp damaged character: energy %d", got)
	}

	ecs.Update(299 * time.Millisecond)
	UpdateTimers(ecs)
	if !character.JustStomped {
		t.Fatalf("flags cleared early")
	}
	ecs.Update(time.Millisecond)
	UpdateTimers(ecs)
	if character.JustStomped || character.StompInvulnerable {
		t.Fatalf("flags not cleared after grace: %+v", character)
	}
}

func TestStompTakesPriorityOverSideHit(t *testing.T) {
	ecs := newTestECS(t)
	char := characterAt(ecs, 100, 120, 2)
	stomped := chickenAt(ecs, cfg.KindNormal, 120, 360)
	// Level with the character's body: a side hit on its own
	beside := chickenAt(ecs, cfg.KindNormal, 110, 300)

	UpdateCollisions(ecs)

	if !components.Health.Get(stomped).Dead {
		t.Fatalf("stomp not resolved")
	}
	if components.Health.Get(beside).Dead {
		t.Fatalf("side enemy killed")
	}
	if got := energy(char); got != 100 {
		t.Fatalf("side hit resolved in stomp tick: energy %d", got)
	}

	// Still blocked on the next tick
	UpdateCollisions(ecs)
	if got := energy(char); got != 100 {
		t.Fatalf("side hit resolved while just stomped: energy %d", got)
	}
}

func TestStompInvulnerabilityBlocksSideHit(t *testing.T) {
	ecs := newTestECS(t)
	char := standingCharacter(ecs, 100)
	chickenAt(ecs, cfg.KindNormal, 120, 360)
	components.Character.Get(char).StompInvulnerable = true

	UpdateCollisions(ecs)

	if got := energy(char); got != 100 {
		t.Fatalf("energy = %d, want 100", got)
	}
}

func TestSmallChickenNeedsLargerOverlap(t *testing.T) {
	ecs := newTestECS(t)
	char := standingCharacter(ecs, 100)
	// Character hitbox spans 135..165; 14px of a 40px chicken is under 40%
	chickenAt(ecs, cfg.KindSmall, 151, 380)

	UpdateCollisions(ecs)

	if got := energy(char); got != 100 {
		t.Fatalf("energy = %d, want 100", got)
	}
}

func TestDeadCharacterIsNotHit(t *testing.T) {
	ecs := newTestECS(t)
	char := standingCharacter(ecs, 100)
	chickenAt(ecs, cfg.KindNormal, 120, 360)
	health := components.Health.Get(char)
	health.Energy, health.Dead = 0, true

	UpdateCollisions(ecs)

	if got := energy(char); got != 0 {
		t.Fatalf("energy = %d", got)
	}
}

func TestStompAndSideAreExclusive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ecs := newWorldECS()
		char := characterAt(ecs,
			rapid.Float64Range(0, 300).Draw(t, "charX"),
			rapid.Float64Range(0, 200).Draw(t, "charY"),
			rapid.Float64Range(-20, 20).Draw(t, "velY"))
		chicken := chickenAt(ecs, cfg.KindNormal,
			rapid.Float64Range(0, 300).Draw(t, "chickenX"),
			rapid.Float64Range(250, 400).Draw(t, "chickenY"))

		UpdateCollisions(ecs)

		killed := components.Health.Get(chicken).Dead
		hurt := energy(char) < 100
		if killed && hurt {
			t.Fatalf("one contact resolved as both stomp and side hit")
		}
	})
}
