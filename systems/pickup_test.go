package systems

import (
	"testing"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/automoto/pollo/systems/factory"
)

func TestBottlePickupRespectsCapacity(t *testing.T) {
	ecs := newTestECS(t)
	char := standingCharacter(ecs, 100)
	bottle := factory.CreateBottlePickup(ecs, leveldata.Point{X: 110, Y: 350})
	character := components.Character.Get(char)
	character.CollectedBottles = cfg.Character.MaxBottles

	UpdatePickups(ecs)
	if bottle.HasComponent(components.Death) || character.CollectedBottles != cfg.Character.MaxBottles {
		t.Fatalf("bottle collected at capacity")
	}

	character.CollectedBottles = 4
	UpdatePickups(ecs)
	if character.CollectedBottles != 5 {
		t.Fatalf("bottles = %d, want 5", character.CollectedBottles)
	}
	if !bottle.HasComponent(components.Death) {
		t.Fatalf("collected bottle not removed")
	}

	UpdatePickups(ecs)
	if character.CollectedBottles != 5 {
		t.Fatalf("bottle collected twice")
	}
}

func TestCoinPickupFillsBar(t *testing.T) {
	ecs := newTestECS(t)
	bar := factory.CreateStatusBar(ecs, cfg.BarCoins, cfg.StatusBars.Coins, 0)
	char := standingCharacter(ecs, 100)
	factory.CreateCoin(ecs, leveldata.Point{X: 100, Y: 300})

	UpdatePickups(ecs)

	if got := components.Character.Get(char).CollectedCoins; got != 1 {
		t.Fatalf("coins = %d, want 1", got)
	}
	if got := components.StatusBar.Get(bar).Percentage; got != 20 {
		t.Fatalf("coin bar = %v, want 20", got)
	}
	if countSFX(ecs, cfg.SoundCollect) != 1 {
		t.Fatalf("collect sound not queued")
	}

	UpdateDeaths(ecs)
	if n := count(ecs, components.Pickup); n != 0 {
		t.Fatalf("%d pickups left", n)
	}
}

func TestThrowIsEdgeTriggered(t *testing.T) {
	ecs := newTestECS(t)
	char := standingCharacter(ecs, 100)
	components.Character.Get(char).CollectedBottles = 2
	held := true
	ecs.Input = inputFunc(func() (throw bool) { return held })

	for i := 0; i < 3; i++ {
		UpdateInput(ecs)
		UpdateCharacter(ecs)
	}
	if n := count(ecs, components.Projectile); n != 1 {
		t.Fatalf("%d projectiles while held, want 1", n)
	}
	if got := components.Character.Get(char).CollectedBottles; got != 1 {
		t.Fatalf("bottles = %d, want 1", got)
	}

	held = false
	UpdateInput(ecs)
	UpdateCharacter(ecs)
	held = true
	UpdateInput(ecs)
	UpdateCharacter(ecs)
	if n := count(ecs, components.Projectile); n != 2 {
		t.Fatalf("%d projectiles after second press, want 2", n)
	}
}
