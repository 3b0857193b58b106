package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
)

// UpdatePickups collects the coins and bottles the character touches.
// Bottles stay on the ground while the character carries the maximum.
func UpdatePickups(ecs *engine.ECS) {
	e, ok := characterEntry(ecs)
	if !ok || components.Health.Get(e).Dead {
		return
	}
	character := components.Character.Get(e)
	charBox := components.BoxOf(e)

	for _, item := range nearby(ecs, e, tags.ResolvPickup, components.Pickup) {
		if item.HasComponent(components.Death) {
			continue
		}
		if !gamemath.Overlaps(charBox, components.BoxOf(item)) {
			continue
		}

		switch components.Pickup.Get(item).Kind {
		case cfg.PickupCoin:
			character.CollectedCoins++
			SetBar(ecs, cfg.BarCoins, percentOf(character.CollectedCoins, cfg.Pickup.CoinsForFullBar))
		case cfg.PickupBottle:
			if character.CollectedBottles >= cfg.Character.MaxBottles {
				continue
			}
			character.CollectedBottles++
			SetBar(ecs, cfg.BarBottles, percentOf(character.CollectedBottles, cfg.Character.MaxBottles))
		}

		PlaySFX(ecs, cfg.SoundCollect)
		collectPickup(ecs, item)
	}
}

// collectPickup takes the item out of the space now and out of the world at
// the next UpdateDeaths.
func collectPickup(ecs *engine.ECS, item *donburi.Entry) {
	if obj := components.Object.Get(item); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	scheduleRemoval(ecs, item, 0)
}
