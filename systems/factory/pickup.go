package factory

import (
	"github.com/automoto/pollo/archetypes"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/automoto/pollo/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func CreateCoin(ecs *engine.ECS, p leveldata.Point) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	size := cfg.Pickup.CoinSize

	addObject(ecs, coin, p.X, p.Y, size, size, tags.ResolvPickup)
	components.Hitbox.SetValue(coin, components.HitboxData{Insets: gamemath.Insets(cfg.Pickup.CoinHitbox)})

	// The coin grows and shrinks by CoinPulse pixels, measured in milliseconds
	d := float32(cfg.Pickup.CoinPulseDuration.Milliseconds())
	pulse := gween.NewSequence()
	pulse.Add(
		gween.New(0, float32(cfg.Pickup.CoinPulse), d, ease.InOutSine),
		gween.New(float32(cfg.Pickup.CoinPulse), 0, d, ease.InOutSine),
	)
	components.Pickup.SetValue(coin, components.PickupData{
		Kind:     cfg.PickupCoin,
		Pulse:    pulse,
		BaseSize: size,
	})
	components.Animation.Set(coin, GenerateAnimations("coin", cfg.Static))

	return coin
}

func CreateBottlePickup(ecs *engine.ECS, p leveldata.Point) *donburi.Entry {
	bottle := archetypes.BottlePickup.Spawn(ecs)

	addObject(ecs, bottle, p.X, p.Y, cfg.Pickup.BottleWidth, cfg.Pickup.BottleHeight, tags.ResolvPickup)
	components.Hitbox.SetValue(bottle, components.HitboxData{Insets: gamemath.Insets(cfg.Pickup.BottleHitbox)})
	components.Pickup.SetValue(bottle, components.PickupData{Kind: cfg.PickupBottle})
	components.Animation.Set(bottle, GenerateAnimations("pickup_bottle", cfg.Static))

	return bottle
}
