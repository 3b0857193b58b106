package tags

import "github.com/yohamta/donburi"

var (
	Character    = donburi.NewTag().SetName("Character")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Boss         = donburi.NewTag().SetName("Boss")
	Projectile   = donburi.NewTag().SetName("Projectile")
	Coin         = donburi.NewTag().SetName("Coin")
	BottlePickup = donburi.NewTag().SetName("BottlePickup")
	StatusBar    = donburi.NewTag().SetName("StatusBar")
)

// Resolv tags for broad-phase queries
const (
	ResolvCharacter  = "character"
	ResolvEnemy      = "enemy"
	ResolvProjectile = "projectile"
	ResolvPickup     = "pickup"
)
