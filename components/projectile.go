package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Direction   float64 // -1 or +1
	Speed       float64 // px per world tick
	HasSplashed bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
