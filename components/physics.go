package components

import (
	"github.com/automoto/pollo/config"
	"github.com/yohamta/donburi"
)

// PhysicsData uses screen coordinates: Y grows downward, so a negative
// VelocityY is rising.
type PhysicsData struct {
	VelocityX float64
	VelocityY float64
	Gravity   float64
	RestY     float64 // top edge when resting on the ground
	Category  config.Category
	OnGround  bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
