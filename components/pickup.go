package components

import (
	"github.com/automoto/pollo/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PickupData struct {
	Kind config.PickupKind
	// Coins pulse their size; BaseSize is the unscaled width and height
	Pulse    *gween.Sequence
	BaseSize float64
	Grow     float64 // current pulse offset in px
}

var Pickup = donburi.NewComponentType[PickupData]()
