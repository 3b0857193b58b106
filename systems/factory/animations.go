package factory

import (
	"log"

	"github.com/automoto/pollo/assets/animations"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
)

// GenerateAnimations creates an AnimationData component based on the actor key
// (e.g., "character", "chicken") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, initial cfg.StateID) *components.AnimationData {
	defs, ok := cfg.Animations[key]
	if !ok {
		log.Printf("Warning: no animation definitions for %q", key)
	}

	animData := &components.AnimationData{
		Animations: animations.NewSet(defs),
	}
	animData.SetAnimation(initial)
	return animData
}
