package config

import (
	"fmt"
	"time"
)

// AnimationDef is a named frame sequence. Non-looping sequences freeze on
// their last frame.
type AnimationDef struct {
	Frames        []string
	FrameDuration time.Duration
	Loop          bool
}

// Animations maps an actor key (e.g., "character") to its animation set.
var Animations map[string]map[StateID]AnimationDef

// StatusBarImages maps each HUD bar to its six tier images (0%, 20% ... 100%).
var StatusBarImages map[BarKind][]string

// Background images drawn as repeating parallax segments, back to front.
var BackgroundLayers []string

var CloudImage string

func frames(dir, prefix string, from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("images/%s/%s%d.png", dir, prefix, i))
	}
	return out
}

func barTiers(dir string) []string {
	out := make([]string, 0, 6)
	for pct := 0; pct <= 100; pct += 20 {
		out = append(out, fmt.Sprintf("images/statusbar/%s/%d.png", dir, pct))
	}
	return out
}

func init() {
	ms := time.Millisecond

	Animations = map[string]map[StateID]AnimationDef{
		"character": {
			Idle:     {Frames: frames("character/idle", "I-", 1, 10), FrameDuration: 150 * ms, Loop: true},
			LongIdle: {Frames: frames("character/long_idle", "I-", 11, 20), FrameDuration: 150 * ms, Loop: true},
			Walk:     {Frames: frames("character/walk", "W-", 21, 26), FrameDuration: 60 * ms, Loop: true},
			Jump:     {Frames: frames("character/jump", "J-", 31, 39), FrameDuration: 100 * ms},
			Hurt:     {Frames: frames("character/hurt", "H-", 41, 43), FrameDuration: 100 * ms, Loop: true},
			Die:      {Frames: frames("character/dead", "D-", 51, 57), FrameDuration: 100 * ms},
		},
		"chicken": {
			Walk: {Frames: frames("chicken", "walk_", 1, 3), FrameDuration: 200 * ms, Loop: true},
			Die:  {Frames: frames("chicken", "dead_", 1, 1), FrameDuration: 200 * ms},
		},
		"chicken_small": {
			Walk: {Frames: frames("chicken_small", "walk_", 1, 3), FrameDuration: 200 * ms, Loop: true},
			Die:  {Frames: frames("chicken_small", "dead_", 1, 1), FrameDuration: 200 * ms},
		},
		"boss": {
			Walk:   {Frames: frames("boss/walk", "G", 1, 4), FrameDuration: 150 * ms, Loop: true},
			Alert:  {Frames: frames("boss/alert", "G", 5, 12), FrameDuration: 150 * ms, Loop: true},
			Attack: {Frames: frames("boss/attack", "G", 13, 20), FrameDuration: 100 * ms},
			Hurt:   {Frames: frames("boss/hurt", "G", 21, 23), FrameDuration: 140 * ms},
			Die:    {Frames: frames("boss/dead", "G", 24, 26), FrameDuration: 500 * ms},
		},
		"bottle": {
			Rotate: {Frames: frames("bottle/rotation", "rotation_", 1, 4), FrameDuration: 80 * ms, Loop: true},
			Splash: {Frames: frames("bottle/splash", "splash_", 1, 6), FrameDuration: 60 * ms},
		},
		"pickup_bottle": {
			Static: {Frames: frames("bottle/ground", "ground_", 1, 2), FrameDuration: 400 * ms, Loop: true},
		},
		"coin": {
			Static: {Frames: frames("coin", "coin_", 1, 2), FrameDuration: 300 * ms, Loop: true},
		},
	}

	StatusBarImages = map[BarKind][]string{
		BarHealth:  barTiers("health"),
		BarBottles: barTiers("bottles"),
		BarCoins:   barTiers("coins"),
		BarBoss:    barTiers("boss"),
	}

	BackgroundLayers = []string{
		"images/background/air.png",
		"images/background/third_layer.png",
		"images/background/second_layer.png",
		"images/background/first_layer.png",
	}

	CloudImage = "images/background/clouds.png"
}

// AllImages returns every image path referenced by the configuration.
func AllImages() []string {
	var out []string
	for _, set := range Animations {
		for _, def := range set {
			out = append(out, def.Frames...)
		}
	}
	for _, tiers := range StatusBarImages {
		out = append(out, tiers...)
	}
	out = append(out, BackgroundLayers...)
	out = append(out, CloudImage)
	return out
}
