package scenes

import (
	"log"

	"github.com/automoto/pollo/assets"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
)

// Shared holds what outlives a single scene.
type Shared struct {
	Images *assets.Images
	// Placeholders is set when some images failed to load. The core then
	// animates every configured frame and the sink draws colored boxes.
	Placeholders bool
	Sounds       *assets.Sounds
	Prefs        *Preferences
	Tuning       *cfg.Watcher
}

// ImageCache is what the game checks frames against.
func (s *Shared) ImageCache() engine.ImageCache {
	if s.Placeholders {
		return engine.NewImageSet(cfg.AllImages()...)
	}
	return s.Images
}

// ToggleMute flips and persists the mute setting, returning the new value.
func (s *Shared) ToggleMute() bool {
	muted := !s.Prefs.Settings.Muted
	s.Prefs.Settings.Muted = muted
	if s.Sounds != nil {
		s.Sounds.SetMuted(muted)
	}
	if err := s.Prefs.Save(); err != nil {
		log.Printf("Warning: could not save settings: %v", err)
	}
	return muted
}

// ApplyTuning drains pending tuning file changes. A change is applied
// whole or not at all.
func (s *Shared) ApplyTuning() {
	if s.Tuning == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.Tuning.Events:
			if !ok {
				s.Tuning = nil
				return
			}
			if err := cfg.LoadOverridesFile(path); err != nil {
				log.Printf("Warning: tuning not applied: %v", err)
				continue
			}
			log.Printf("Reloaded tuning from %s", path)
		case err, ok := <-s.Tuning.Errors:
			if ok {
				log.Printf("Warning: tuning watcher: %v", err)
			}
		default:
			return
		}
	}
}
