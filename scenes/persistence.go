package scenes

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted bool `json:"muted"`
}

// itemStore is the part of gdata.Manager the preferences use.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Preferences keeps settings across runs. Without a store it still works
// for the session, it just forgets on exit.
type Preferences struct {
	store    itemStore
	Settings SavedSettings
}

// OpenPreferences opens the gdata store and loads saved settings.
func OpenPreferences(appName string) *Preferences {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return &Preferences{}
	}
	return newPreferences(m)
}

func newPreferences(store itemStore) *Preferences {
	p := &Preferences{store: store}
	p.load()
	return p
}

func (p *Preferences) load() {
	if p.store == nil {
		return
	}

	data, err := p.store.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return
	}
	p.Settings = settings
}

// Save writes the current settings to disk
func (p *Preferences) Save() error {
	if p.store == nil {
		return nil
	}

	data, err := json.Marshal(p.Settings)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := p.store.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}
