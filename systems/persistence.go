package systems

import (
	"encoding/json"

	"github.com/automoto/foxfield/logging"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ServerAddress string `json:"serverAddress"`
	UserID        string `json:"userId"`
	World         string `json:"world"`
	Overlay       bool   `json:"overlay"`
}

// itemStore is the part of gdata.Manager used here.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logging.Named("persistence").Warnw("could not initialize persistence", "err", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		logging.Named("persistence").Warnw("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.Named("persistence").Warnw("could not parse saved settings", "err", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		logging.Named("persistence").Warnw("could not save settings", "err", err)
		return err
	}
	return nil
}
