package systems

import (
	"testing"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func TestSettingsRoundTrip(t *testing.T) {
	prev := store
	defer func() { store = prev }()
	store = memStore{}

	if s, err := LoadSettings(); s != nil || err != nil {
		t.Fatalf("empty store: got %+v, %v", s, err)
	}

	want := &SavedSettings{ServerAddress: "play.example:8080", UserID: "fox-1", World: "meadow", Overlay: true}
	if err := SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings()
	if err != nil || got == nil || *got != *want {
		t.Errorf("LoadSettings = %+v, %v; want %+v", got, err, want)
	}
}

func TestSettingsWithoutStore(t *testing.T) {
	prev := store
	defer func() { store = prev }()
	store = nil

	if err := SaveSettings(&SavedSettings{UserID: "x"}); err != nil {
		t.Errorf("SaveSettings without store: %v", err)
	}
	if s, err := LoadSettings(); s != nil || err != nil {
		t.Errorf("LoadSettings without store = %+v, %v", s, err)
	}
}
