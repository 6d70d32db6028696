package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/automoto/foxfield/shared/leveldata"
)

var (
	//go:embed worlds
	worldFS embed.FS

	loadOnce   sync.Once
	worlds     map[string]*leveldata.WorldData
	worldNames []string
	loadErr    error
)

// FS exposes the embedded files.
func FS() fs.FS {
	return worldFS
}

func load() {
	loadOnce.Do(func() {
		worlds, worldNames, loadErr = leveldata.LoadAllWorlds(worldFS, "worlds")
	})
}

// World returns the embedded world called name.
func World(name string) (*leveldata.WorldData, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	w, ok := worlds[name]
	if !ok {
		return nil, fmt.Errorf("no embedded world %q (have %v)", name, worldNames)
	}
	return w, nil
}

// WorldNames lists the embedded worlds in sorted order.
func WorldNames() []string {
	load()
	return worldNames
}
