package leveldata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"math"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/automoto/foxfield/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// ObjectGroupName is the Tiled object group that holds world objects.
const ObjectGroupName = "objects"

// LoadWorld reads a .json or .tmx world from fsys. It takes an fs.FS so
// callers can pass embed.FS (client) or os.DirFS (server).
func LoadWorld(fsys fs.FS, name string) (*WorldData, error) {
	var (
		w   *WorldData
		err error
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		w, err = loadJSON(fsys, name)
	case ".tmx":
		w, err = loadTMX(fsys, name)
	default:
		return nil, fmt.Errorf("load world %s: unsupported format", name)
	}
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("load world %s: %w", name, err)
	}
	return w, nil
}

func loadJSON(fsys fs.FS, name string) (*WorldData, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read world %s: %w", name, err)
	}
	return DecodeWorld(raw)
}

// DecodeWorld parses the JSON world format.
func DecodeWorld(raw []byte) (*WorldData, error) {
	var w WorldData
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("decode world: %w", err)
	}
	return &w, nil
}

// loadTMX converts a Tiled map. One tile is one world unit. Tiled places
// rectangles by their top-left corner and rotates them clockwise around it,
// which maps onto the ground plane as X right and Z down.
func loadTMX(fsys fs.FS, name string) (*WorldData, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	w := &WorldData{
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != ObjectGroupName {
			continue
		}
		for _, o := range og.Objects {
			heading := o.Rotation * math.Pi / 180
			centre := gamemath.RotatePoint(heading, o.X, o.Y, o.X+o.Width/2, o.Y+o.Height/2)

			obj := ObjectData{
				Type:     o.Properties.GetString("type"),
				Name:     o.Name,
				X:        centre.X/tileW - w.Width/2,
				Z:        centre.Z/tileH - w.Height/2,
				Rotation: heading,
			}
			if o.Width > 0 && o.Height > 0 {
				s := gamemath.BoxShape(o.Width/tileW, o.Height/tileH)
				obj.BBox = &BBox{
					BL: Offset{X: s.BL.X, Z: s.BL.Z},
					BR: Offset{X: s.BR.X, Z: s.BR.Z},
					FR: Offset{X: s.FR.X, Z: s.FR.Z},
					FL: Offset{X: s.FL.X, Z: s.FL.Z},
				}
			}
			w.Objects = append(w.Objects, obj)
		}
	}

	return w, nil
}

// LoadAllWorlds discovers every world file in dir within fsys and returns
// them keyed by stem name, plus the sorted list of names.
func LoadAllWorlds(fsys fs.FS, dir string) (map[string]*WorldData, []string, error) {
	var matches []string
	for _, ext := range []string{"json", "tmx"} {
		pattern := dir + "/*." + ext
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no world files found in %s", dir)
	}

	worlds := make(map[string]*WorldData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := LoadWorld(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if _, dup := worlds[stem]; dup {
			return nil, nil, fmt.Errorf("duplicate world name %s", stem)
		}
		worlds[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return worlds, names, nil
}

// FetchWorld downloads a JSON world from url.
func FetchWorld(ctx context.Context, client *http.Client, url string) (*WorldData, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch world: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch world: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch world: unexpected status %s", resp.Status)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("fetch world: %w", err)
	}
	w, err := DecodeWorld(raw)
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("fetch world: %w", err)
	}
	return w, nil
}
