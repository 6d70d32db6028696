package messages

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/foxfield/shared/gamemath"
	"github.com/automoto/foxfield/shared/netcomponents"
)

var (
	ErrMissingPosition   = errors.New("missing position")
	ErrMissingRotation   = errors.New("missing rotation")
	ErrMalformedPosition = errors.New("malformed position")
	ErrMalformedRotation = errors.New("malformed rotation")
)

// Players is the server's broadcast of every connected player, keyed by user
// id. Each message replaces the previous one entirely.
type Players struct {
	Entries map[string]PlayerEntry
}

// PlayerEntry is one player as sent by the server. Position may be an
// {x,y,z} object or an [x,y,z] array. Rotation may be a heading in radians,
// or a model Euler rotation as an {x,y,z} object or [x,y,z] array.
type PlayerEntry struct {
	Position any                       `json:"position" codec:"position"`
	Rotation any                       `json:"rotation" codec:"rotation"`
	Controls *netcomponents.IntentData `json:"controls,omitempty" codec:"controls,omitempty"`
	Moving   *bool                     `json:"moving,omitempty" codec:"moving,omitempty"`
}

// UnmarshalJSON reads the bare userId -> entry object.
func (p *Players) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &p.Entries)
}

// MarshalJSON writes the bare userId -> entry object.
func (p Players) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Entries)
}

// PlayerState is a validated snapshot entry.
type PlayerState struct {
	Pose        netcomponents.PoseData
	Controls    netcomponents.IntentData
	HasControls bool
	Moving      bool
}

// Snapshot maps user id to validated state.
type Snapshot map[string]PlayerState

// Snapshot validates every entry. Entries that fail are left out and
// reported; the rest of the snapshot is still usable.
func (p Players) Snapshot() (Snapshot, []error) {
	snap := make(Snapshot, len(p.Entries))
	var errs []error

	ids := make([]string, 0, len(p.Entries))
	for id := range p.Entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		state, err := p.Entries[id].State()
		if err != nil {
			errs = append(errs, fmt.Errorf("player %s: %w", id, err))
			continue
		}
		snap[id] = state
	}
	return snap, errs
}

// State validates a single entry.
func (e PlayerEntry) State() (PlayerState, error) {
	var s PlayerState

	if e.Position == nil {
		return s, ErrMissingPosition
	}
	x, y, z, ok := vec3(e.Position)
	if !ok {
		return s, fmt.Errorf("%w: %v", ErrMalformedPosition, e.Position)
	}

	if e.Rotation == nil {
		return s, ErrMissingRotation
	}
	h, ok := heading(e.Rotation)
	if !ok {
		return s, fmt.Errorf("%w: %v", ErrMalformedRotation, e.Rotation)
	}

	s.Pose = netcomponents.PoseData{X: x, Y: y, Z: z, Heading: h}
	switch {
	case e.Controls != nil:
		s.Controls = *e.Controls
		s.HasControls = true
		s.Moving = e.Controls.Moving()
	case e.Moving != nil:
		s.Moving = *e.Moving
	}
	return s, nil
}

// heading accepts a bare angle, or a model Euler rotation whose Y is the yaw.
func heading(v any) (float64, bool) {
	if f, ok := number(v); ok {
		return f, true
	}
	_, yaw, _, ok := vec3(v)
	if !ok {
		return 0, false
	}
	return gamemath.HeadingFromModelYaw(yaw), true
}

func vec3(v any) (x, y, z float64, ok bool) {
	switch t := v.(type) {
	case map[string]any:
		return xyz(t)
	case map[any]any:
		// msgpack decodes untyped maps with interface keys, and raw
		// strings may arrive as bytes.
		m := make(map[string]any, len(t))
		for k, val := range t {
			switch ks := k.(type) {
			case string:
				m[ks] = val
			case []byte:
				m[string(ks)] = val
			}
		}
		return xyz(m)
	case []any:
		if len(t) != 3 {
			return 0, 0, 0, false
		}
		var out [3]float64
		for i, el := range t {
			if out[i], ok = number(el); !ok {
				return 0, 0, 0, false
			}
		}
		return out[0], out[1], out[2], true
	case []float64:
		if len(t) != 3 {
			return 0, 0, 0, false
		}
		return t[0], t[1], t[2], true
	}
	return 0, 0, 0, false
}

func xyz(m map[string]any) (x, y, z float64, ok bool) {
	var out [3]float64
	for i, k := range [3]string{"x", "y", "z"} {
		raw, found := m[k]
		if !found {
			// y is ground height and may be omitted.
			if k == "y" {
				continue
			}
			return 0, 0, 0, false
		}
		if out[i], ok = number(raw); !ok {
			return 0, 0, 0, false
		}
	}
	return out[0], out[1], out[2], true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
