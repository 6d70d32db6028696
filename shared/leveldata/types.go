// Package leveldata reads world data shared between client and server.
// It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/foxfield/shared/collision"
	"github.com/automoto/foxfield/shared/gamemath"
)

var (
	ErrUnknownObjectType = errors.New("unknown object type")
	ErrEmptyFootprint    = errors.New("footprint has no area")
)

// Footprints of the built-in object types, in world units.
var DefaultShapes = map[string]gamemath.Shape{
	"tree":  gamemath.BoxShape(1.5, 1.5),
	"house": gamemath.BoxShape(6, 4),
}

// WorldData describes the play field. The ground is Width x Height world
// units centred on the origin.
type WorldData struct {
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Objects []ObjectData `json:"objects"`
}

// ObjectData is one static object. Rotation is a heading in radians.
type ObjectData struct {
	Type     string  `json:"type"`
	Name     string  `json:"name,omitempty"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
	Rotation float64 `json:"rotation"`
	BBox     *BBox   `json:"bbox,omitempty"`
}

// BBox is an explicit footprint as corner offsets from the object's centre.
type BBox struct {
	BL Offset `json:"bl"`
	BR Offset `json:"br"`
	FR Offset `json:"fr"`
	FL Offset `json:"fl"`
}

type Offset struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Kind returns the object's type, falling back to its name.
func (o ObjectData) Kind() string {
	if o.Type != "" {
		return strings.ToLower(o.Type)
	}
	return strings.ToLower(o.Name)
}

// Shape returns the explicit bbox if present, else the default for the kind.
func (o ObjectData) Shape() (gamemath.Shape, bool) {
	if o.BBox != nil {
		b := o.BBox
		return gamemath.Shape{
			BL: gamemath.Point{X: b.BL.X, Z: b.BL.Z},
			BR: gamemath.Point{X: b.BR.X, Z: b.BR.Z},
			FR: gamemath.Point{X: b.FR.X, Z: b.FR.Z},
			FL: gamemath.Point{X: b.FL.X, Z: b.FL.Z},
		}, true
	}
	s, ok := DefaultShapes[o.Kind()]
	return s, ok
}

// Validate checks that every object has a footprint with some area.
func (w *WorldData) Validate() error {
	if w.Width < 0 || w.Height < 0 {
		return fmt.Errorf("negative world size %vx%v", w.Width, w.Height)
	}
	for i, o := range w.Objects {
		shape, ok := o.Shape()
		if !ok {
			return fmt.Errorf("object %d %q: %w", i, o.Kind(), ErrUnknownObjectType)
		}
		if shape.Area() == 0 {
			return fmt.Errorf("object %d %q: %w", i, o.Kind(), ErrEmptyFootprint)
		}
	}
	return nil
}

// Obstacles converts the objects to collision obstacles. Objects without a
// footprint are skipped; Validate reports them.
func (w *WorldData) Obstacles() []collision.Obstacle {
	out := make([]collision.Obstacle, 0, len(w.Objects))
	for _, o := range w.Objects {
		shape, ok := o.Shape()
		if !ok {
			continue
		}
		out = append(out, collision.Obstacle{
			Kind: o.Kind(),
			Body: collision.Body{
				Position: gamemath.Point{X: o.X, Z: o.Z},
				Heading:  o.Rotation,
				Shape:    shape,
			},
		})
	}
	return out
}

// Bounds returns the walkable rectangle, or the zero Bounds if the world has
// no size.
func (w *WorldData) Bounds() gamemath.Bounds {
	if w.Width <= 0 || w.Height <= 0 {
		return gamemath.Bounds{}
	}
	return gamemath.CenteredBounds(w.Width, w.Height)
}
