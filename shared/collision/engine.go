package collision

import (
	"math"

	"github.com/automoto/foxfield/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	tagObstacle = "obstacle"
	tagProbe    = "probe"

	// resolv works on an integer cell grid, so world units are scaled up
	// before they reach the space. One cell covers one world unit.
	spaceScale = 64.0
	cellSize   = 64
	// Padding (in scaled units) added around every broad-phase box so
	// rounding at cell edges never drops a candidate.
	spacePadding = 2.0
	spaceMargin  = 4.0
)

// Engine answers IsBlocked queries against a fixed obstacle set, using a
// resolv.Space as broad phase and the separating axis test as narrow phase.
// Results are identical to the brute-force IsBlocked over the same list.
//
// An Engine keeps a reusable probe object and is not safe for concurrent use.
type Engine struct {
	obstacles []Obstacle
	space     *resolv.Space
	probe     *resolv.Object
	index     map[*resolv.Object]int
	polygons  [][4]gamemath.Point
	area      gamemath.Bounds
}

// NewEngine indexes obstacles. The slice is copied.
func NewEngine(obstacles []Obstacle) *Engine {
	e := &Engine{
		obstacles: append([]Obstacle(nil), obstacles...),
		index:     make(map[*resolv.Object]int, len(obstacles)),
	}
	if len(e.obstacles) == 0 {
		return e
	}

	e.polygons = make([][4]gamemath.Point, len(e.obstacles))
	bounds := make([]gamemath.Bounds, len(e.obstacles))
	for i := range e.obstacles {
		e.polygons[i] = e.obstacles[i].Polygon()
		bounds[i] = gamemath.PolygonBounds(e.polygons[i])
		if i == 0 {
			e.area = bounds[i]
		} else {
			e.area = e.area.Union(bounds[i])
		}
	}
	e.area.MinX -= spaceMargin
	e.area.MinZ -= spaceMargin
	e.area.MaxX += spaceMargin
	e.area.MaxZ += spaceMargin

	w := int(math.Ceil(e.area.Width()*spaceScale)) + cellSize
	h := int(math.Ceil(e.area.Depth()*spaceScale)) + cellSize
	e.space = resolv.NewSpace(w, h, cellSize, cellSize)

	for i, b := range bounds {
		x, y, bw, bh := e.toSpace(b)
		obj := resolv.NewObject(x, y, bw, bh, tagObstacle)
		e.space.Add(obj)
		e.index[obj] = i
	}

	e.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	e.space.Add(e.probe)

	return e
}

// Obstacles returns the indexed obstacles.
func (e *Engine) Obstacles() []Obstacle {
	return e.obstacles
}

// IsBlocked reports whether candidate overlaps any obstacle.
func (e *Engine) IsBlocked(candidate Body) bool {
	if e.space == nil {
		return false
	}

	poly := candidate.Polygon()
	b := gamemath.PolygonBounds(poly)
	if !b.Overlaps(e.area) {
		return false
	}

	e.probe.X, e.probe.Y, e.probe.W, e.probe.H = e.toSpace(b)
	e.probe.Update()

	check := e.probe.Check(0, 0, tagObstacle)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(tagObstacle) {
		i, ok := e.index[obj]
		if !ok {
			continue
		}
		if gamemath.Intersects(poly, e.polygons[i]) {
			return true
		}
	}
	return false
}

// Candidates returns how many obstacles the broad phase would hand to the
// narrow phase for candidate. Used by the debug overlay.
func (e *Engine) Candidates(candidate Body) int {
	if e.space == nil {
		return 0
	}
	b := gamemath.PolygonBounds(candidate.Polygon())
	if !b.Overlaps(e.area) {
		return 0
	}
	e.probe.X, e.probe.Y, e.probe.W, e.probe.H = e.toSpace(b)
	e.probe.Update()
	check := e.probe.Check(0, 0, tagObstacle)
	if check == nil {
		return 0
	}
	return len(check.ObjectsByTags(tagObstacle))
}

func (e *Engine) toSpace(b gamemath.Bounds) (x, y, w, h float64) {
	x = (b.MinX-e.area.MinX)*spaceScale - spacePadding
	y = (b.MinZ-e.area.MinZ)*spaceScale - spacePadding
	w = b.Width()*spaceScale + 2*spacePadding
	h = b.Depth()*spaceScale + 2*spacePadding
	return x, y, w, h
}
