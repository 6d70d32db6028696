// Package gamemath holds the pure geometry shared by the client predictor and
// any authoritative server. It must stay free of ebiten and ECS imports.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position on the ground plane. X grows to the right and Z grows
// "backward", toward the viewer.
type Point struct {
	X, Z float64
}

func (p Point) vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Z}
}

// Add returns p offset by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Z: p.Z + o.Z}
}

// Shape is the footprint of an entity as corner offsets from its centre,
// before any rotation. At heading 0 the front (FR, FL) faces +X.
type Shape struct {
	BL, BR, FR, FL Point
}

// BoxShape returns a rectangle of the given length (along the facing axis)
// and width, centred on the origin.
func BoxShape(length, width float64) Shape {
	hl, hw := length/2, width/2
	return Shape{
		BL: Point{X: -hl, Z: hw},
		BR: Point{X: -hl, Z: -hw},
		FR: Point{X: hl, Z: -hw},
		FL: Point{X: hl, Z: hw},
	}
}

// Corners returns the offsets in BL, BR, FR, FL order.
func (s Shape) Corners() [4]Point {
	return [4]Point{s.BL, s.BR, s.FR, s.FL}
}

// Area returns the footprint's area.
func (s Shape) Area() float64 {
	c := s.Corners()
	var sum float64
	for i := range c {
		j := (i + 1) % len(c)
		sum += c[i].X*c[j].Z - c[j].X*c[i].Z
	}
	return math.Abs(sum) / 2
}

// RotatePoint rotates (px, pz) around (cx, cz) by angle radians.
func RotatePoint(angle, cx, cz, px, pz float64) Point {
	r := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{px - cx, pz - cz})
	return Point{X: r.X() + cx, Z: r.Y() + cz}
}

// RotatedRectangle places shape at center and rotates it by angle. The
// corner order of shape is preserved; SAT relies on it for edge walking.
func RotatedRectangle(angle float64, center Point, shape Shape) [4]Point {
	var out [4]Point
	for i, off := range shape.Corners() {
		out[i] = RotatePoint(angle, center.X, center.Z, center.X+off.X, center.Z+off.Z)
	}
	return out
}

// Bounds is an axis-aligned rectangle on the ground plane.
type Bounds struct {
	MinX, MinZ, MaxX, MaxZ float64
}

// IsZero reports whether b is the unset value.
func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Overlaps reports whether b and o share a region of positive area.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX && b.MinZ < o.MaxZ && o.MinZ < b.MaxZ
}

// Width returns the X extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Depth returns the Z extent.
func (b Bounds) Depth() float64 { return b.MaxZ - b.MinZ }

// Union returns the smallest bounds covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinZ: math.Min(b.MinZ, o.MinZ),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxZ: math.Max(b.MaxZ, o.MaxZ),
	}
}

// PolygonBounds returns the axis-aligned bounds of poly.
func PolygonBounds(poly [4]Point) Bounds {
	b := Bounds{MinX: poly[0].X, MinZ: poly[0].Z, MaxX: poly[0].X, MaxZ: poly[0].Z}
	for _, p := range poly[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinZ = math.Min(b.MinZ, p.Z)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxZ = math.Max(b.MaxZ, p.Z)
	}
	return b
}

// CenteredBounds returns a width x depth rectangle centred on the origin.
func CenteredBounds(width, depth float64) Bounds {
	return Bounds{MinX: -width / 2, MinZ: -depth / 2, MaxX: width / 2, MaxZ: depth / 2}
}

// ModelYaw converts a ground heading (0 = +X, atan2 convention) to the yaw of
// a model whose rest pose faces +Z. The conversion is its own inverse.
func ModelYaw(heading float64) float64 {
	return math.Pi/2 - heading
}

// HeadingFromModelYaw is the inverse of ModelYaw.
func HeadingFromModelYaw(yaw float64) float64 {
	return ModelYaw(yaw)
}
