package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Intersects reports whether two convex quads overlap, using the separating
// axis test over the edge normals of both. Quads that only touch along an
// edge or at a corner do not intersect.
func Intersects(a, b [4]Point) bool {
	tested := false
	for _, poly := range [2]*[4]Point{&a, &b} {
		for i := range poly {
			p1 := poly[i]
			p2 := poly[(i+1)%len(poly)]

			// Edge normal (dz, -dx). Coincident corners give no axis.
			axis := mgl64.Vec2{p2.Z - p1.Z, p1.X - p2.X}
			if axis.X() == 0 && axis.Y() == 0 {
				continue
			}

			tested = true

			minA, maxA := project(&a, axis)
			minB, maxB := project(&b, axis)
			if maxA <= minB || maxB <= minA {
				return false
			}
		}
	}
	// Two bare points have no axis and never overlap.
	return tested
}

func project(poly *[4]Point, axis mgl64.Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		d := axis.Dot(p.vec())
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
