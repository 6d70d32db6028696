// Package collision decides whether a body placed at a candidate pose would
// overlap any static obstacle. Client prediction and the authoritative server
// must both use it so their verdicts agree.
package collision

import "github.com/automoto/foxfield/shared/gamemath"

// Body is a footprint placed on the ground plane.
type Body struct {
	Position gamemath.Point
	Heading  float64
	Shape    gamemath.Shape
}

// Polygon returns the body's rotated rectangle.
func (b Body) Polygon() [4]gamemath.Point {
	return gamemath.RotatedRectangle(b.Heading, b.Position, b.Shape)
}

// Obstacle is a static world object. Obstacles are built once from world
// data and never change during a session.
type Obstacle struct {
	Kind string
	Body
}

// Obstacles is a plain list checked by brute force.
type Obstacles []Obstacle

// IsBlocked reports whether candidate overlaps any of obstacles. It returns on
// the first hit. Callers must keep the moving body itself out of obstacles.
func IsBlocked(candidate Body, obstacles []Obstacle) bool {
	poly := candidate.Polygon()
	for i := range obstacles {
		if gamemath.Intersects(poly, obstacles[i].Polygon()) {
			return true
		}
	}
	return false
}

// IsBlocked implements the predictor's collider over the whole list.
func (o Obstacles) IsBlocked(candidate Body) bool {
	return IsBlocked(candidate, o)
}
