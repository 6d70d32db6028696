// Package sim holds the client-side movement rules: prediction against
// static obstacles, reconciliation with the server, and remote smoothing.
// Everything here is pure and operates on poses passed by pointer.
package sim

import (
	"math"

	"github.com/automoto/foxfield/shared/collision"
	"github.com/automoto/foxfield/shared/gamemath"
	"github.com/automoto/foxfield/shared/netcomponents"
)

// MoveState is the predictor's per-entity state.
type MoveState int

const (
	Idle MoveState = iota
	Moving
)

func (s MoveState) String() string {
	if s == Moving {
		return "moving"
	}
	return "idle"
}

// StateFor returns Moving while any direction is held.
func StateFor(intent netcomponents.IntentData) MoveState {
	if intent.Moving() {
		return Moving
	}
	return Idle
}

// Direction returns the unit steps per axis for intent: X is right minus
// left, Z is backward minus forward. Opposite keys cancel.
func Direction(intent netcomponents.IntentData) (dx, dz float64) {
	return b2f(intent.Right) - b2f(intent.Left), b2f(intent.Backward) - b2f(intent.Forward)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Collider answers whether a body would overlap the world. Both the brute
// force collision.Obstacles and the indexed collision.Engine satisfy it.
type Collider interface {
	IsBlocked(candidate collision.Body) bool
}

// Predictor advances the local pose one frame at a time.
type Predictor struct {
	// Speed is the displacement per step on each axis.
	Speed float64
	Shape gamemath.Shape
	// Bounds limits where the centre may go. The zero value is unbounded.
	Bounds   gamemath.Bounds
	Collider Collider
}

// StepResult reports what a step did.
type StepResult struct {
	State    MoveState
	BlockedX bool
	BlockedZ bool
}

// Step applies one frame of intent to pose. Each axis is tested on its own,
// X first, and left unchanged if the candidate is blocked, so the entity
// slides along obstacles. Heading follows the direction and is kept while
// idle.
func (p *Predictor) Step(pose *netcomponents.PoseData, intent netcomponents.IntentData) StepResult {
	res := StepResult{State: StateFor(intent)}

	dx, dz := Direction(intent)
	if dx == 0 && dz == 0 {
		return res
	}
	pose.Heading = math.Atan2(dz, dx)

	if dx != 0 {
		candidate := gamemath.Point{X: pose.X + dx*p.Speed, Z: pose.Z}
		if p.blocked(candidate, pose.Heading) {
			res.BlockedX = true
		} else {
			pose.X = candidate.X
		}
	}
	if dz != 0 {
		candidate := gamemath.Point{X: pose.X, Z: pose.Z + dz*p.Speed}
		if p.blocked(candidate, pose.Heading) {
			res.BlockedZ = true
		} else {
			pose.Z = candidate.Z
		}
	}
	return res
}

func (p *Predictor) blocked(at gamemath.Point, heading float64) bool {
	if !p.Bounds.IsZero() && !p.Bounds.Contains(at) {
		return true
	}
	if p.Collider == nil {
		return false
	}
	return p.Collider.IsBlocked(collision.Body{Position: at, Heading: heading, Shape: p.Shape})
}
