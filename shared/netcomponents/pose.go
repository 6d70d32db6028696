package netcomponents

import (
	"github.com/automoto/foxfield/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PoseData is a position on the ground plane plus a facing angle. Y stays at
// ground height. Heading is in radians with 0 facing +X.
type PoseData struct {
	X, Y, Z float64
	Heading float64
}

// Ground returns the pose projected onto the ground plane.
func (p PoseData) Ground() gamemath.Point {
	return gamemath.Point{X: p.X, Z: p.Z}
}

var Pose = donburi.NewComponentType[PoseData]()

// LerpPose interpolates position between two poses. Heading is taken from
// the target unchanged.
func LerpPose(from, to PoseData, t float64) *PoseData {
	return &PoseData{
		X:       from.X + (to.X-from.X)*t,
		Y:       from.Y + (to.Y-from.Y)*t,
		Z:       from.Z + (to.Z-from.Z)*t,
		Heading: to.Heading,
	}
}
