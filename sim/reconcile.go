package sim

import (
	"math"

	"github.com/automoto/foxfield/shared/netcomponents"
)

// ReconcileConfig tunes how the local prediction is pulled toward the server.
type ReconcileConfig struct {
	// Threshold is the per-axis divergence tolerated without correction.
	Threshold float64
	// BlendFactor is the fraction of the gap closed per snapshot, in (0, 1].
	BlendFactor float64
	// SnapDistance is the divergence past which the pose is set outright.
	// Zero disables snapping.
	SnapDistance float64
}

// Correction says what Reconcile did.
type Correction int

const (
	CorrectionNone Correction = iota
	CorrectionBlend
	CorrectionSnap
)

func (c Correction) String() string {
	switch c {
	case CorrectionBlend:
		return "blend"
	case CorrectionSnap:
		return "snap"
	}
	return "none"
}

// Reconcile pulls local toward server. Within Threshold on both axes the
// position is left alone. Beyond it the position blends toward the server,
// never passes it, and ends the call within Threshold on both axes. The
// server heading is always taken.
func Reconcile(local *netcomponents.PoseData, server netcomponents.PoseData, cfg ReconcileConfig) Correction {
	local.Heading = server.Heading

	dx := server.X - local.X
	dz := server.Z - local.Z
	if math.Abs(dx) <= cfg.Threshold && math.Abs(dz) <= cfg.Threshold {
		return CorrectionNone
	}

	if cfg.SnapDistance > 0 && math.Hypot(dx, dz) > cfg.SnapDistance {
		local.X, local.Y, local.Z = server.X, server.Y, server.Z
		return CorrectionSnap
	}

	f := cfg.BlendFactor
	if f <= 0 || f >= 1 {
		local.X, local.Y, local.Z = server.X, server.Y, server.Z
		return CorrectionBlend
	}
	*local = *netcomponents.LerpPose(*local, server, f)

	// One cycle must end within Threshold of the server on each axis.
	local.X = clampGap(local.X, server.X, cfg.Threshold)
	local.Z = clampGap(local.Z, server.Z, cfg.Threshold)
	return CorrectionBlend
}

// clampGap pulls v to within limit of target, staying on its own side.
func clampGap(v, target, limit float64) float64 {
	switch {
	case v < target-limit:
		return target - limit
	case v > target+limit:
		return target + limit
	}
	return v
}
