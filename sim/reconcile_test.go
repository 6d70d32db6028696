package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/foxfield/shared/netcomponents"
)

var reconcileCfg = ReconcileConfig{Threshold: 0.5, BlendFactor: 0.3, SnapDistance: 10}

func TestReconcileWithinThreshold(t *testing.T) {
	tests := []netcomponents.PoseData{
		{X: 0.5, Z: -0.5, Heading: 2},
		{X: 0.1, Z: 0.2, Heading: 2},
		{X: 0, Z: 0, Heading: 2},
	}
	for _, server := range tests {
		local := netcomponents.PoseData{Heading: 0.3}
		c := Reconcile(&local, server, reconcileCfg)
		if c != CorrectionNone {
			t.Errorf("server %+v: correction %v, want none", server, c)
		}
		if local.X != 0 || local.Z != 0 {
			t.Errorf("server %+v: position moved to %+v", server, local)
		}
		if local.Heading != 2 {
			t.Errorf("server heading not applied, got %v", local.Heading)
		}
	}
}

func TestReconcileConvergesWithoutOvershoot(t *testing.T) {
	server := netcomponents.PoseData{X: 3, Z: -4, Heading: 1}
	local := netcomponents.PoseData{}

	prev := math.Hypot(server.X-local.X, server.Z-local.Z)
	for i := 0; i < 50; i++ {
		c := Reconcile(&local, server, reconcileCfg)
		d := math.Hypot(server.X-local.X, server.Z-local.Z)

		if c == CorrectionNone {
			if math.Abs(server.X-local.X) > reconcileCfg.Threshold || math.Abs(server.Z-local.Z) > reconcileCfg.Threshold {
				t.Fatalf("step %d: stopped correcting while still past threshold", i)
			}
			break
		}
		if d >= prev {
			t.Fatalf("step %d: distance %v did not shrink from %v", i, d, prev)
		}
		if local.X > server.X || local.Z < server.Z {
			t.Fatalf("step %d: overshot server, local %+v", i, local)
		}
		prev = d
	}
	if math.Abs(server.X-local.X) > reconcileCfg.Threshold || math.Abs(server.Z-local.Z) > reconcileCfg.Threshold {
		t.Errorf("did not converge, local %+v", local)
	}
}

func TestReconcileSingleAxisPastThreshold(t *testing.T) {
	local := netcomponents.PoseData{X: 0, Z: 0}
	server := netcomponents.PoseData{X: 0.1, Z: 2}

	if c := Reconcile(&local, server, reconcileCfg); c != CorrectionBlend {
		t.Fatalf("correction %v, want blend", c)
	}
	// Z blends to 0.6, which is still 1.4 away, so it is pulled to the
	// threshold edge. X blends normally.
	if math.Abs(local.Z-1.5) > eps || math.Abs(local.X-0.03) > eps {
		t.Errorf("blended pose %+v, want X=0.03 Z=1.5", local)
	}
}

func TestReconcileOneCycleReachesThreshold(t *testing.T) {
	cfg := ReconcileConfig{Threshold: 0.5, BlendFactor: 0.3, SnapDistance: 8}
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		// Gaps up to just under SnapDistance, in any direction.
		angle := r.Float64() * 2 * math.Pi
		dist := cfg.Threshold + r.Float64()*(cfg.SnapDistance-cfg.Threshold-0.01)
		local := netcomponents.PoseData{X: r.Float64()*20 - 10, Z: r.Float64()*20 - 10}
		server := netcomponents.PoseData{X: local.X + dist*math.Cos(angle), Z: local.Z + dist*math.Sin(angle)}
		before := math.Hypot(server.X-local.X, server.Z-local.Z)

		c := Reconcile(&local, server, cfg)
		if c == CorrectionSnap {
			t.Fatalf("gap %v below SnapDistance snapped", dist)
		}
		gx, gz := server.X-local.X, server.Z-local.Z
		if math.Abs(gx) > cfg.Threshold+eps || math.Abs(gz) > cfg.Threshold+eps {
			t.Fatalf("gap %v left (%v, %v) after one cycle", dist, gx, gz)
		}
		if c == CorrectionBlend && math.Hypot(gx, gz) >= before {
			t.Fatalf("gap %v did not shrink", dist)
		}
	}

	// A large gap with no further movement is inside the threshold on the
	// next snapshot.
	local := netcomponents.PoseData{}
	server := netcomponents.PoseData{X: 7.5}
	if c := Reconcile(&local, server, cfg); c != CorrectionBlend {
		t.Fatalf("correction %v, want blend", c)
	}
	if c := Reconcile(&local, server, cfg); c != CorrectionNone {
		t.Errorf("second cycle correction %v, want none; local %+v", c, local)
	}
}

func TestReconcileSnap(t *testing.T) {
	local := netcomponents.PoseData{}
	server := netcomponents.PoseData{X: 50, Y: 1, Z: 0, Heading: 3}

	if c := Reconcile(&local, server, reconcileCfg); c != CorrectionSnap {
		t.Fatalf("correction %v, want snap", c)
	}
	if local != server {
		t.Errorf("snapped pose %+v, want %+v", local, server)
	}
}

func TestReconcileInstantCorrection(t *testing.T) {
	local := netcomponents.PoseData{X: 1}
	server := netcomponents.PoseData{X: 1.01, Z: -0.02}

	Reconcile(&local, server, ReconcileConfig{Threshold: 0, BlendFactor: 1})
	if local != server {
		t.Errorf("zero threshold with full blend should copy the server pose, got %+v", local)
	}
}
