package systems

import (
	"github.com/automoto/foxfield/components"
	"github.com/automoto/foxfield/shared/messages"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/automoto/foxfield/sim"
	"github.com/automoto/foxfield/systems/factory"
	"github.com/automoto/foxfield/tags"
	"github.com/yohamta/donburi"
)

// SnapshotResult summarises what ApplySnapshot changed.
type SnapshotResult struct {
	LocalFound bool
	Correction sim.Correction
	Spawned    int
	Updated    int
	Removed    int
}

// ApplySnapshot treats snap as the complete set of players. The local player
// is reconciled against its entry, or left alone if the server has not
// reported it yet. Remote players are created, retargeted, or removed so the
// world matches snap exactly.
func ApplySnapshot(world donburi.World, snap messages.Snapshot, recon sim.ReconcileConfig) SnapshotResult {
	var res SnapshotResult

	localID := ""
	if entry, ok := tags.LocalPlayer.First(world); ok {
		local := components.LocalPlayer.Get(entry)
		localID = local.UserID

		if state, found := snap[localID]; found {
			res.LocalFound = true
			pose := netcomponents.Pose.Get(entry)
			if !local.Synced {
				// First sighting: adopt the server's pose outright.
				*pose = state.Pose
				local.Synced = true
				res.Correction = sim.CorrectionSnap
			} else {
				res.Correction = sim.Reconcile(pose, state.Pose, recon)
			}
			local.LastCorrection = res.Correction
		}
	}

	seen := make(map[string]bool, len(snap))
	var stale []*donburi.Entry
	tags.RemotePlayer.Each(world, func(entry *donburi.Entry) {
		remote := components.Remote.Get(entry)
		state, found := snap[remote.UserID]
		if !found || remote.UserID == localID || seen[remote.UserID] {
			stale = append(stale, entry)
			return
		}
		seen[remote.UserID] = true
		updateRemote(entry, state)
		res.Updated++
	})

	// Removing inside Each would disturb the iteration.
	for _, entry := range stale {
		world.Remove(entry.Entity())
		res.Removed++
	}

	for id, state := range snap {
		if id == localID || seen[id] {
			continue
		}
		entry := factory.CreateRemotePlayer(world, id, state.Pose)
		updateRemote(entry, state)
		res.Spawned++
	}

	return res
}

func updateRemote(entry *donburi.Entry, state messages.PlayerState) {
	interp := components.NetInterp.Get(entry)
	interp.Target = state.Pose
	if !interp.Initialized {
		netcomponents.Pose.SetValue(entry, state.Pose)
		interp.Initialized = true
	}

	remote := components.Remote.Get(entry)
	remote.Controls = state.Controls
	remote.HasControls = state.HasControls
	remote.Moving = state.Moving
}
