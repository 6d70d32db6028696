package factory

import (
	"github.com/automoto/foxfield/archetypes"
	"github.com/automoto/foxfield/components"
	cfg "github.com/automoto/foxfield/config"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// CreateLocalPlayer spawns the locally controlled player at pose.
func CreateLocalPlayer(world donburi.World, userID string, pose netcomponents.PoseData) *donburi.Entry {
	player := archetypes.LocalPlayer.Spawn(world)

	pose.Y = cfg.Movement.GroundY
	netcomponents.Pose.SetValue(player, pose)
	netcomponents.Shape.SetValue(player, cfg.Movement.PlayerShape)
	components.LocalPlayer.SetValue(player, components.LocalPlayerData{
		UserID: userID,
	})

	return player
}

// CreateRemotePlayer spawns another player first seen in a snapshot. The
// display pose starts at the reported pose so it does not slide in from the
// origin.
func CreateRemotePlayer(world donburi.World, userID string, pose netcomponents.PoseData) *donburi.Entry {
	player := archetypes.RemotePlayer.Spawn(world)

	netcomponents.Pose.SetValue(player, pose)
	netcomponents.Shape.SetValue(player, cfg.Movement.PlayerShape)
	components.Remote.SetValue(player, components.RemoteData{UserID: userID})
	components.NetInterp.SetValue(player, components.NetInterpData{
		Target:      pose,
		Initialized: true,
	})

	return player
}
