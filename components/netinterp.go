package components

import (
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// NetInterpData stores the latest authoritative pose of a remote entity. The
// entity's Pose component is the display pose smoothed toward Target.
type NetInterpData struct {
	Target      netcomponents.PoseData
	Initialized bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
