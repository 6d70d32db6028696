package systems

import (
	"github.com/automoto/foxfield/components"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/automoto/foxfield/sim"
	"github.com/automoto/foxfield/tags"
	"github.com/yohamta/donburi"
)

// InterpolateRemotes moves every remote display pose toward its latest
// snapshot target. It runs every frame, snapshots or not.
func InterpolateRemotes(world donburi.World, factor float64) {
	tags.RemotePlayer.Each(world, func(entry *donburi.Entry) {
		interp := components.NetInterp.Get(entry)
		if !interp.Initialized {
			return
		}
		sim.Interpolate(netcomponents.Pose.Get(entry), interp.Target, factor)
	})
}
