package sim

import "github.com/automoto/foxfield/shared/netcomponents"

// Interpolate moves display a fraction of the way toward target. It is meant
// to run every frame against the latest snapshot target; repeated calls
// converge on the target without passing it.
func Interpolate(display *netcomponents.PoseData, target netcomponents.PoseData, factor float64) {
	if factor <= 0 {
		return
	}
	if factor > 1 {
		factor = 1
	}
	*display = *netcomponents.LerpPose(*display, target, factor)
}
