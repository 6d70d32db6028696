package systems

import (
	"github.com/automoto/foxfield/components"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/automoto/foxfield/sim"
	"github.com/automoto/foxfield/tags"
	"github.com/yohamta/donburi"
)

// NetPrediction moves the local player every frame from its held intent,
// without waiting for the server.
type NetPrediction struct {
	Predictor *sim.Predictor
}

// NewNetPrediction creates a prediction system around predictor.
func NewNetPrediction(predictor *sim.Predictor) *NetPrediction {
	return &NetPrediction{Predictor: predictor}
}

// Update runs one predictor step for the local player, if there is one.
func (p *NetPrediction) Update(world donburi.World) {
	entry, ok := tags.LocalPlayer.First(world)
	if !ok || p.Predictor == nil {
		return
	}

	pose := netcomponents.Pose.Get(entry)
	intent := netcomponents.Intent.Get(entry)
	local := components.LocalPlayer.Get(entry)

	res := p.Predictor.Step(pose, *intent)
	local.State = res.State
	local.LastStep = res
}
