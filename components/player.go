package components

import (
	"github.com/automoto/foxfield/sim"
	"github.com/yohamta/donburi"
)

// LocalPlayerData is the state owned by the locally controlled entity.
type LocalPlayerData struct {
	UserID         string
	State          sim.MoveState
	LastStep       sim.StepResult
	LastCorrection sim.Correction
	// Synced is false until a snapshot containing us has been applied.
	Synced bool
}

var LocalPlayer = donburi.NewComponentType[LocalPlayerData]()
