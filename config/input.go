package config

import "github.com/automoto/foxfield/input"

// InputConfig holds key bindings by ebiten key name.
type InputConfig struct {
	Bindings map[string]input.Move
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Session keys, by ebiten key name.
	ReconnectKey  string
	DisconnectKey string
	OverlayKey    string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[string]input.Move{
			"W":          input.MoveForward,
			"ArrowUp":    input.MoveForward,
			"S":          input.MoveBackward,
			"ArrowDown":  input.MoveBackward,
			"A":          input.MoveLeft,
			"ArrowLeft":  input.MoveLeft,
			"D":          input.MoveRight,
			"ArrowRight": input.MoveRight,
		},
		ReconnectKey:  "R",
		DisconnectKey: "X",
		OverlayKey:    "F3",
	}
}
