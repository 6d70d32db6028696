// Package input turns raw key and stick events into a movement intent. It
// knows key names only, so the frame loop owns the ebiten side.
package input

import (
	"math"

	"github.com/automoto/foxfield/shared/netcomponents"
)

// Move is one of the four movement directions.
type Move int

const (
	MoveNone Move = iota
	MoveForward
	MoveBackward
	MoveLeft
	MoveRight
)

func (m Move) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return "none"
}

// Capture tracks which bound keys are currently held. Several keys may map to
// the same move; the move stays held until all of them are released.
type Capture struct {
	bindings map[string]Move
	held     map[string]Move
	stick    netcomponents.IntentData
}

// NewCapture builds a capture from key name -> move bindings.
func NewCapture(bindings map[string]Move) *Capture {
	b := make(map[string]Move, len(bindings))
	for k, m := range bindings {
		if m != MoveNone {
			b[k] = m
		}
	}
	return &Capture{
		bindings: b,
		held:     make(map[string]Move),
	}
}

// Press records a key down. It reports whether the key is bound.
func (c *Capture) Press(key string) bool {
	m, ok := c.bindings[key]
	if !ok {
		return false
	}
	c.held[key] = m
	return true
}

// Release records a key up. Unbound or unheld keys are ignored.
func (c *Capture) Release(key string) {
	delete(c.held, key)
}

// SetStick replaces the analog contribution. It is OR-ed with the keys.
func (c *Capture) SetStick(intent netcomponents.IntentData) {
	c.stick = intent
}

// Reset drops every held key and the stick, e.g. when the window loses
// focus and key-up events will never arrive.
func (c *Capture) Reset() {
	clear(c.held)
	c.stick = netcomponents.IntentData{}
}

// Intent returns the currently held directions.
func (c *Capture) Intent() netcomponents.IntentData {
	out := c.stick
	for _, m := range c.held {
		switch m {
		case MoveForward:
			out.Forward = true
		case MoveBackward:
			out.Backward = true
		case MoveLeft:
			out.Left = true
		case MoveRight:
			out.Right = true
		}
	}
	return out
}

// IntentFromAngle maps a joystick angle in degrees (0 = right, 90 = up,
// counter-clockwise) to one of eight intents by rounding to 45 degrees.
func IntentFromAngle(deg float64) netcomponents.IntentData {
	sector := int(math.Round(deg/45)) % 8
	if sector < 0 {
		sector += 8
	}
	switch sector {
	case 0:
		return netcomponents.IntentData{Right: true}
	case 1:
		return netcomponents.IntentData{Forward: true, Right: true}
	case 2:
		return netcomponents.IntentData{Forward: true}
	case 3:
		return netcomponents.IntentData{Forward: true, Left: true}
	case 4:
		return netcomponents.IntentData{Left: true}
	case 5:
		return netcomponents.IntentData{Left: true, Backward: true}
	case 6:
		return netcomponents.IntentData{Backward: true}
	default:
		return netcomponents.IntentData{Backward: true, Right: true}
	}
}

// IntentFromStick maps a gamepad stick (x right, y down, each in [-1, 1]) to
// an intent. Deflection inside deadzone yields no intent.
func IntentFromStick(x, y, deadzone float64) netcomponents.IntentData {
	if math.Hypot(x, y) <= deadzone {
		return netcomponents.IntentData{}
	}
	deg := math.Atan2(-y, x) * 180 / math.Pi
	return IntentFromAngle(deg)
}
