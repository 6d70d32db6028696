package netcomponents

import "github.com/yohamta/donburi"

// IntentData is the set of movement keys currently held. Field tags match the
// lower-case keys of the wire format.
type IntentData struct {
	Forward  bool `json:"forward" codec:"forward"`
	Backward bool `json:"backward" codec:"backward"`
	Left     bool `json:"left" codec:"left"`
	Right    bool `json:"right" codec:"right"`
}

// Moving reports whether any direction is held.
func (i IntentData) Moving() bool {
	return i.Forward || i.Backward || i.Left || i.Right
}

var Intent = donburi.NewComponentType[IntentData]()
