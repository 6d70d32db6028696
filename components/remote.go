package components

import (
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// RemoteData describes another player as last reported by the server.
type RemoteData struct {
	UserID   string
	Controls netcomponents.IntentData
	// HasControls is false when the server sent only a moving flag.
	HasControls bool
	// Moving drives animation choice. It comes from the reported controls,
	// not from positional change between snapshots.
	Moving bool
}

var Remote = donburi.NewComponentType[RemoteData]()
