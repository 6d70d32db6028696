package messages

import "github.com/automoto/foxfield/shared/netcomponents"

// Event names used on the wire.
const (
	EventPlayers      = "players"
	EventPlayerUpdate = "player_update"
)

// PlayerUpdate is the client's intent for one tick. The server derives the
// pose itself from repeated intents, so a late update is still meaningful.
type PlayerUpdate struct {
	ID       string                   `json:"id" codec:"id"`
	Controls netcomponents.IntentData `json:"controls" codec:"controls"`
	Moving   bool                     `json:"moving" codec:"moving"`
}

// NewPlayerUpdate builds the update for id from the held intent.
func NewPlayerUpdate(id string, intent netcomponents.IntentData) PlayerUpdate {
	return PlayerUpdate{ID: id, Controls: intent, Moving: intent.Moving()}
}
