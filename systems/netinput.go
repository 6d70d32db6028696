package systems

import (
	"time"

	"github.com/automoto/foxfield/components"
	"github.com/automoto/foxfield/input"
	"github.com/automoto/foxfield/logging"
	"github.com/automoto/foxfield/network"
	"github.com/automoto/foxfield/shared/messages"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/automoto/foxfield/tags"
	"github.com/yohamta/donburi"
)

// CaptureIntent copies the held directions onto the local player. It must
// run before prediction each frame.
func CaptureIntent(world donburi.World, capture *input.Capture) {
	entry, ok := tags.LocalPlayer.First(world)
	if !ok {
		return
	}
	netcomponents.Intent.SetValue(entry, capture.Intent())
}

// NetInput sends the local intent to the server at the scheduler's rate,
// plus once as soon as each connection is ready.
type NetInput struct {
	Scheduler *network.TickScheduler
	Send      func(any) error
	Now       func() time.Time
	// Ready reports whether the server can take updates. Nil means always.
	Ready func() bool
}

// NewNetInput returns a sender using the wall clock.
func NewNetInput(scheduler *network.TickScheduler, send func(any) error) *NetInput {
	return &NetInput{Scheduler: scheduler, Send: send, Now: time.Now}
}

// Update emits a PlayerUpdate if one is due. Send failures are logged and
// left to the scheduler's retry; they never stop the frame.
func (n *NetInput) Update(world donburi.World) {
	entry, ok := tags.LocalPlayer.First(world)
	if !ok {
		return
	}

	local := components.LocalPlayer.Get(entry)
	intent := netcomponents.Intent.Get(entry)
	send := func() error {
		return n.Send(messages.NewPlayerUpdate(local.UserID, *intent))
	}

	// The initial send waits for a usable connection, and a lost one
	// re-arms it for the next.
	if n.Ready != nil && !n.Ready() {
		if n.Scheduler.Mounted() {
			n.Scheduler.Reset()
		}
		return
	}

	now := n.Now()
	var err error
	if !n.Scheduler.Mounted() {
		err = n.Scheduler.Mount(now, send)
	} else {
		_, err = n.Scheduler.Tick(now, send)
	}
	if err != nil {
		logging.Named("netinput").Debugw("send failed", "err", err, "dropped", n.Scheduler.Dropped)
	}
}
