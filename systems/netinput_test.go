package systems

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/automoto/foxfield/components"
	"github.com/automoto/foxfield/input"
	"github.com/automoto/foxfield/network"
	"github.com/automoto/foxfield/shared/collision"
	"github.com/automoto/foxfield/shared/gamemath"
	"github.com/automoto/foxfield/shared/messages"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/automoto/foxfield/sim"
	"github.com/automoto/foxfield/systems/factory"
	"github.com/yohamta/donburi"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestFramePipeline(t *testing.T) {
	world := donburi.NewWorld()
	local := factory.CreateLocalPlayer(world, "me", netcomponents.PoseData{})

	capture := input.NewCapture(map[string]input.Move{"A": input.MoveLeft})
	prediction := NewNetPrediction(&sim.Predictor{
		Speed:    0.2,
		Shape:    gamemath.BoxShape(1, 1),
		Collider: collision.Obstacles(nil),
	})

	var sent []messages.PlayerUpdate
	clock := &fakeClock{now: time.Unix(0, 0)}
	sender := NewNetInput(network.NewTickScheduler(50*time.Millisecond), func(msg any) error {
		sent = append(sent, msg.(messages.PlayerUpdate))
		return nil
	})
	sender.Now = clock.Now

	capture.Press("A")
	const frames = 30
	for i := 0; i < frames; i++ {
		CaptureIntent(world, capture)
		prediction.Update(world)
		sender.Update(world)
		clock.advance(20 * time.Millisecond)
	}

	pose := netcomponents.Pose.Get(local)
	if math.Abs(pose.X-(-frames*0.2)) > 1e-9 {
		t.Errorf("X = %v, want %v", pose.X, -frames*0.2)
	}
	if math.Abs(pose.Heading-math.Pi) > 1e-9 {
		t.Errorf("heading = %v, want pi", pose.Heading)
	}
	if components.LocalPlayer.Get(local).State != sim.Moving {
		t.Error("local state should be moving")
	}

	// Mount at t=0, then every third 20ms frame (60ms >= 50ms).
	if len(sent) != 10 {
		t.Errorf("sent %d updates, want 10", len(sent))
	}
	if len(sent) > 0 && (!sent[0].Controls.Left || sent[0].ID != "me" || !sent[0].Moving) {
		t.Errorf("unexpected update %+v", sent[0])
	}

	capture.Release("A")
	CaptureIntent(world, capture)
	prediction.Update(world)
	if components.LocalPlayer.Get(local).State != sim.Idle {
		t.Error("local state should be idle after release")
	}
}

func TestNetInputSurvivesSendFailure(t *testing.T) {
	world := donburi.NewWorld()
	factory.CreateLocalPlayer(world, "me", netcomponents.PoseData{})

	clock := &fakeClock{now: time.Unix(0, 0)}
	scheduler := network.NewTickScheduler(50 * time.Millisecond)
	sender := NewNetInput(scheduler, func(any) error { return network.ErrNotConnected })
	sender.Now = clock.Now

	for i := 0; i < 10; i++ {
		sender.Update(world)
		clock.advance(50 * time.Millisecond)
	}
	if !scheduler.Pending || !errors.Is(scheduler.LastErr, network.ErrNotConnected) {
		t.Errorf("scheduler should be pending with ErrNotConnected, got %+v", scheduler)
	}
	if scheduler.Dropped != 10 {
		t.Errorf("Dropped = %d, want 10", scheduler.Dropped)
	}
}

func TestSystemsWithoutLocalPlayer(t *testing.T) {
	world := donburi.NewWorld()
	capture := input.NewCapture(nil)

	// None of these may panic on an empty world.
	CaptureIntent(world, capture)
	NewNetPrediction(&sim.Predictor{Speed: 1}).Update(world)
	NewNetInput(network.NewTickScheduler(time.Millisecond), func(any) error {
		t.Error("nothing should be sent without a local player")
		return nil
	}).Update(world)
}

func TestNetInputMountsWhenConnectionReady(t *testing.T) {
	world := donburi.NewWorld()
	factory.CreateLocalPlayer(world, "me", netcomponents.PoseData{})

	connected := false
	var deliveries []time.Duration
	clock := &fakeClock{now: time.Unix(0, 0)}
	start := clock.now

	scheduler := network.NewTickScheduler(50 * time.Millisecond)
	sender := NewNetInput(scheduler, func(any) error {
		if !connected {
			return network.ErrNotConnected
		}
		deliveries = append(deliveries, clock.now.Sub(start))
		return nil
	})
	sender.Now = clock.Now
	sender.Ready = func() bool { return connected }

	frame := 16 * time.Millisecond
	for i := 0; i < 10; i++ {
		// The socket becomes usable on the second frame.
		if i == 1 {
			connected = true
		}
		sender.Update(world)
		clock.advance(frame)
	}

	if len(deliveries) == 0 || deliveries[0] != frame {
		t.Fatalf("first delivery at %v, want %v", deliveries, frame)
	}
	if scheduler.Dropped != 0 {
		t.Errorf("Dropped = %d, nothing should be sent before the connection is ready", scheduler.Dropped)
	}

	// Losing the connection re-arms the initial send for the next one.
	connected = false
	sender.Update(world)
	if scheduler.Mounted() {
		t.Error("scheduler should be re-armed while disconnected")
	}
	clock.advance(frame)
	connected = true
	before := len(deliveries)
	sender.Update(world)
	if len(deliveries) != before+1 {
		t.Error("expected an immediate send on reconnect")
	}
}
