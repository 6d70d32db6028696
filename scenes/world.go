package scenes

import (
	"sync"
	"time"

	"github.com/automoto/foxfield/components"
	cfg "github.com/automoto/foxfield/config"
	"github.com/automoto/foxfield/input"
	"github.com/automoto/foxfield/logging"
	"github.com/automoto/foxfield/network"
	"github.com/automoto/foxfield/shared/collision"
	"github.com/automoto/foxfield/shared/leveldata"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/automoto/foxfield/sim"
	"github.com/automoto/foxfield/systems"
	"github.com/automoto/foxfield/systems/factory"
	"github.com/automoto/foxfield/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// WorldScene runs the game: local prediction, snapshot reconciliation and
// remote smoothing, drawn as a top-down overlay.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *network.Session
	data         *leveldata.WorldData
	engine       *collision.Engine

	capture    *input.Capture
	prediction *systems.NetPrediction
	netInput   *systems.NetInput
	recon      sim.ReconcileConfig

	overlay      bool
	lastSnapshot systems.SnapshotResult
	snapshots    int

	keys       []ebiten.Key
	gamepadIDs []ebiten.GamepadID
	once       sync.Once
}

func NewWorldScene(sc SceneChanger, session *network.Session, data *leveldata.WorldData) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		session:      session,
		data:         data,
		overlay:      cfg.Debug.Overlay,
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	now := time.Now()
	ws.handleKeys(now)
	ws.handleFocusAndGamepad()

	if ws.session.Maintain(now) {
		ws.markUnsynced()
	}

	if snap := ws.session.Client.LatestSnapshot(); snap != nil {
		ws.lastSnapshot = systems.ApplySnapshot(ws.ecs.World, snap, ws.recon)
		ws.snapshots++
	}

	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	obstacles := ws.data.Obstacles()
	ws.engine = collision.NewEngine(obstacles)
	factory.CreateObstacles(ws.ecs.World, obstacles)
	factory.CreateLocalPlayer(ws.ecs.World, ws.session.UserID, netcomponents.PoseData{})

	ws.capture = input.NewCapture(cfg.Input.Bindings)
	ws.prediction = systems.NewNetPrediction(&sim.Predictor{
		Speed:    cfg.Movement.Speed,
		Shape:    cfg.Movement.PlayerShape,
		Bounds:   ws.data.Bounds(),
		Collider: ws.engine,
	})
	ws.netInput = systems.NewNetInput(ws.session.Scheduler, ws.session.Client.SendMessage)
	ws.netInput.Ready = ws.session.Client.Authenticated
	ws.recon = sim.ReconcileConfig{
		Threshold:    cfg.Net.ReconcileThreshold,
		BlendFactor:  cfg.Net.ReconcileBlend,
		SnapDistance: cfg.Net.SnapDistance,
	}

	// Order matters: intent, then prediction, then the send, then remotes.
	ws.ecs.AddSystem(func(e *ecs.ECS) { systems.CaptureIntent(e.World, ws.capture) })
	ws.ecs.AddSystem(func(e *ecs.ECS) { ws.prediction.Update(e.World) })
	ws.ecs.AddSystem(func(e *ecs.ECS) { ws.netInput.Update(e.World) })
	ws.ecs.AddSystem(func(e *ecs.ECS) { systems.InterpolateRemotes(e.World, cfg.Net.InterpFactor) })

	ws.ecs.AddRenderer(layerWorld, ws.drawWorld)
	ws.ecs.AddRenderer(layerHUD, ws.drawHUD)

	ws.session.Connect(time.Now())
	logging.Named("world").Infow("world ready", "obstacles", len(obstacles), "bounds", ws.data.Bounds())
}

func (ws *WorldScene) handleKeys(now time.Time) {
	ws.keys = inpututil.AppendJustPressedKeys(ws.keys[:0])
	for _, k := range ws.keys {
		name := k.String()
		if ws.capture.Press(name) {
			continue
		}
		switch name {
		case cfg.Input.ReconnectKey:
			ws.session.Reconnect(now)
			ws.markUnsynced()
		case cfg.Input.DisconnectKey:
			ws.session.Disconnect()
		case cfg.Input.OverlayKey:
			ws.overlay = !ws.overlay
		}
	}

	ws.keys = inpututil.AppendJustReleasedKeys(ws.keys[:0])
	for _, k := range ws.keys {
		ws.capture.Release(k.String())
	}
}

func (ws *WorldScene) handleFocusAndGamepad() {
	// Key-up events are lost while unfocused, so held keys would stick.
	if !ebiten.IsFocused() {
		ws.capture.Reset()
		return
	}

	ws.gamepadIDs = ebiten.AppendGamepadIDs(ws.gamepadIDs[:0])
	var stick netcomponents.IntentData
	for _, id := range ws.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		stick = input.IntentFromStick(x, y, cfg.Input.AnalogDeadzone)
		if stick.Moving() {
			break
		}
	}
	ws.capture.SetStick(stick)
}

// markUnsynced makes the next snapshot from the new connection place the
// local player outright.
func (ws *WorldScene) markUnsynced() {
	if entry, ok := tags.LocalPlayer.First(ws.ecs.World); ok {
		components.LocalPlayer.Get(entry).Synced = false
	}
}

// Overlay reports whether the diagnostics overlay is showing.
func (ws *WorldScene) Overlay() bool {
	return ws.overlay
}
