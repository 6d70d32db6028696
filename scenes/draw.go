package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/foxfield/components"
	cfg "github.com/automoto/foxfield/config"
	"github.com/automoto/foxfield/fonts"
	"github.com/automoto/foxfield/network"
	"github.com/automoto/foxfield/shared/collision"
	"github.com/automoto/foxfield/shared/gamemath"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/automoto/foxfield/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// camera returns the ground point drawn at the screen centre.
func (ws *WorldScene) camera() gamemath.Point {
	if entry, ok := tags.LocalPlayer.First(ws.ecs.World); ok {
		return netcomponents.Pose.Get(entry).Ground()
	}
	return gamemath.Point{}
}

func toScreen(p, cam gamemath.Point) (float32, float32) {
	ppu := cfg.World.PixelsPerUnit
	return float32((p.X-cam.X)*ppu + float64(cfg.C.Width)/2),
		float32((p.Z-cam.Z)*ppu + float64(cfg.C.Height)/2)
}

func strokePolygon(screen *ebiten.Image, poly [4]gamemath.Point, cam gamemath.Point, width float32, clr color.Color) {
	for i := range poly {
		x0, y0 := toScreen(poly[i], cam)
		x1, y1 := toScreen(poly[(i+1)%len(poly)], cam)
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}

// drawBody outlines an entity and marks its front edge.
func drawBody(screen *ebiten.Image, entry *donburi.Entry, cam gamemath.Point, clr color.Color) {
	pose := netcomponents.Pose.Get(entry)
	body := collision.Body{
		Position: pose.Ground(),
		Heading:  pose.Heading,
		Shape:    *netcomponents.Shape.Get(entry),
	}
	poly := body.Polygon()
	strokePolygon(screen, poly, cam, 2, clr)

	// FR -> FL is the front edge.
	x0, y0 := toScreen(poly[2], cam)
	x1, y1 := toScreen(poly[3], cam)
	vector.StrokeLine(screen, x0, y0, x1, y1, 4, clr, true)
}

func (ws *WorldScene) drawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cam := ws.camera()

	if b := ws.data.Bounds(); !b.IsZero() {
		corners := [4]gamemath.Point{
			{X: b.MinX, Z: b.MaxZ}, {X: b.MinX, Z: b.MinZ},
			{X: b.MaxX, Z: b.MinZ}, {X: b.MaxX, Z: b.MaxZ},
		}
		strokePolygon(screen, corners, cam, 1, cfg.UI.BoundsColor)
	}

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		clr := cfg.UI.TreeColor
		if components.Object.Get(entry).Kind == "house" {
			clr = cfg.UI.HouseColor
		}
		drawBody(screen, entry, cam, clr)
	})

	small := fonts.Small.Get()
	tags.RemotePlayer.Each(e.World, func(entry *donburi.Entry) {
		drawBody(screen, entry, cam, cfg.UI.RemoteColor)
		remote := components.Remote.Get(entry)
		x, y := toScreen(netcomponents.Pose.Get(entry).Ground(), cam)
		label := remote.UserID
		switch {
		case remote.HasControls:
			label += " " + controlsLabel(remote.Controls)
		case remote.Moving:
			label += " *"
		}
		drawText(screen, label, small, int(x)+10, int(y)-10, cfg.UI.TextColor)
	})

	if entry, ok := tags.LocalPlayer.First(e.World); ok {
		drawBody(screen, entry, cam, cfg.UI.LocalColor)
	}
}

func (ws *WorldScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()
	small := fonts.Small.Get()

	client := ws.session.Client
	state := client.State()
	statusColor := cfg.UI.TextColor
	if state != network.StateAuthenticated {
		statusColor = cfg.UI.WarningColor
	}
	status := fmt.Sprintf("%s  %s (attempt %d)", ws.session.Address, state, ws.session.Attempts())
	if ws.session.Offline() {
		status += " (offline)"
	} else if err := client.LastError(); err != nil && state == network.StateError {
		status += ": " + err.Error()
	}
	drawText(screen, status, face, 8, 20, statusColor)
	identity := "user " + ws.session.UserID
	if id := client.ClientID(); id != "" && state == network.StateAuthenticated {
		identity += fmt.Sprintf("  client %s  server tick %d Hz", id, client.TickRate())
	}
	drawText(screen, identity, small, 8, 36, cfg.UI.TextColor)

	help := fmt.Sprintf("WASD/arrows move  %s reconnect  %s disconnect  %s overlay",
		cfg.Input.ReconnectKey, cfg.Input.DisconnectKey, cfg.Input.OverlayKey)
	drawText(screen, help, small, 8, cfg.C.Height-8, cfg.UI.TextColor)

	if !ws.overlay {
		return
	}

	entry, ok := tags.LocalPlayer.First(e.World)
	if !ok {
		return
	}
	pose := netcomponents.Pose.Get(entry)
	local := components.LocalPlayer.Get(entry)
	sched := ws.session.Scheduler
	body := collision.Body{Position: pose.Ground(), Heading: pose.Heading, Shape: cfg.Movement.PlayerShape}

	remotes := 0
	tags.RemotePlayer.Each(e.World, func(*donburi.Entry) { remotes++ })

	lines := []string{
		fmt.Sprintf("pos %.2f, %.2f  heading %.2f  yaw %.2f", pose.X, pose.Z, pose.Heading, gamemath.ModelYaw(pose.Heading)),
		fmt.Sprintf("state %s  blocked x=%v z=%v", local.State, local.LastStep.BlockedX, local.LastStep.BlockedZ),
		fmt.Sprintf("sent %d  dropped %d  pending %v", sched.Sent, sched.Dropped, sched.Pending),
		fmt.Sprintf("snapshots %d  last correction %s  rejected %d", ws.snapshots, local.LastCorrection, client.RejectedEntries()),
		fmt.Sprintf("remotes %d  broad-phase candidates %d  fps %.0f", remotes, ws.engine.Candidates(body), ebiten.ActualFPS()),
	}
	for i, l := range lines {
		drawText(screen, l, small, 8, 56+i*14, cfg.UI.TextColor)
	}
}

// controlsLabel lists the held directions as arrows.
func controlsLabel(c netcomponents.IntentData) string {
	var out string
	if c.Forward {
		out += "^"
	}
	if c.Backward {
		out += "v"
	}
	if c.Left {
		out += "<"
	}
	if c.Right {
		out += ">"
	}
	if out == "" {
		return "-"
	}
	return out
}
