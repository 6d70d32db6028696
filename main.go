package main

import (
	"context"
	"flag"
	"image"
	"log"

	"github.com/automoto/foxfield/config"
	"github.com/automoto/foxfield/fonts"
	"github.com/automoto/foxfield/logging"
	"github.com/automoto/foxfield/network"
	"github.com/automoto/foxfield/scenes"
	"github.com/automoto/foxfield/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *network.Session, world string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoadingScene(g, session, world)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func main() {
	server := flag.String("server", "", "game server host:port or ws:// URL")
	user := flag.String("user", "", "user id to join with")
	token := flag.String("token", "", "JWT identity token; its subject becomes the user id")
	world := flag.String("world", "", "world name, file path or http(s) URL")
	logFile := flag.String("log", "", "also write logs to this file")
	debug := flag.Bool("debug", false, "debug logging and the diagnostics overlay")
	flag.Parse()

	config.Debug.LogFile = pick(*logFile, config.Debug.LogFile)
	logging.Init(config.Debug.LogFile, *debug)
	defer logging.Sync()
	logger := logging.Named("main")

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(config.C.Title); err != nil {
		logger.Warnw("settings will not persist", "err", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil || saved == nil {
		saved = &systems.SavedSettings{}
	}

	config.Net.ServerAddress = pick(*server, saved.ServerAddress, config.Net.ServerAddress)
	config.World.Source = pick(*world, saved.World, config.World.Source)
	config.Debug.Overlay = *debug || saved.Overlay

	// A saved guest id keeps the same identity across runs; an explicit
	// user or token replaces it.
	userID, source := network.ResolveUserID(*user, *token)
	if source == network.IdentityGuest && saved.UserID != "" {
		userID = saved.UserID
	}
	logger.Infow("starting", "server", config.Net.ServerAddress, "user", userID, "identity", source, "world", config.World.Source)

	ctx, cancel := context.WithTimeout(context.Background(), config.Net.PingTimeout)
	if rtt, err := network.Ping(ctx, nil, config.Net.ServerAddress); err != nil {
		logger.Warnw("server did not answer ping, connecting anyway", "err", err)
	} else {
		logger.Infow("server reachable", "rtt", rtt)
	}
	cancel()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	session := network.NewSession(config.Net.ServerAddress, config.Net.Version, userID, *token,
		config.Net.TickInterval, config.Net.ReconnectDelay)
	game := NewGame(session, config.World.Source)

	runErr := ebiten.RunGame(game)
	session.Disconnect()

	overlay := config.Debug.Overlay
	if ws, ok := game.scene.(*scenes.WorldScene); ok {
		overlay = ws.Overlay()
	}
	if err := systems.SaveSettings(&systems.SavedSettings{
		ServerAddress: config.Net.ServerAddress,
		UserID:        userID,
		World:         config.World.Source,
		Overlay:       overlay,
	}); err != nil {
		logger.Warnw("could not save settings", "err", err)
	}

	if runErr != nil {
		logger.Errorw("game exited", "err", runErr)
		logging.Sync()
		log.Fatal(runErr)
	}
}
