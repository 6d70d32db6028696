package config

import (
	"image/color"
	"time"

	"github.com/automoto/foxfield/shared/gamemath"
)

// Config holds window settings.
type Config struct {
	Width  int
	Height int
	Title  string
}

// MovementConfig contains the local movement rules. They must match the
// server's so prediction and authority agree.
type MovementConfig struct {
	// Speed is the displacement per frame on each held axis.
	Speed   float64
	GroundY float64
	// PlayerShape is the player's footprint, facing +X.
	PlayerShape gamemath.Shape
}

// NetConfig contains network timing and correction tuning.
type NetConfig struct {
	ServerAddress string
	Version       string

	TickInterval time.Duration // 20 sends per second

	ReconcileThreshold float64 // World units of divergence tolerated per axis
	ReconcileBlend     float64 // Fraction of the gap closed per snapshot
	SnapDistance       float64 // Divergence treated as a teleport

	InterpFactor float64 // Per-frame blend of remote display poses

	ReconnectDelay time.Duration
	PingTimeout    time.Duration
}

// WorldConfig contains world loading settings.
type WorldConfig struct {
	// Source is an embedded world name, a file path or an http(s) URL.
	Source     string
	RetryDelay time.Duration
	// PixelsPerUnit scales world units to screen pixels in the overlay.
	PixelsPerUnit float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool   // Draw footprints and the connection HUD details
	LogFile string // Rolling log file, empty for stderr only
}

// UIConfig contains overlay colours.
type UIConfig struct {
	Background   color.RGBA
	LocalColor   color.RGBA
	RemoteColor  color.RGBA
	TreeColor    color.RGBA
	HouseColor   color.RGBA
	BoundsColor  color.RGBA
	TextColor    color.RGBA
	WarningColor color.RGBA
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Net NetConfig
var World WorldConfig
var Debug DebugConfig
var UI UIConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "foxfield",
	}

	Movement = MovementConfig{
		Speed:       0.2,
		GroundY:     0,
		PlayerShape: gamemath.BoxShape(1.2, 0.8),
	}

	Net = NetConfig{
		ServerAddress:      "localhost:8080",
		Version:            "0.1.0",
		TickInterval:       50 * time.Millisecond,
		ReconcileThreshold: 0.5,
		ReconcileBlend:     0.3,
		SnapDistance:       8,
		InterpFactor:       0.2,
		ReconnectDelay:     3 * time.Second,
		PingTimeout:        2 * time.Second,
	}

	World = WorldConfig{
		Source:        "meadow",
		RetryDelay:    2 * time.Second,
		PixelsPerUnit: 16,
	}

	UI = UIConfig{
		Background:   color.RGBA{R: 0x2f, G: 0x4f, B: 0x2f, A: 0xff},
		LocalColor:   color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff},
		RemoteColor:  color.RGBA{R: 0xff, G: 0xd7, B: 0x80, A: 0xff},
		TreeColor:    color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff},
		HouseColor:   color.RGBA{R: 0xa0, G: 0x52, B: 0x2d, A: 0xff},
		BoundsColor:  color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		TextColor:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		WarningColor: color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	}
}
