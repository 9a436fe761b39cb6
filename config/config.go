package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the debug scene draws on.
const Default ecs.LayerID = 0

// InterpolationConfig contains the fixed-tick clock and blend settings
type InterpolationConfig struct {
	// Clock
	TickRate     float64       // Simulation ticks per second
	MaxFrameTime time.Duration // Longest frame the clock will account for (spiral-of-death cap)

	// Write skipping. A field is left alone when the new value is within this
	// distance of the presented one: squared distance for translation and
	// scale, 1-|dot| for rotation.
	WriteEpsilon float64
}

// PhysicsConfig contains values for the simulation stand-in that feeds the
// interpolation core with authoritative poses.
type PhysicsConfig struct {
	SpaceWidth  int
	SpaceHeight int
	CellWidth   int
	CellHeight  int

	// Kinematic movers
	PathDuration  float32 // Seconds for one leg of a kinematic path
	PulseDuration float32 // Seconds for one leg of a collider pulse
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	LogLifecycle bool // Log every applied lifecycle transition
	DrawSnapshot bool // Draw the cached previous pose next to the presented one
}

// Global configuration instances
var C *Config
var Interpolation InterpolationConfig
var Physics PhysicsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue    = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gray        = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	GhostRed    = color.RGBA{R: 255, G: 60, B: 60, A: 110}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "tickinterp",
	}

	Interpolation = InterpolationConfig{
		TickRate:     20,
		MaxFrameTime: 250 * time.Millisecond,
		WriteEpsilon: 1e-10,
	}

	Physics = PhysicsConfig{
		SpaceWidth:    960,
		SpaceHeight:   540,
		CellWidth:     16,
		CellHeight:    16,
		PathDuration:  2,
		PulseDuration: 1.5,
	}
}
