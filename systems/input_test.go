package systems_test

import (
	"testing"

	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/systems"
	"github.com/automoto/tickinterp/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

func TestToggleInterpolation(t *testing.T) {
	e := newTestECS(t)
	spawnDynamic(e, mgl64.Vec3{})
	spawnDynamic(e, mgl64.Vec3{5, 0, 0})
	factory.CreateBody(e, factory.BodyConfig{Kind: components.BodyStatic})

	if got := systems.CountInterpolated(e.World); got != 2 {
		t.Fatalf("Expected 2 interpolated bodies, got %d", got)
	}

	systems.ToggleInterpolation(e.World)
	if got := systems.CountInterpolated(e.World); got != 0 {
		t.Errorf("Expected none after toggling off, got %d", got)
	}

	systems.ToggleInterpolation(e.World)
	if got := systems.CountInterpolated(e.World); got != 2 {
		t.Errorf("Expected 2 after toggling back on, got %d", got)
	}
}

func TestSettingsRoundTripThroughConfig(t *testing.T) {
	saved := cfg.Debug
	defer func() { cfg.Debug = saved }()

	systems.ApplySavedSettings(&systems.SavedSettings{DrawSnapshot: true, LogLifecycle: true})
	got := systems.CurrentSettings()
	if !got.DrawSnapshot || !got.LogLifecycle {
		t.Errorf("Expected applied settings to be current, got %+v", *got)
	}

	// Nothing to apply
	systems.ApplySavedSettings(nil)
	if !cfg.Debug.DrawSnapshot {
		t.Error("Expected nil settings to leave config alone")
	}
}
