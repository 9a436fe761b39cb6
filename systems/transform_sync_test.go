package systems_test

import (
	"errors"
	"testing"

	"github.com/automoto/tickinterp/components"
	"github.com/automoto/tickinterp/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func TestDisableTransformSyncWithoutConfig(t *testing.T) {
	err := systems.DisableTransformSync(donburi.NewWorld())
	if !errors.Is(err, systems.ErrSyncConfigMissing) {
		t.Errorf("Expected ErrSyncConfigMissing, got %v", err)
	}
}

func TestTransformSyncRunsUntilDisabled(t *testing.T) {
	e := newTestECS(t)
	body := spawnDynamic(e, mgl64.Vec3{0, 0, 0})

	components.Position.Get(body).Vec3 = mgl64.Vec3{4, 0, 0}
	systems.SyncPositionToTransform(e)
	assertVec3(t, "synced translation", translationOf(body), mgl64.Vec3{4, 0, 0})

	if err := systems.DisableTransformSync(e.World); err != nil {
		t.Fatalf("Expected sync to be disabled, got %v", err)
	}
	entry, _ := components.SyncConfig.First(e.World)
	if cfg := components.SyncConfig.Get(entry); cfg.PositionToTransform || cfg.TransformToPosition {
		t.Fatalf("Expected both directions off, got %+v", *cfg)
	}

	components.Position.Get(body).Vec3 = mgl64.Vec3{8, 0, 0}
	systems.SyncPositionToTransform(e)
	assertVec3(t, "translation after disable", translationOf(body), mgl64.Vec3{4, 0, 0})

	components.GlobalTransform.Get(body).Translation = mgl64.Vec3{-3, 0, 0}
	systems.SyncTransformToPosition(e)
	assertVec3(t, "position after disable", components.Position.Get(body).Vec3, mgl64.Vec3{8, 0, 0})
}

func TestSyncTransformToPosition(t *testing.T) {
	e := newTestECS(t)
	body := spawnDynamic(e, mgl64.Vec3{0, 0, 0})

	components.GlobalTransform.Get(body).Translation = mgl64.Vec3{0, 12, 0}
	systems.SyncTransformToPosition(e)

	assertVec3(t, "position", components.Position.Get(body).Vec3, mgl64.Vec3{0, 12, 0})
}
