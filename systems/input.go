package systems

import (
	"log"

	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugInput handles the debug keys of the demo scene:
//
//	I toggles interpolation on every body
//	G toggles drawing of the cached snapshot
//	L toggles lifecycle logging
//
// Display toggles are saved as they change.
func UpdateDebugInput(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		ToggleInterpolation(ecs.World)
	}
	toggled := false
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		cfg.Debug.DrawSnapshot = !cfg.Debug.DrawSnapshot
		toggled = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		cfg.Debug.LogLifecycle = !cfg.Debug.LogLifecycle
		toggled = true
	}
	if toggled {
		_ = SaveSettings(CurrentSettings())
	}
}

// ToggleInterpolation excludes every body from interpolation, or brings them
// all back if any is already excluded.
func ToggleInterpolation(w donburi.World) {
	var bodies []*donburi.Entry
	anyExcluded := false
	tags.Body.Each(w, func(e *donburi.Entry) {
		bodies = append(bodies, e)
		if e.HasComponent(tags.DisableInterpolation) {
			anyExcluded = true
		}
	})

	for _, e := range bodies {
		if anyExcluded {
			EnableInterpolation(e)
		} else {
			DisableInterpolation(e)
		}
	}
	state := "disabled"
	if anyExcluded {
		state = "enabled"
	}
	log.Printf("Interpolation %s for %d bodies", state, len(bodies))
}

// CountInterpolated returns the number of entities currently blended.
func CountInterpolated(w donburi.World) int {
	n := 0
	components.Interpolation.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(tags.DisableInterpolation) {
			n++
		}
	})
	return n
}
