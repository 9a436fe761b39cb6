package systems

import (
	"fmt"

	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the clock state. It draws nothing until the fonts are
// loaded.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) || !fonts.Loaded(fonts.Small) {
		return
	}
	entry, ok := components.FixedTime.First(ecs.World)
	if !ok {
		return
	}
	clock := components.FixedTime.Get(entry)

	info := fmt.Sprintf("tick %d  alpha %.2f  interpolated %d  fps %.0f",
		clock.Tick, Overstep(ecs.World), CountInterpolated(ecs.World), ebiten.ActualFPS())
	text.Draw(screen, info, fonts.HUD.Get(), 8, 20, cfg.LightGreen)
	text.Draw(screen, "I interpolation  G snapshots  L lifecycle log", fonts.Small.Get(), 8, 38, cfg.White)
}
