package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/automoto/tickinterp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// propSize is the drawn size of presentation-only entities.
const propSize = 8.0

// DrawBodies draws every entity's resolved world transform as a rotated box.
// Nothing here reads the authoritative pose; what is drawn is exactly what
// the interpolation produced.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	components.GlobalTransform.Each(ecs.World, func(e *donburi.Entry) {
		global := components.GlobalTransform.Get(e)

		w, h := propSize, propSize
		clr := cfg.LightBlue
		if e.HasComponent(components.Collider) {
			c := components.Collider.Get(e)
			w, h = c.BaseWidth, c.BaseHeight
			clr = bodyColor(e)
		}
		w *= global.Scale.X()
		h *= global.Scale.Y()
		drawBox(screen, global.Translation, global.Rotation, w, h, clr)

		if cfg.Debug.DrawSnapshot && e.HasComponent(components.PreviousPosition) {
			prev := components.PreviousPosition.Get(e)
			vector.DrawFilledRect(screen, float32(prev.X())-2, float32(prev.Y())-2, 4, 4, cfg.GhostRed, false)
		}
	})
}

func bodyColor(e *donburi.Entry) color.RGBA {
	switch {
	case e.HasComponent(tags.DisableInterpolation):
		return cfg.Orange
	case !e.HasComponent(components.RigidBody):
		return cfg.LightBlue
	case components.RigidBody.Get(e).Kind == components.BodyStatic:
		return cfg.Gray
	case e.HasComponent(components.Interpolation) &&
		components.Interpolation.Get(e).Translation == components.InterpolateLast:
		return cfg.DarkBlue
	}
	return cfg.BrightGreen
}

func drawBox(screen *ebiten.Image, center mgl64.Vec3, rot mgl64.Quat, w, h float64, clr color.Color) {
	angle := mathutil.Angle2D(rot)
	sin, cos := math.Sincos(angle)
	hw, hh := w/2, h/2
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	var pts [4][2]float32
	for i, c := range corners {
		pts[i][0] = float32(center.X() + c[0]*cos - c[1]*sin)
		pts[i][1] = float32(center.Y() + c[0]*sin + c[1]*cos)
	}
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, pts[i][0], pts[i][1], next[0], next[1], 2, clr, false)
	}
}
