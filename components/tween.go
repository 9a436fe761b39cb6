package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData ping-pongs a 0..1 progress value. Reverse flips the direction of
// travel each time the tween finishes.
type TweenData struct {
	Tween   *gween.Tween
	Reverse bool
	Value   float64
}

// KinematicPathData moves a kinematic body between two points by its tween.
type KinematicPathData struct {
	From mgl64.Vec3
	To   mgl64.Vec3
}

// ColliderPulseData grows and shrinks a collider by its tween.
type ColliderPulseData struct {
	MinScale float64
	MaxScale float64
}

var (
	Tween         = donburi.NewComponentType[TweenData]()
	KinematicPath = donburi.NewComponentType[KinematicPathData]()
	ColliderPulse = donburi.NewComponentType[ColliderPulseData]()
)
