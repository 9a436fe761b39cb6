package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ColliderData is the collision shape of a body. Its size relative to the
// size it was created with is the shape-derived scale.
type ColliderData struct {
	*resolv.Object
	BaseWidth  float64
	BaseHeight float64
}

// Scale returns the current shape scale. Depth is never scaled.
func (c *ColliderData) Scale() mgl64.Vec3 {
	if c.Object == nil || c.BaseWidth == 0 || c.BaseHeight == 0 {
		return mgl64.Vec3{1, 1, 1}
	}
	return mgl64.Vec3{c.W / c.BaseWidth, c.H / c.BaseHeight, 1}
}

var (
	Collider = donburi.NewComponentType[ColliderData]()
	Space    = donburi.NewComponentType[resolv.Space]()
)
