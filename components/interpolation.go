package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InterpolationMode selects how one transform field is presented between
// ticks.
type InterpolationMode int

const (
	// InterpolateBlend blends from the previous tick's value to the current
	// one by the tick progress fraction. This is the default.
	InterpolateBlend InterpolationMode = iota
	// InterpolateLast presents the current authoritative value as-is.
	InterpolateLast
	// InterpolateOff leaves the field alone so something else can drive it.
	InterpolateOff
)

func (m InterpolationMode) String() string {
	switch m {
	case InterpolateBlend:
		return "blend"
	case InterpolateLast:
		return "last"
	case InterpolateOff:
		return "off"
	}
	return "unknown"
}

// InterpolationData is the per-entity interpolation policy. Application code
// may change it at any time.
type InterpolationData struct {
	Translation InterpolationMode
	Rotation    InterpolationMode
	Scale       InterpolationMode
}

// PreviousPositionData is the position cached at the last tick boundary.
type PreviousPositionData struct {
	mgl64.Vec3
}

// PreviousRotationData is the rotation cached at the last tick boundary.
type PreviousRotationData struct {
	mgl64.Quat
}

// PreviousScaleData is the collider scale cached at the last tick boundary.
type PreviousScaleData struct {
	mgl64.Vec3
}

var (
	Interpolation    = donburi.NewComponentType[InterpolationData]()
	PreviousPosition = donburi.NewComponentType[PreviousPositionData]()
	PreviousRotation = donburi.NewComponentType[PreviousRotationData](PreviousRotationData{Quat: mgl64.QuatIdent()})
	PreviousScale    = donburi.NewComponentType[PreviousScaleData](PreviousScaleData{Vec3: mgl64.Vec3{1, 1, 1}})
)
