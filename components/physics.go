package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BodyKind tells whether the simulation ever moves a body.
type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyKinematic
	BodyStatic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	case BodyStatic:
		return "static"
	}
	return "unknown"
}

// RigidBodyData marks an entity as simulated.
type RigidBodyData struct {
	Kind BodyKind
}

// CanMove reports whether the simulation may change this body's pose.
func (b *RigidBodyData) CanMove() bool {
	return b.Kind != BodyStatic
}

// PositionData is the authoritative world position committed by the last tick.
type PositionData struct {
	mgl64.Vec3
}

// RotationData is the authoritative world orientation committed by the last tick.
type RotationData struct {
	mgl64.Quat
}

// VelocityData drives dynamic bodies in the simulation step.
type VelocityData struct {
	Linear  mgl64.Vec3 // units per second
	Angular mgl64.Vec3 // axis * radians per second
}

var (
	RigidBody = donburi.NewComponentType[RigidBodyData]()
	Position  = donburi.NewComponentType[PositionData]()
	Rotation  = donburi.NewComponentType[RotationData](RotationData{Quat: mgl64.QuatIdent()})
	Velocity  = donburi.NewComponentType[VelocityData]()
)
