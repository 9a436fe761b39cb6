package mathutil

import "github.com/go-gl/mathgl/mgl64"

// TRS is a translation, rotation and scale applied in scale-rotate-translate
// order. It is the shape of both local and world transforms.
type TRS struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// IdentityTRS returns the transform that leaves points unchanged.
func IdentityTRS() TRS {
	return TRS{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// TransformPoint maps a point from the space of t into its parent space.
func (t TRS) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.Translation.Add(t.Rotation.Rotate(MulVec3(t.Scale, p)))
}

// Mul composes a child transform expressed in t's space into t's parent
// space.
func (t TRS) Mul(child TRS) TRS {
	return TRS{
		Translation: t.TransformPoint(child.Translation),
		Rotation:    t.Rotation.Mul(child.Rotation).Normalize(),
		Scale:       MulVec3(t.Scale, child.Scale),
	}
}

// LocalTranslation re-expresses a world position in the space of parent.
// It fails when the parent scale cannot be inverted.
func (t TRS) LocalTranslation(world mgl64.Vec3) (mgl64.Vec3, bool) {
	unrotated := t.Rotation.Inverse().Rotate(world.Sub(t.Translation))
	return DivVec3(unrotated, t.Scale)
}

// LocalRotation re-expresses a world rotation in the space of parent.
func (t TRS) LocalRotation(world mgl64.Quat) mgl64.Quat {
	return t.Rotation.Inverse().Mul(world).Normalize()
}

// LocalScale re-expresses a world scale in the space of parent.
func (t TRS) LocalScale(world mgl64.Vec3) (mgl64.Vec3, bool) {
	return DivVec3(world, t.Scale)
}
