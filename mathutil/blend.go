// Package mathutil holds the vector and quaternion helpers shared by the
// simulation stand-in and the interpolation systems.
package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxAlpha is the largest progress fraction the blend will use. A fraction
// of exactly 1 would mean a tick has fully elapsed without committing.
var MaxAlpha = math.Nextafter(1, 0)

// ClampAlpha bounds an untrusted progress fraction to [0, 1).
func ClampAlpha(alpha float64) float64 {
	if math.IsNaN(alpha) || alpha <= 0 {
		return 0
	}
	if alpha > MaxAlpha {
		return MaxAlpha
	}
	return alpha
}

// Lerp linearly interpolates between two scalars.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two vectors. t == 0 returns a
// exactly.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	if t == 0 {
		return a
	}
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp interpolates along the shorter arc between two orientations and
// always returns a unit quaternion.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// MulVec3 multiplies two vectors component-wise.
func MulVec3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// DivVec3 divides two vectors component-wise. It reports false when any
// divisor component is too close to zero to invert.
func DivVec3(a, b mgl64.Vec3) (mgl64.Vec3, bool) {
	for _, c := range b {
		if math.Abs(c) < mgl64.Epsilon {
			return mgl64.Vec3{}, false
		}
	}
	return mgl64.Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}, true
}

// QuatFromAngle2D returns a rotation of angle radians about +Z.
func QuatFromAngle2D(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1})
}

// Angle2D returns the heading of the rotated +X axis in the XY plane.
func Angle2D(q mgl64.Quat) float64 {
	x := q.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(x.Y(), x.X())
}

// NearVec3 reports whether two vectors are within a squared distance.
func NearVec3(a, b mgl64.Vec3, epsilonSq float64) bool {
	return a.Sub(b).LenSqr() <= epsilonSq
}

// NearQuat reports whether two rotations describe the same orientation
// within epsilon, treating q and -q as equal.
func NearQuat(a, b mgl64.Quat, epsilon float64) bool {
	return 1-math.Abs(a.Dot(b)) <= epsilon
}
