package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testEpsilon = 1e-9

func TestClampAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  float64
	}{
		{"NaN", math.NaN(), 0},
		{"Negative", -0.25, 0},
		{"Zero", 0, 0},
		{"Half", 0.5, 0.5},
		{"One", 1, MaxAlpha},
		{"Above one", 3, MaxAlpha},
		{"Positive infinity", math.Inf(1), MaxAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampAlpha(tt.alpha); got != tt.want {
				t.Errorf("Expected ClampAlpha(%v) to be %v, got %v", tt.alpha, tt.want, got)
			}
		})
	}

	if MaxAlpha >= 1 {
		t.Errorf("Expected MaxAlpha to be below 1, got %v", MaxAlpha)
	}
}

func TestLerpVec3(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{10, 0, 0}

	if got := LerpVec3(a, b, 0.5); !NearVec3(got, mgl64.Vec3{5, 0, 0}, testEpsilon) {
		t.Errorf("Expected midpoint (5,0,0), got %v", got)
	}

	// t == 0 must reproduce the start bit for bit
	odd := mgl64.Vec3{0.1, 0.2, 0.3}
	if got := LerpVec3(odd, b, 0); got != odd {
		t.Errorf("Expected start %v at t=0, got %v", odd, got)
	}
}

func TestSlerpHalfTurn(t *testing.T) {
	from := mgl64.QuatIdent()
	to := mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})

	got := Slerp(from, to, 0.5)
	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	if !NearQuat(got, want, testEpsilon) {
		t.Errorf("Expected 90 degrees about Y, got %v", got)
	}
	if l := got.Len(); math.Abs(l-1) > testEpsilon {
		t.Errorf("Expected unit quaternion, got length %v", l)
	}
}

func TestSlerpTakesShortestArc(t *testing.T) {
	from := mgl64.QuatIdent()
	quarter := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	// Same orientation, opposite hemisphere
	negated := mgl64.Quat{W: -quarter.W, V: quarter.V.Mul(-1)}

	got := Slerp(from, negated, 0.5)
	if angle := Angle2D(got); math.Abs(angle-math.Pi/4) > 1e-6 {
		t.Errorf("Expected heading of 45 degrees, got %v radians", angle)
	}
}

func TestSlerpStaysUnit(t *testing.T) {
	from := QuatFromAngle2D(0.3)
	to := QuatFromAngle2D(2.9)
	for _, alpha := range []float64{0, 0.1, 0.33, 0.5, 0.77, MaxAlpha} {
		if l := Slerp(from, to, alpha).Len(); math.Abs(l-1) > testEpsilon {
			t.Errorf("Expected unit quaternion at alpha %v, got length %v", alpha, l)
		}
	}
}

func TestNearQuatTreatsSignAsEqual(t *testing.T) {
	q := QuatFromAngle2D(1.2)
	neg := mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	if !NearQuat(q, neg, testEpsilon) {
		t.Error("Expected q and -q to be the same orientation")
	}
	if NearQuat(q, QuatFromAngle2D(1.25), testEpsilon) {
		t.Error("Expected a 0.05 radian difference to be visible")
	}
}

func TestDivVec3RejectsZero(t *testing.T) {
	if _, ok := DivVec3(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 0, 1}); ok {
		t.Error("Expected division by a zero component to fail")
	}
	got, ok := DivVec3(mgl64.Vec3{4, 6, 8}, mgl64.Vec3{2, 3, 4})
	if !ok || got != (mgl64.Vec3{2, 2, 2}) {
		t.Errorf("Expected (2,2,2), got %v (ok=%v)", got, ok)
	}
}

func TestAngle2D(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
	}{
		{"Zero", 0},
		{"Quarter", math.Pi / 2},
		{"Negative", -1},
		{"Near half", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle2D(QuatFromAngle2D(tt.angle)); math.Abs(got-tt.angle) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.angle, got)
			}
		})
	}
}
