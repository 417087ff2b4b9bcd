package pga

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Motor is a rigid motion (rotation and translation combined) stored
// as the eight coefficients of the even subalgebra. A normalized motor
// satisfies s² + e12² + e13² + e23² == 1; all constructors in this
// package produce normalized motors, and composing normalized motors
// keeps them normalized up to float rounding.
type Motor struct {
	S     float32
	E12   float32
	E13   float32
	E23   float32
	E01   float32
	E02   float32
	E03   float32
	E0123 float32
}

// Identity is the motor that leaves every point unchanged.
var Identity = Motor{S: 1}

// Translation returns the motor moving points by offset. The ideal
// bivector coefficients carry half the offset, negated; the sandwich
// product doubles it back.
func Translation(offset mgl32.Vec3) Motor {
	return Motor{
		S:   1,
		E01: offset.X() * -0.5,
		E02: offset.Y() * -0.5,
		E03: offset.Z() * -0.5,
	}
}

// RotationXY returns the motor rotating by angle (radians) in the
// xy plane, about the z axis.
func RotationXY(angle float32) Motor {
	sin, cos := math32.Sincos(angle * 0.5)
	return Motor{S: cos, E12: sin}
}

// RotationXZ returns the motor rotating by angle (radians) in the
// xz plane, about the y axis.
func RotationXZ(angle float32) Motor {
	sin, cos := math32.Sincos(angle * 0.5)
	return Motor{S: cos, E13: sin}
}

// RotationYZ returns the motor rotating by angle (radians) in the
// yz plane, about the x axis.
func RotationYZ(angle float32) Motor {
	sin, cos := math32.Sincos(angle * 0.5)
	return Motor{S: cos, E23: sin}
}

// Mul returns the geometric product m · n. Applied to a point, the
// product transforms by n first, then by m: to append a motion after
// an existing pose, multiply from the left.
func (m Motor) Mul(n Motor) Motor {
	a := m.S
	b := m.E12
	c := m.E13
	d := m.E23
	e := m.E01
	f := m.E02
	g := m.E03
	h := m.E0123
	i := n.S
	j := n.E12
	k := n.E13
	l := n.E23
	mm := n.E01
	nn := n.E02
	o := n.E03
	p := n.E0123

	return Motor{
		S:     -b*j - c*k - d*l + a*i,
		E12:   -c*l + a*j + b*i + d*k,
		E13:   -d*j + a*k + b*l + c*i,
		E23:   -b*k + a*l + c*j + d*i,
		E01:   -d*p - f*j - g*k - h*l + a*mm + b*nn + c*o + e*i,
		E02:   -b*mm - g*l + a*nn + c*p + d*o + e*j + f*i + h*k,
		E03:   -b*p - c*mm - d*nn - h*j + a*o + e*k + f*l + g*i,
		E0123: -c*nn - f*k + a*p + b*o + d*mm + e*l + g*j + h*i,
	}
}

// Reverse flips the order of basis factors, negating the six bivector
// coefficients. For a normalized motor the reverse is the inverse, so
// this is the cheap way to undo a camera pose.
func (m Motor) Reverse() Motor {
	return Motor{
		S:     m.S,
		E12:   -m.E12,
		E13:   -m.E13,
		E23:   -m.E23,
		E01:   -m.E01,
		E02:   -m.E02,
		E03:   -m.E03,
		E0123: m.E0123,
	}
}

// Normalize rescales the motor so its bulk norm is one. Exact for
// scalar multiples of true motors; drift from repeated composition is
// corrected well enough to keep Reverse acting as the inverse.
func (m Motor) Normalize() Motor {
	norm := math32.Sqrt(m.S*m.S + m.E12*m.E12 + m.E13*m.E13 + m.E23*m.E23)
	inv := 1 / norm
	return Motor{
		S:     m.S * inv,
		E12:   m.E12 * inv,
		E13:   m.E13 * inv,
		E23:   m.E23 * inv,
		E01:   m.E01 * inv,
		E02:   m.E02 * inv,
		E03:   m.E03 * inv,
		E0123: m.E0123 * inv,
	}
}
