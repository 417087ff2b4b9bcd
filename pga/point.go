package pga

import "github.com/go-gl/mathgl/mgl32"

// Point is a homogeneous 3D position encoded as the four trivector
// coefficients of the algebra. The encoding is a fixed permutation
// with one sign flip:
//
//	e012 =  z
//	e013 = -y
//	e023 =  x
//	e123 =  1 (homogeneous weight)
//
// The convention must stay exactly as-is: the clip-space axis mapping
// in the projection layer is derived against it.
type Point struct {
	E012 float32
	E013 float32
	E023 float32
	E123 float32
}

// Origin is the point at (0, 0, 0) with unit weight.
var Origin = Point{E123: 1}

// PointFromVec3 encodes an ordinary 3-vector as a unit-weight point.
func PointFromVec3(v mgl32.Vec3) Point {
	return Point{
		E012: v.Z(),
		E013: -v.Y(),
		E023: v.X(),
		E123: 1,
	}
}

// Vec3 decodes the point back to an ordinary 3-vector, dividing by the
// homogeneous weight. A zero weight yields Inf/NaN components; callers
// own that contract.
func (p Point) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{
		p.E023 / p.E123,
		-p.E013 / p.E123,
		p.E012 / p.E123,
	}
}

// Transform applies the motor m to p via the sandwich product m p m̃,
// expanded to closed-form coefficient polynomials. For a normalized
// motor the result keeps unit weight; for a motor scaled by k the
// weight scales by k², which Vec3 divides back out.
func (p Point) Transform(m Motor) Point {
	a := m.S
	b := m.E12
	c := m.E13
	d := m.E23
	e := m.E01
	f := m.E02
	g := m.E03
	h := m.E0123
	i := p.E012
	j := p.E013
	k := p.E023
	l := p.E123

	return Point{
		E012: -2*a*d*j - 2*a*g*l + a*a*i + 2*a*c*k +
			-d*d*i - 2*d*f*l + 2*b*d*k - 2*b*h*l +
			-2*c*e*l + b*b*i + 2*b*c*j - c*c*i,
		E013: -2*a*b*k - b*b*j + 2*b*c*i + 2*b*e*l +
			a*a*j + 2*a*d*i + 2*a*f*l - 2*c*h*l +
			-2*d*g*l - d*d*j + 2*c*d*k + c*c*j,
		E023: -2*a*c*i - 2*a*e*l + a*a*k + 2*a*b*j +
			-c*c*k + 2*c*d*j + 2*c*g*l - 2*d*h*l +
			2*b*f*l - b*b*k + 2*b*d*i + d*d*k,
		E123: a*a*l + b*b*l + c*c*l + d*d*l,
	}
}
