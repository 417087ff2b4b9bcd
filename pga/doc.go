// Package pga implements the small slice of 3D Projective Geometric
// Algebra needed for rigid-body camera and point transforms: points as
// trivectors and motors (rotation plus translation) as elements of the
// even subalgebra.
//
// A Point stores the four trivector coefficients of a homogeneous 3D
// position; a Motor stores the eight even-grade coefficients of a
// rigid motion. Transforming a point by a motor is the sandwich
// product m p m̃, expanded here to closed-form polynomials so the same
// arithmetic runs identically on the CPU and in shader code.
//
// All types are small value types using float32 arithmetic. No
// operation allocates or returns errors; feeding a non-normalized
// motor to Transform produces a scaled point rather than a panic.
package pga
