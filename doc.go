// Package vox renders axis-aligned voxel faces with a projective geometric
// algebra (PGA) camera.
//
// # Overview
//
// vox is the CPU-side reference for a small GPU face renderer. Instead of
// matrices, camera motion is a PGA motor (a rotation+translation carried as
// one 8-coefficient object, see the pga package) and points are trivector
// coefficients. The package models the two programmable pipeline stages as
// plain functions so the transform mathematics is testable off the GPU:
//
//	pl := vox.Pipeline{
//	    Camera: vox.MotorCamera{
//	        Motor:      pga.Translation(mgl32.Vec3{-5, 0, 0}),
//	        Projection: vox.Projection{Aspect: 16.0 / 9.0, Near: 0.01, Far: 100},
//	    },
//	    Faces: faces,
//	}
//	for i := uint32(0); i < pl.VertexCount(); i++ {
//	    out := pl.Vertex(i) // clip position + flat face index
//	}
//
// The render subpackage executes the identical kernel on the GPU via
// gogpu/wgpu; the chunk subpackage extracts visible faces from a voxel grid.
//
// # Coordinate System
//
// vox uses an X-forward view basis: the camera looks along +X, +Z is right
// and +Y is up. The clip mapping in Projection depends on this permutation;
// so does face winding. It is not interchangeable with the usual Z-forward
// convention.
//
// # Contracts
//
// The kernel is a shading kernel: it has no error channel. Out-of-range
// vertex indices, non-normalized motors, and zero homogeneous weights are
// caller contract violations that produce degenerate numbers (or panics on
// slice access), not errors. Hosts validate sizes before issuing a draw.
package vox

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
