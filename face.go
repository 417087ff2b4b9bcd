package vox

import "github.com/go-gl/mathgl/mgl32"

// FaceVertexCount is the number of vertex invocations per face:
// two triangles forming a quad, six vertex slots.
const FaceVertexCount = 6

// Face is one renderable cube face. Position is the face's offset in
// world space, Normal its outward direction, Color its base albedo.
// Faces are immutable for the duration of a draw: the pipeline indexes
// them by vertex_index / FaceVertexCount and never writes back.
type Face struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// LocalVertices is the fixed cube-local vertex table shared by every
// face. All six entries lie on the x = -0.5 plane: a face is a unit
// quad in local (y, z), and the face's Normal carries the orientation.
// The order encodes two triangles, 0-1-2 and 3-4-5, with 2==3 and
// 1==4 shared along the quad diagonal.
//
// Hosts that draw faces must issue exactly FaceVertexCount invocations
// per face in this order; winding and backface culling depend on it.
var LocalVertices = [FaceVertexCount]mgl32.Vec3{
	{-0.5, -0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{-0.5, -0.5, 0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, 0.5, 0.5},
}
