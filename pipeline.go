package vox

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/vox/pga"
)

// LightDirection is the fixed directional light used by Fragment. It
// is deliberately unnormalized: its magnitude (0.7) scales shading
// contrast, and renormalizing would change every rendered color.
var LightDirection = mgl32.Vec3{0.3, -0.6, 0.2}

// VertexOutput carries one vertex from the vertex stage to the
// fragment stage. FaceIndex is a flat attribute: the rasterizer must
// not interpolate it across a triangle.
type VertexOutput struct {
	Position  mgl32.Vec4
	FaceIndex uint32
}

// Pipeline is the CPU-side rendering kernel: the same per-vertex and
// per-fragment math the GPU shader runs, over a camera and an ordered
// face list. Both inputs are read-only for the duration of a draw, so
// Vertex and Fragment may be called concurrently from any number of
// goroutines.
//
// Neither stage validates its inputs. An out-of-range vertex index,
// a non-normalized camera motor, or a zero homogeneous weight produce
// numerically degenerate results, not errors; sizing the draw
// correctly is the caller's contract.
type Pipeline struct {
	Camera Camera
	Faces  []Face
}

// VertexCount returns the number of vertex invocations a draw of the
// full face list requires.
func (p *Pipeline) VertexCount() uint32 {
	return uint32(len(p.Faces)) * FaceVertexCount
}

// Vertex is the per-vertex entry point. The invocation index selects
// a face (index / 6) and a slot in the local vertex table (index % 6);
// the world position is the local vertex offset by the face position,
// taken through the camera's view transform and projected to clip
// space.
func (p *Pipeline) Vertex(vertexIndex uint32) VertexOutput {
	faceIndex := vertexIndex / FaceVertexCount
	local := LocalVertices[vertexIndex%FaceVertexCount]
	world := local.Add(p.Faces[faceIndex].Position)

	view := p.Camera.ViewTransform(pga.PointFromVec3(world)).Vec3()
	return VertexOutput{
		Position:  p.Camera.Proj().Clip(view),
		FaceIndex: faceIndex,
	}
}

// Fragment is the per-pixel entry point. Lambertian shading against
// LightDirection and the face's outward normal, remapped from [-1,1]
// into light levels around 0.5, then applied to the face color. The
// light term is not clamped: a normal nearly parallel to the light
// goes over-bright, nearly anti-parallel goes negative, and the
// output format clamps on write.
func (p *Pipeline) Fragment(v VertexOutput) mgl32.Vec4 {
	face := p.Faces[v.FaceIndex]
	light := LightDirection.Dot(face.Normal.Mul(-1))*0.5 + 0.5
	c := face.Color.Mul(light)
	return mgl32.Vec4{c.X(), c.Y(), c.Z(), 1}
}
