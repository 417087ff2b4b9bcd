package vox

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/vox/pga"
)

func testProjection() Projection {
	return Projection{Aspect: 1, Near: 0.01, Far: 100, Depth: DepthRemap}
}

func TestVertexCountContract(t *testing.T) {
	faces := []Face{
		{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, -1}, Color: mgl32.Vec3{1, 1, 1}},
		{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, Color: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 2, 0}, Normal: mgl32.Vec3{0, 1, 0}, Color: mgl32.Vec3{0, 1, 0}},
	}
	p := &Pipeline{
		Camera: MotorCamera{Motor: pga.Identity, Projection: testProjection()},
		Faces:  faces,
	}

	if got, want := p.VertexCount(), uint32(18); got != want {
		t.Fatalf("VertexCount = %d, want %d", got, want)
	}

	// Each face index must appear exactly six times across the draw.
	seen := make(map[uint32]int)
	for i := uint32(0); i < p.VertexCount(); i++ {
		seen[p.Vertex(i).FaceIndex]++
	}
	if len(seen) != len(faces) {
		t.Fatalf("got %d distinct face indices, want %d", len(seen), len(faces))
	}
	for idx, n := range seen {
		if n != FaceVertexCount {
			t.Errorf("face %d emitted %d times, want %d", idx, n, FaceVertexCount)
		}
	}
}

// Single white face at the origin, facing the camera. The camera sits
// five units back along the view axis with no rotation; all six
// vertices must land centered in clip space, in front of the camera,
// and the face must shade brighter than mid-gray.
func TestSingleFaceScenario(t *testing.T) {
	face := Face{
		Position: mgl32.Vec3{0, 0, 0},
		Normal:   mgl32.Vec3{0, 0, -1},
		Color:    mgl32.Vec3{1, 1, 1},
	}
	p := &Pipeline{
		Camera: MotorCamera{
			Motor:      pga.Translation(mgl32.Vec3{-5, 0, 0}),
			Projection: testProjection(),
		},
		Faces: []Face{face},
	}

	for i := uint32(0); i < FaceVertexCount; i++ {
		out := p.Vertex(i)
		if out.FaceIndex != 0 {
			t.Errorf("vertex %d: face index = %d, want 0", i, out.FaceIndex)
		}
		if out.Position.W() <= 0 {
			t.Errorf("vertex %d: clip.w = %v, want > 0 (in front of camera)", i, out.Position.W())
		}
		// The face half-extents are 0.5; centered means |x|,|y| stay
		// within them.
		if math32.Abs(out.Position.X()) > 0.5+1e-5 || math32.Abs(out.Position.Y()) > 0.5+1e-5 {
			t.Errorf("vertex %d: clip (%v, %v) not centered", i, out.Position.X(), out.Position.Y())
		}
	}

	color := p.Fragment(VertexOutput{FaceIndex: 0})
	for i, c := range [3]float32{color.X(), color.Y(), color.Z()} {
		if c <= 0.5 {
			t.Errorf("color[%d] = %v, want > 0.5", i, c)
		}
	}
	if color.W() != 1 {
		t.Errorf("alpha = %v, want 1", color.W())
	}
	// Exact shading: dot((0.3,-0.6,0.2), (0,0,1))*0.5 + 0.5.
	if want := float32(0.6); math32.Abs(color.X()-want) > 1e-6 {
		t.Errorf("shaded white = %v, want %v", color.X(), want)
	}
}

func TestFragmentDegenerateLight(t *testing.T) {
	// A normal aligned with the light and scaled by 1/|L|² drives the
	// light term to exactly zero; output is black whatever the color.
	n := LightDirection.Mul(1 / LightDirection.Dot(LightDirection))
	p := &Pipeline{Faces: []Face{{Normal: n, Color: mgl32.Vec3{0.9, 0.4, 0.7}}}}

	color := p.Fragment(VertexOutput{FaceIndex: 0})
	for i, c := range [3]float32{color.X(), color.Y(), color.Z()} {
		if math32.Abs(c) > 1e-6 {
			t.Errorf("color[%d] = %v, want 0", i, c)
		}
	}
}

func TestFragmentUnclampedLight(t *testing.T) {
	// The light term is intentionally unclamped on both sides.
	overBright := &Pipeline{Faces: []Face{{
		Normal: LightDirection.Mul(-4),
		Color:  mgl32.Vec3{1, 1, 1},
	}}}
	if c := overBright.Fragment(VertexOutput{FaceIndex: 0}); c.X() <= 1 {
		t.Errorf("over-bright color = %v, want > 1", c.X())
	}

	negative := &Pipeline{Faces: []Face{{
		Normal: LightDirection.Mul(4),
		Color:  mgl32.Vec3{1, 1, 1},
	}}}
	if c := negative.Fragment(VertexOutput{FaceIndex: 0}); c.X() >= 0 {
		t.Errorf("anti-parallel color = %v, want < 0", c.X())
	}
}
