package vox

import "github.com/go-gl/mathgl/mgl32"

// DepthMode selects how a camera-local forward distance is mapped into
// the depth slot of the clip coordinate.
type DepthMode int

const (
	// DepthRemap applies the perspective depth remap derived from the
	// near and far clip planes. This is the default and gives proper
	// depth-buffer precision distribution.
	DepthRemap DepthMode = iota

	// DepthLinear passes the forward distance through scaled by 1/far.
	// Cheaper and adequate for scenes without overlapping geometry.
	DepthLinear
)

// Projection holds the scalar projection parameters of a camera.
// The kernel's view axes are non-standard: forward is local +X,
// right is local +Z, up is local +Y. Clip assigns axes accordingly.
type Projection struct {
	Aspect float32
	Near   float32
	Far    float32
	Depth  DepthMode
}

// Clip maps a camera-local point to a clip-space coordinate:
//
//	clip.x = local.z / aspect
//	clip.y = local.y
//	clip.z = depth(local.x)
//	clip.w = local.x
//
// Local +X is the view depth, so w carries the perspective divisor.
// The axis permutation and its signs are load-bearing for face winding
// and depth testing; do not reorder.
func (p Projection) Clip(local mgl32.Vec3) mgl32.Vec4 {
	return mgl32.Vec4{
		local.Z() / p.Aspect,
		local.Y(),
		p.depth(local.X()),
		local.X(),
	}
}

func (p Projection) depth(x float32) float32 {
	if p.Depth == DepthLinear {
		return x / p.Far
	}
	// The leading double negation looks redundant but matches the
	// shipped remap exactly; a regression test pins its output.
	return -x*-(p.Far+p.Near)/(p.Far-p.Near) - 2*p.Far*p.Near/(p.Far-p.Near)
}
