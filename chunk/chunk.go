// Package chunk stores voxel terrain as fixed-size block grids and
// meshes them into face lists for the renderer. Only faces exposed to
// air (or the chunk boundary) are emitted, so a solid interior costs
// nothing to draw.
package chunk

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/vox"
)

// Size is the edge length of a chunk in blocks.
const Size = 16

// Chunk is a Size³ grid of blocks. The zero value is all Air.
type Chunk struct {
	blocks [Size][Size][Size]Block
}

// faceDirections lists the six face normals in emission order. The
// order is stable so repeated meshing of the same chunk produces an
// identical face list.
var faceDirections = [6]mgl32.Vec3{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// At returns the block at (x, y, z), or Air for coordinates outside
// the chunk. Treating out-of-bounds as Air makes boundary faces of a
// full chunk visible without special-casing edges.
func (c *Chunk) At(x, y, z int) Block {
	if x < 0 || x >= Size || y < 0 || y >= Size || z < 0 || z >= Size {
		return Air
	}
	return c.blocks[x][y][z]
}

// Set places a block at (x, y, z). Out-of-bounds coordinates are
// ignored.
func (c *Chunk) Set(x, y, z int, b Block) {
	if x < 0 || x >= Size || y < 0 || y >= Size || z < 0 || z >= Size {
		return
	}
	c.blocks[x][y][z] = b
}

// Faces meshes the chunk: one vox.Face per opaque block face whose
// neighbor in that direction is Air or outside the chunk. The face
// position is the block position nudged a half step along the face
// normal, so the face sits on the block boundary.
func (c *Chunk) Faces() []vox.Face {
	var faces []vox.Face
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				b := c.blocks[x][y][z]
				if !b.Opaque() {
					continue
				}
				pos := mgl32.Vec3{float32(x), float32(y), float32(z)}
				color := b.Color()
				for _, n := range faceDirections {
					nx := x + int(n.X())
					ny := y + int(n.Y())
					nz := z + int(n.Z())
					if c.At(nx, ny, nz).Opaque() {
						continue
					}
					faces = append(faces, vox.Face{
						Position: pos.Add(n.Mul(0.5)),
						Normal:   n,
						Color:    color,
					})
				}
			}
		}
	}
	return faces
}
