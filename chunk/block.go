package chunk

import "github.com/go-gl/mathgl/mgl32"

// Block identifies the material filling one cell of a chunk.
type Block uint8

const (
	Air Block = iota
	Stone
	Dirt
	Grass
)

// Opaque reports whether the block occludes faces of its neighbors.
func (b Block) Opaque() bool { return b != Air }

// Color returns the block's base albedo for shading.
func (b Block) Color() mgl32.Vec3 {
	switch b {
	case Stone:
		return mgl32.Vec3{0.5, 0.5, 0.5}
	case Dirt:
		return mgl32.Vec3{0.55, 0.35, 0.2}
	case Grass:
		return mgl32.Vec3{0.3, 0.65, 0.25}
	}
	return mgl32.Vec3{}
}

func (b Block) String() string {
	switch b {
	case Air:
		return "air"
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	}
	return "unknown"
}
