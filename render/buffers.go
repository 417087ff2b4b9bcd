package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/vox"
)

// GPU-side layouts (std140/std430). Sizes must match the shader
// structs exactly; vec3 fields are padded to 16-byte alignment.
const (
	cameraUniformSize = 48 // 2 vec4 motor halves + aspect/near/far/mode
	vertexTableSize   = vox.FaceVertexCount * 16
	faceStride        = 48 // 3 padded vec3 slots
)

func putFloat32(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
}

// packCamera serializes a camera into the uniform layout: the pose
// motor as two vec4 halves, then the projection scalars. The shader
// reverses the motor itself, so the packed motor is camera-to-world.
func packCamera(cam vox.Camera) []byte {
	buf := make([]byte, cameraUniformSize)

	m := cam.Pose()
	putFloat32(buf, 0, m.S)
	putFloat32(buf, 4, m.E12)
	putFloat32(buf, 8, m.E13)
	putFloat32(buf, 12, m.E23)
	putFloat32(buf, 16, m.E01)
	putFloat32(buf, 20, m.E02)
	putFloat32(buf, 24, m.E03)
	putFloat32(buf, 28, m.E0123)

	p := cam.Proj()
	putFloat32(buf, 32, p.Aspect)
	putFloat32(buf, 36, p.Near)
	putFloat32(buf, 40, p.Far)
	binary.LittleEndian.PutUint32(buf[44:], uint32(p.Depth))

	return buf
}

// packLocalVertices serializes the shared local vertex table as six
// vec4 entries (w unused, zero).
func packLocalVertices() []byte {
	buf := make([]byte, vertexTableSize)
	for i, v := range vox.LocalVertices {
		off := i * 16
		putFloat32(buf, off, v.X())
		putFloat32(buf, off+4, v.Y())
		putFloat32(buf, off+8, v.Z())
	}
	return buf
}

// packFaces serializes the face list into the storage-buffer layout,
// one 48-byte record per face with each vec3 padded to 16 bytes.
func packFaces(faces []vox.Face) []byte {
	buf := make([]byte, len(faces)*faceStride)
	for i, f := range faces {
		off := i * faceStride
		putFloat32(buf, off, f.Position.X())
		putFloat32(buf, off+4, f.Position.Y())
		putFloat32(buf, off+8, f.Position.Z())
		putFloat32(buf, off+16, f.Normal.X())
		putFloat32(buf, off+20, f.Normal.Y())
		putFloat32(buf, off+24, f.Normal.Z())
		putFloat32(buf, off+32, f.Color.X())
		putFloat32(buf, off+36, f.Color.Y())
		putFloat32(buf, off+40, f.Color.Z())
	}
	return buf
}
