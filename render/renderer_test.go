package render

import (
	"errors"
	"testing"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/pga"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	c.applyDefaults()
	if c.Width != 800 || c.Height != 600 {
		t.Errorf("default size = %dx%d, want 800x600", c.Width, c.Height)
	}
	if c.ClearColor != [4]float32{0.2, 0.3, 0.8, 1} {
		t.Errorf("default clear = %v, want sky blue", c.ClearColor)
	}
}

func TestConfigExplicitValuesKept(t *testing.T) {
	c := Config{Width: 64, Height: 32, ClearColor: [4]float32{1, 0, 0, 1}}
	c.applyDefaults()
	if c.Width != 64 || c.Height != 32 {
		t.Errorf("explicit size overridden: %dx%d", c.Width, c.Height)
	}
	if c.ClearColor != [4]float32{1, 0, 0, 1} {
		t.Errorf("explicit clear overridden: %v", c.ClearColor)
	}
}

func TestRenderPreconditions(t *testing.T) {
	cam := vox.MotorCamera{Motor: pga.Identity}

	t.Run("closed", func(t *testing.T) {
		r := &Renderer{closed: true, camera: cam, faces: []vox.Face{{}}}
		if _, err := r.Render(); !errors.Is(err, ErrClosed) {
			t.Errorf("Render on closed renderer: err = %v, want ErrClosed", err)
		}
	})

	t.Run("no camera", func(t *testing.T) {
		r := &Renderer{faces: []vox.Face{{}}}
		if _, err := r.Render(); !errors.Is(err, ErrNoCamera) {
			t.Errorf("Render without camera: err = %v, want ErrNoCamera", err)
		}
	})

	t.Run("no faces", func(t *testing.T) {
		r := &Renderer{camera: cam}
		if _, err := r.Render(); !errors.Is(err, ErrNoFaces) {
			t.Errorf("Render without faces: err = %v, want ErrNoFaces", err)
		}
	})
}

func TestUnpackBGRA(t *testing.T) {
	// Two pixels wide, one row, stride padded to 16 bytes. BGRA in
	// the staging buffer becomes RGBA in the image.
	data := make([]byte, 16)
	copy(data, []byte{
		1, 2, 3, 4, // pixel 0: B=1 G=2 R=3 A=4
		5, 6, 7, 8, // pixel 1
	})

	img := unpackBGRA(data, 2, 1, 16)
	want := []byte{3, 2, 1, 4, 7, 6, 5, 8}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("pix[%d] = %d, want %d", i, img.Pix[i], b)
		}
	}
}

func TestUnpackBGRAStripsRowPadding(t *testing.T) {
	const w, h, stride = 1, 2, 256
	data := make([]byte, h*stride)
	data[0], data[1], data[2], data[3] = 10, 20, 30, 40
	data[stride], data[stride+1], data[stride+2], data[stride+3] = 50, 60, 70, 80

	img := unpackBGRA(data, w, h, stride)
	row0 := img.Pix[:4]
	row1 := img.Pix[img.Stride : img.Stride+4]
	if row0[0] != 30 || row0[1] != 20 || row0[2] != 10 || row0[3] != 40 {
		t.Errorf("row 0 = %v, want [30 20 10 40]", row0)
	}
	if row1[0] != 70 || row1[1] != 60 || row1[2] != 50 || row1[3] != 80 {
		t.Errorf("row 1 = %v, want [70 60 50 80]", row1)
	}
}

func TestCompileShaderToSPIRVWordOrder(t *testing.T) {
	// The embedded shader must compile; the resulting SPIR-V stream
	// starts with the magic number 0x07230203 once assembled into
	// little-endian words.
	words, err := compileShaderToSPIRV(faceShaderSource)
	if err != nil {
		t.Fatalf("compile embedded shader: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("no SPIR-V words produced")
	}
	if words[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", words[0])
	}
}
