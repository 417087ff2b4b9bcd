// Command voxdemo renders a small voxel terrain to a PNG.
//
// By default it opens a GPU device and draws through the render
// package. With -cpu it runs the CPU pipeline over every vertex
// instead and reports kernel statistics without producing an image;
// useful on machines without a usable GPU.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/chunk"
	"github.com/gogpu/vox/pga"
	"github.com/gogpu/vox/render"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "voxdemo.png", "output file")
		yaw      = flag.Float64("yaw", 0.6, "camera yaw in radians")
		distance = flag.Float64("distance", 24, "camera distance from the terrain center")
		cpu      = flag.Bool("cpu", false, "run the CPU pipeline and print stats instead of rendering")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		vox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	faces := buildTerrain().Faces()
	cam := buildCamera(float32(*yaw), float32(*distance), float32(*width)/float32(*height))

	if *cpu {
		runCPU(cam, faces)
		return
	}

	dev, err := render.OpenDevice()
	if err != nil {
		log.Fatalf("Failed to open GPU device: %v (try -cpu)", err)
	}
	defer dev.Close()

	r, err := render.NewRenderer(dev.Device, dev.Queue, render.Config{
		Width:  uint32(*width),
		Height: uint32(*height),
	})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Close()

	r.SetCamera(cam)
	r.SetFaces(faces)
	img, err := r.Render()
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Rendered %d faces to %s (%dx%d)\n", len(faces), *output, *width, *height)
}

// buildTerrain fills a chunk with a small heightfield: stone base,
// dirt fill, grass on top.
func buildTerrain() *chunk.Chunk {
	var c chunk.Chunk
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			fx := float32(x) - chunk.Size/2
			fz := float32(z) - chunk.Size/2
			h := 4 + int(2.5*math32.Sin(fx*0.5)*math32.Cos(fz*0.4))
			for y := 0; y <= h; y++ {
				switch {
				case y == h:
					c.Set(x, y, z, chunk.Grass)
				case y >= h-2:
					c.Set(x, y, z, chunk.Dirt)
				default:
					c.Set(x, y, z, chunk.Stone)
				}
			}
		}
	}
	return &c
}

// buildCamera places the camera back from the terrain center along
// the view axis and turns it by yaw around vertical. View-forward is
// +X, so "back" is negative X before the yaw is applied.
func buildCamera(yaw, distance, aspect float32) vox.Camera {
	center := mgl32.Vec3{chunk.Size / 2, 4, chunk.Size / 2}
	pose := pga.Translation(center).
		Mul(pga.RotationXZ(yaw)).
		Mul(pga.Translation(mgl32.Vec3{-distance, 0, 0}))
	return vox.MotorCamera{
		Motor: pose,
		Projection: vox.Projection{
			Aspect: aspect,
			Near:   0.01,
			Far:    100,
			Depth:  vox.DepthRemap,
		},
	}
}

// runCPU pushes every vertex through the CPU pipeline and prints how
// much of the face list lands in front of the camera.
func runCPU(cam vox.Camera, faces []vox.Face) {
	p := &vox.Pipeline{Camera: cam, Faces: faces}

	var visible, behind int
	for i := uint32(0); i < p.VertexCount(); i += vox.FaceVertexCount {
		front := true
		for j := uint32(0); j < vox.FaceVertexCount; j++ {
			if p.Vertex(i+j).Position.W() <= 0 {
				front = false
				break
			}
		}
		if front {
			visible++
		} else {
			behind++
		}
	}

	log.Printf("CPU pipeline: %d faces, %d vertices, %d in front of camera, %d clipped\n",
		len(faces), p.VertexCount(), visible, behind)
}
