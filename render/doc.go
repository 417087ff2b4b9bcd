// Package render runs the cube-face pipeline on the GPU and reads the
// result back as an image.
//
// The package owns the host side of the draw: WGSL shader compilation,
// camera/vertex/face buffer packing, pipeline state, and the offscreen
// render target. The shading math itself lives in the WGSL kernel,
// which mirrors the CPU pipeline in the vox root package term for
// term.
//
// A Renderer needs a GPU device. Callers embedded in a larger GPU
// application hand one over through NewRenderer with the device and
// queue from their context; standalone callers use OpenDevice to
// acquire one:
//
//	dev, err := render.OpenDevice()
//	if err != nil { ... }
//	defer dev.Close()
//
//	r, err := render.NewRenderer(dev.Device, dev.Queue, render.Config{
//		Width:  800,
//		Height: 600,
//	})
//	if err != nil { ... }
//	defer r.Close()
//
//	r.SetCamera(cam)
//	r.SetFaces(faces)
//	img, err := r.Render()
package render
