package render

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vox"
)

// fenceTimeout bounds how long Render waits for the GPU.
const fenceTimeout = 5 * time.Second

// Config holds renderer creation parameters. Zero-value fields fall
// back to defaults.
type Config struct {
	// Width and Height are the offscreen target dimensions in pixels.
	// Default 800x600.
	Width  uint32
	Height uint32

	// ClearColor fills the target before drawing, RGBA in [0,1].
	// Default is the sky blue (0.2, 0.3, 0.8, 1).
	ClearColor [4]float32
}

func (c *Config) applyDefaults() {
	if c.Width == 0 {
		c.Width = 800
	}
	if c.Height == 0 {
		c.Height = 600
	}
	if c.ClearColor == ([4]float32{}) {
		c.ClearColor = [4]float32{0.2, 0.3, 0.8, 1}
	}
}

// Renderer draws face lists offscreen with the GPU kernel and reads
// the frame back as an image. Not safe for concurrent use; callers
// render one frame at a time.
type Renderer struct {
	device hal.Device
	queue  hal.Queue
	config Config

	camera vox.Camera
	faces  []vox.Face

	shader       hal.ShaderModule
	cameraLayout hal.BindGroupLayout
	facesLayout  hal.BindGroupLayout
	pipeLayout   hal.PipelineLayout
	pipeline     hal.RenderPipeline

	colorTex  hal.Texture
	colorView hal.TextureView
	depthTex  hal.Texture
	depthView hal.TextureView

	// The local vertex table never changes; uploaded once.
	vertexTableBuf hal.Buffer

	closed bool
}

// NewRenderer creates a renderer on an existing hal device and queue.
func NewRenderer(device hal.Device, queue hal.Queue, config Config) (*Renderer, error) {
	config.applyDefaults()
	r := &Renderer{
		device: device,
		queue:  queue,
		config: config,
	}
	if err := r.createPipeline(); err != nil {
		r.Close()
		return nil, err
	}
	if err := r.createTargets(); err != nil {
		r.Close()
		return nil, err
	}
	vox.Logger().Debug("render: renderer ready",
		"width", config.Width, "height", config.Height)
	return r, nil
}

// NewRendererFromProvider creates a renderer sharing the host
// application's GPU device. The provider must be backed by a hal
// device; otherwise ErrNoDevice is returned.
func NewRendererFromProvider(provider DeviceHandle, config Config) (*Renderer, error) {
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return nil, err
	}
	return NewRenderer(device, queue, config)
}

// SetCamera sets the camera for subsequent frames.
func (r *Renderer) SetCamera(cam vox.Camera) { r.camera = cam }

// SetFaces sets the face list for subsequent frames. The slice is
// retained, not copied; callers must not mutate it during Render.
func (r *Renderer) SetFaces(faces []vox.Face) { r.faces = faces }

// createPipeline compiles the face shader and builds the render
// pipeline: the camera uniform in group 0, the vertex table and face
// storage in group 1.
func (r *Renderer) createPipeline() error {
	shader, err := createFaceShaderModule(r.device)
	if err != nil {
		return err
	}
	r.shader = shader

	cameraLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "face_camera_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create camera layout: %w", err)
	}
	r.cameraLayout = cameraLayout

	facesLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "face_data_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create faces layout: %w", err)
	}
	r.facesLayout = facesLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "face_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.cameraLayout, r.facesLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "face_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vertex",
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "pixel",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            gputypes.TextureFormatDepth32Float,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLessEqual,
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCW,
			CullMode:  gputypes.CullModeBack,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create face pipeline: %w", err)
	}
	r.pipeline = pipeline

	return nil
}

// createTargets allocates the offscreen color and depth textures and
// uploads the static local vertex table.
func (r *Renderer) createTargets() error {
	size := hal.Extent3D{Width: r.config.Width, Height: r.config.Height, DepthOrArrayLayers: 1}

	colorTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "face_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color texture: %w", err)
	}
	r.colorTex = colorTex

	colorView, err := r.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label: "face_color_view",
	})
	if err != nil {
		return fmt.Errorf("create color view: %w", err)
	}
	r.colorView = colorView

	depthTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "face_depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatDepth32Float,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create depth texture: %w", err)
	}
	r.depthTex = depthTex

	depthView, err := r.device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
		Label: "face_depth_view",
	})
	if err != nil {
		return fmt.Errorf("create depth view: %w", err)
	}
	r.depthView = depthView

	vertexTableBuf, err := r.createAndUploadBuffer("face_vertex_table",
		packLocalVertices(), gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	r.vertexTableBuf = vertexTableBuf

	return nil
}

// Render draws the current camera and face list and reads the frame
// back. The returned image is freshly allocated each call.
func (r *Renderer) Render() (*image.RGBA, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if r.camera == nil {
		return nil, ErrNoCamera
	}
	if len(r.faces) == 0 {
		return nil, ErrNoFaces
	}

	cameraBuf, err := r.createAndUploadBuffer("face_camera",
		packCamera(r.camera), gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	defer r.device.DestroyBuffer(cameraBuf)

	facesData := packFaces(r.faces)
	facesBuf, err := r.createAndUploadBuffer("face_storage",
		facesData, gputypes.BufferUsageStorage|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	defer r.device.DestroyBuffer(facesBuf)

	cameraBind, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "face_camera_bind",
		Layout: r.cameraLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: cameraBuf.NativeHandle(), Offset: 0, Size: cameraUniformSize,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create camera bind group: %w", err)
	}
	defer r.device.DestroyBindGroup(cameraBind)

	facesBind, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "face_data_bind",
		Layout: r.facesLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: r.vertexTableBuf.NativeHandle(), Offset: 0, Size: vertexTableSize,
			}},
			{Binding: 1, Resource: gputypes.BufferBinding{
				Buffer: facesBuf.NativeHandle(), Offset: 0, Size: uint64(len(facesData)),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create faces bind group: %w", err)
	}
	defer r.device.DestroyBindGroup(facesBind)

	return r.encodeSubmitReadback(cameraBind, facesBind)
}

// encodeSubmitReadback records the render pass, copies the color
// target into a staging buffer, submits, waits, and converts the
// readback to an image.
func (r *Renderer) encodeSubmitReadback(cameraBind, facesBind hal.BindGroup) (*image.RGBA, error) {
	w, h := r.config.Width, r.config.Height

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "face_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("face_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	clear := r.config.ClearColor
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "face_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    r.colorView,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: float64(clear[0]),
				G: float64(clear[1]),
				B: float64(clear[2]),
				A: float64(clear[3]),
			},
		}},
		DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     gputypes.LoadOpClear,
			DepthStoreOp:    gputypes.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})

	rp.SetPipeline(r.pipeline)
	rp.SetBindGroup(0, cameraBind, nil)
	rp.SetBindGroup(1, facesBind, nil)
	vertexCount := uint32(len(r.faces)) * vox.FaceVertexCount
	rp.Draw(vertexCount, 1, 0, 0)
	rp.End()

	// The color texture leaves the pass as a render attachment;
	// CopyTextureToBuffer needs it as a copy source.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	// Copy rows must be 256-byte aligned for WebGPU and DX12.
	bytesPerRow := w * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "face_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.colorTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	// Return the texture to render-attachment usage so the next
	// frame's pass starts from a valid state.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	vox.Logger().Debug("render: frame complete", "vertices", vertexCount)
	return unpackBGRA(readback, int(w), int(h), int(alignedBytesPerRow)), nil
}

// unpackBGRA strips row padding from the staging readback and swizzles
// the BGRA8 target format into an RGBA image.
func unpackBGRA(data []byte, w, h, stride int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := data[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			dst[x*4+0] = src[x*4+2]
			dst[x*4+1] = src[x*4+1]
			dst[x*4+2] = src[x*4+0]
			dst[x*4+3] = src[x*4+3]
		}
	}
	return img
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (r *Renderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// Close releases all GPU resources owned by the renderer. Safe to call
// more than once. The device itself is not closed; it belongs to the
// caller.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true

	if r.vertexTableBuf != nil {
		r.device.DestroyBuffer(r.vertexTableBuf)
		r.vertexTableBuf = nil
	}
	if r.depthView != nil {
		r.device.DestroyTextureView(r.depthView)
		r.depthView = nil
	}
	if r.depthTex != nil {
		r.device.DestroyTexture(r.depthTex)
		r.depthTex = nil
	}
	if r.colorView != nil {
		r.device.DestroyTextureView(r.colorView)
		r.colorView = nil
	}
	if r.colorTex != nil {
		r.device.DestroyTexture(r.colorTex)
		r.colorTex = nil
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.facesLayout != nil {
		r.device.DestroyBindGroupLayout(r.facesLayout)
		r.facesLayout = nil
	}
	if r.cameraLayout != nil {
		r.device.DestroyBindGroupLayout(r.cameraLayout)
		r.cameraLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}
