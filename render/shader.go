package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/faces.wgsl
var faceShaderSource string

// compileShaderToSPIRV compiles WGSL source to SPIR-V words. Going
// through SPIR-V instead of handing the backend raw WGSL keeps shader
// errors on the CPU where they are reportable, rather than surfacing
// as backend-specific pipeline failures.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// createFaceShaderModule compiles the embedded face shader and wraps
// it in a hal shader module.
func createFaceShaderModule(device hal.Device) (hal.ShaderModule, error) {
	words, err := compileShaderToSPIRV(faceShaderSource)
	if err != nil {
		return nil, err
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "face_shader",
		Source: hal.ShaderSource{SPIRV: words},
	})
}
