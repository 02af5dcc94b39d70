// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded WGSL shader sources.

//go:embed shaders/task_fetch.wgsl
var taskFetchShaderSource string

// TaskFetchShaderSource returns the WGSL source of the task fetch
// functions. Renderers paste or link it into their own shaders so GPU
// invocations decode the table with the exact channel layout the
// Builder wrote.
func TaskFetchShaderSource() string {
	return taskFetchShaderSource
}

// CompileTaskFetchShader compiles the task fetch WGSL to SPIR-V words.
func CompileTaskFetchShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(taskFetchShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile task fetch shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// CreateTaskFetchModule compiles the task fetch shader and creates a
// HAL shader module from it.
func CreateTaskFetchModule(device hal.Device) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	spirvCode, err := CompileTaskFetchShader()
	if err != nil {
		return nil, err
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "task_fetch",
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}
