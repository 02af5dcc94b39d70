// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu uploads task tables to GPU textures and carries the WGSL
// rendition of the table decode scheme.
//
// The table travels to the GPU as an RGBA32Float 2D texture: one texel
// per storage vector, read back by the fetch functions in
// shaders/task_fetch.wgsl with textureLoad (point-sampled, level 0).
//
// rendertask receives the device from the host, it does not create one:
// hosts integrating through the gpucontext ecosystem implement
// DeviceHandle, hosts on gogpu/wgpu pass hal.Device and hal.Queue
// directly to UploadTable.
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/rendertask"
)

// Upload errors.
var (
	// ErrNilDevice is returned when the device or queue is nil.
	ErrNilDevice = errors.New("gpu: device and queue are required")

	// ErrNilTable is returned when the table is nil.
	ErrNilTable = errors.New("gpu: table is nil")

	// ErrEmptyTable is returned when the table holds no texels.
	ErrEmptyTable = errors.New("gpu: table holds no texels")
)

// DeviceHandle provides GPU device access from the host application.
// It is an alias for gpucontext.DeviceProvider, keeping rendertask
// compatible with hosts that share their device through the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TableDescriptor describes the texture a table uploads into, in
// gputypes terms, for hosts that create the texture themselves.
type TableDescriptor struct {
	// Label is the debug name of the texture.
	Label string

	// Width and Height are the texture dimensions in texels.
	Width  uint32
	Height uint32

	// Format is always RGBA32Float: four float32 channels per storage
	// vector, read verbatim.
	Format gputypes.TextureFormat

	// Usage covers binding for sampling-free reads plus the upload copy.
	Usage gputypes.TextureUsage
}

// DescribeTable returns the texture descriptor for t.
func DescribeTable(t *rendertask.Table) TableDescriptor {
	return TableDescriptor{
		Label:  "task_table",
		Width:  uint32(t.WidthTexels()),
		Height: uint32(t.Rows()),
		Format: gputypes.TextureFormatRGBA32Float,
		Usage:  gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// UploadTable creates an RGBA32Float texture sized for t and writes the
// packed channel data into it. The caller owns the returned texture and
// releases it with device.DestroyTexture.
//
// The write goes through the queue, so by WebGPU ordering the table is
// fully populated before any subsequently submitted decode dispatch
// runs, which is the ordering the decoders rely on.
func UploadTable(device hal.Device, queue hal.Queue, t *rendertask.Table) (hal.Texture, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if t == nil {
		return nil, ErrNilTable
	}
	if t.TexelCount() == 0 {
		return nil, ErrEmptyTable
	}

	width := uint32(t.WidthTexels())
	height := uint32(t.Rows())

	texture, err := device.CreateTexture(&hal.TextureDescriptor{
		Label: "task_table",
		Size: hal.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA32Float,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to create task table texture: %w", err)
	}

	dst := &hal.ImageCopyTexture{
		Texture:  texture,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
		Aspect:   gputypes.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  width * 16, // 4 channels * 4 bytes per texel
		RowsPerImage: height,
	}
	size := &hal.Extent3D{
		Width:              width,
		Height:             height,
		DepthOrArrayLayers: 1,
	}
	queue.WriteTexture(dst, t.Bytes(), layout, size)

	rendertask.Logger().Debug("gpu: task table uploaded",
		"width", width, "height", height)
	return texture, nil
}
