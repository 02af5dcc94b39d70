// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/rendertask"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

func buildTestTable(t *testing.T) *rendertask.Table {
	t.Helper()
	b := rendertask.NewBuilder(rendertask.BuilderOptions{WidthTexels: 8})
	b.AddPictureTask(rendertask.R(0, 0, 64, 64), 0, rendertask.P(4, 4))
	b.AddClipArea(rendertask.R(8, 8, 16, 16), 1, rendertask.P(8, 8), true)
	return b.Finish()
}

func TestUploadTableNilArgs(t *testing.T) {
	table := buildTestTable(t)

	if _, err := UploadTable(nil, nil, table); !errors.Is(err, ErrNilDevice) {
		t.Errorf("UploadTable(nil device) error = %v, want ErrNilDevice", err)
	}

	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	if _, err := UploadTable(device, queue, nil); !errors.Is(err, ErrNilTable) {
		t.Errorf("UploadTable(nil table) error = %v, want ErrNilTable", err)
	}
}

func TestUploadTableEmpty(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	b := rendertask.NewBuilder(rendertask.BuilderOptions{WidthTexels: 8})
	empty := b.Finish()

	if _, err := UploadTable(device, queue, empty); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("UploadTable(empty table) error = %v, want ErrEmptyTable", err)
	}
}

func TestUploadTable(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	table := buildTestTable(t)
	texture, err := UploadTable(device, queue, table)
	if err != nil {
		t.Fatalf("UploadTable: %v", err)
	}
	if texture == nil {
		t.Fatal("UploadTable returned nil texture")
	}
	device.DestroyTexture(texture)
}

func TestDescribeTable(t *testing.T) {
	table := buildTestTable(t)
	desc := DescribeTable(table)

	if desc.Width != 8 {
		t.Errorf("Width = %d, want 8", desc.Width)
	}
	if desc.Height != 1 {
		t.Errorf("Height = %d, want 1", desc.Height)
	}
	if desc.Format != gputypes.TextureFormatRGBA32Float {
		t.Errorf("Format = %v, want RGBA32Float", desc.Format)
	}
	if desc.Usage&gputypes.TextureUsageTextureBinding == 0 {
		t.Error("Usage missing TextureBinding")
	}
	if desc.Usage&gputypes.TextureUsageCopyDst == 0 {
		t.Error("Usage missing CopyDst")
	}
}
