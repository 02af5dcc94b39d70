// Package rendertask packs per-frame render task descriptors into a flat
// table of float32 texels and decodes them back out by address.
//
// # Overview
//
// A renderer that splits a frame into intermediate tasks (offscreen
// pictures, clip areas, ...) needs to hand each GPU invocation the
// metadata of the task it is working on. rendertask stores that metadata
// in a single RGBA32Float texture used as an indexable buffer: every task
// occupies exactly two texels, so a task is located from a bare integer
// address with no directory or length fields.
//
// The host side packs with a Builder:
//
//	b := rendertask.NewBuilder(rendertask.DefaultBuilderOptions())
//	addr := b.AddPictureTask(rendertask.R(0, 0, 256, 256), 0, rendertask.P(16, 16))
//	table := b.Finish()
//
// and any consumer, CPU or GPU, decodes by address:
//
//	task := table.DecodePictureTask(addr)
//
// The gpu sub-package carries the WGSL rendition of the same decode
// scheme plus the texture upload path, so shader code and Go code read
// the identical channel layout.
//
// # Layout
//
// Texel 0 holds the task rectangle (origin.x, origin.y, size.w, size.h).
// Texel 1 holds the texture layer index in channel 0 and a three-float
// payload in channels 1-3. The payload is opaque at this layer; each
// typed view (PictureTask, ClipArea) reinterprets it.
//
// # Decode contract
//
// Decoding is pure and allocation-free. It performs no bounds checking:
// an address must come from the Builder that produced the table, or the
// decode returns garbage. The single exception is InvalidTaskAddress,
// which is permanently reserved to mean "no task" and decodes to an
// all-zero record without touching the table.
package rendertask
