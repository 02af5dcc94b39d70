package rendertask

// BuilderOptions controls how a Builder packs the table.
type BuilderOptions struct {
	// WidthTexels is the row width of the produced table. It is rounded
	// down to a multiple of TaskStride so no record straddles a row.
	WidthTexels int

	// DedupTasks shares one table slot between records with identical
	// contents. Producers that emit the same clip area for many
	// primitives can cut the table size substantially; the decoders
	// cannot tell the difference.
	DedupTasks bool
}

// DefaultBuilderOptions returns options with sensible defaults:
// 1024 texels per row (512 records), no dedup.
func DefaultBuilderOptions() BuilderOptions {
	return BuilderOptions{
		WidthTexels: 1024,
		DedupTasks:  false,
	}
}

// packedRecord is one record's channel data in table order.
type packedRecord [TaskStride * 4]float32

// Builder packs task records for one frame. It appends records in
// address order, reserves InvalidTaskAddress, and seals the frame with
// Finish. Addresses are positionally dense: address N occupies record
// slot N of the packed stream, which is what lets Table.Coord locate a
// record without a directory. A Builder is not safe for concurrent use;
// the producing phase is single-threaded by the surrounding pipeline.
type Builder struct {
	widthTexels int
	data        []float32
	next        TaskAddress
	dedup       map[packedRecord]TaskAddress
}

// NewBuilder creates a builder for a table with the given options.
// Zero-value fields fall back to DefaultBuilderOptions.
func NewBuilder(opts BuilderOptions) *Builder {
	width := opts.WidthTexels
	if width <= 0 {
		width = DefaultBuilderOptions().WidthTexels
	}
	if width%TaskStride != 0 {
		width -= width % TaskStride
		Logger().Debug("rendertask: builder width rounded to task stride", "width", width)
	}
	if width < TaskStride {
		width = TaskStride
	}
	b := &Builder{widthTexels: width}
	if opts.DedupTasks {
		b.dedup = make(map[packedRecord]TaskAddress)
	}
	return b
}

// TaskCount returns the number of table slots used so far, including
// the reserved sentinel slot once it has been passed.
func (b *Builder) TaskCount() int {
	return int(b.next)
}

// Reset discards all packed records so the builder can pack the next
// frame without reallocating.
func (b *Builder) Reset() {
	b.data = b.data[:0]
	b.next = 0
	if b.dedup != nil {
		clear(b.dedup)
	}
}

// AddTask packs a record with an opaque payload and returns its address.
func (b *Builder) AddTask(common TaskCommonData, payload [3]float32) TaskAddress {
	rec := packedRecord{
		common.TaskRect.Origin.X,
		common.TaskRect.Origin.Y,
		common.TaskRect.Size.X,
		common.TaskRect.Size.Y,
		common.TextureLayerIndex,
		payload[0],
		payload[1],
		payload[2],
	}

	if b.dedup != nil {
		if addr, ok := b.dedup[rec]; ok {
			Logger().Debug("rendertask: task deduped", "addr", addr)
			return addr
		}
	}

	if b.next == InvalidTaskAddress {
		// The sentinel slot must never hold a real record. Burn it with
		// zeros and move on.
		b.append(packedRecord{})
		b.next++
		Logger().Debug("rendertask: sentinel task address skipped")
	}

	addr := b.next
	b.append(rec)
	b.next++
	if b.dedup != nil {
		b.dedup[rec] = addr
	}
	return addr
}

// AddPictureTask packs a picture task: the payload carries the content
// origin, with the third channel unused.
func (b *Builder) AddPictureTask(taskRect Rect, textureLayer float32, contentOrigin Point) TaskAddress {
	common := TaskCommonData{TaskRect: taskRect, TextureLayerIndex: textureLayer}
	return b.AddTask(common, [3]float32{contentOrigin.X, contentOrigin.Y, 0})
}

// AddClipArea packs a clip area: the payload carries the screen origin
// and the local-space marker. The marker is exactly 0 for local space
// and 1 otherwise; DecodeClipArea tests it with an exact comparison.
func (b *Builder) AddClipArea(taskRect Rect, textureLayer float32, screenOrigin Point, localSpace bool) TaskAddress {
	marker := float32(1)
	if localSpace {
		marker = 0
	}
	common := TaskCommonData{TaskRect: taskRect, TextureLayerIndex: textureLayer}
	return b.AddTask(common, [3]float32{screenOrigin.X, screenOrigin.Y, marker})
}

// Finish seals the frame: the final row is padded with zero texels and
// the packed data is wrapped in a read-only Table. The returned table
// shares the builder's backing array, so Reset only after the table is
// no longer decoded from.
func (b *Builder) Finish() *Table {
	rowFloats := b.widthTexels * 4
	if rem := len(b.data) % rowFloats; rem != 0 {
		pad := rowFloats - rem
		b.data = append(b.data, make([]float32, pad)...)
	}
	Logger().Debug("rendertask: table finished",
		"tasks", b.TaskCount(),
		"rows", len(b.data)/4/b.widthTexels)
	return newTable(b.widthTexels, b.data)
}

// append writes one record's channels to the packed stream.
func (b *Builder) append(rec packedRecord) {
	b.data = append(b.data, rec[:]...)
}
