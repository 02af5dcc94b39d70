package rendertask

import (
	"encoding/binary"
	"errors"
	"math"
)

// Table errors.
var (
	// ErrInvalidTableWidth is returned when the width is not a positive
	// multiple of TaskStride.
	ErrInvalidTableWidth = errors.New("rendertask: table width must be a positive multiple of the task stride")

	// ErrInvalidTableSize is returned when the texel count is negative or
	// not a whole number of rows.
	ErrInvalidTableSize = errors.New("rendertask: table size must be a whole number of rows")
)

// Texel is one addressable cell of the table: four independent float32
// channels, matching one RGBA32Float texel on the GPU.
type Texel [4]float32

// Table is the flat grid of texels holding all task records for one
// frame. It is written in full by a Builder (or SetTexel) before any
// decode runs, then treated as read-only: every decoder is a pure
// reader, so a finished Table is safe for concurrent use.
type Table struct {
	widthTexels int
	data        []float32
}

// NewTable creates a zero-filled table of texelCount texels laid out
// widthTexels per row. widthTexels must be a positive multiple of
// TaskStride so that no record straddles a row boundary.
func NewTable(widthTexels, texelCount int) (*Table, error) {
	if widthTexels <= 0 || widthTexels%TaskStride != 0 {
		return nil, ErrInvalidTableWidth
	}
	if texelCount < 0 || texelCount%widthTexels != 0 {
		return nil, ErrInvalidTableSize
	}
	return &Table{
		widthTexels: widthTexels,
		data:        make([]float32, texelCount*4),
	}, nil
}

// newTable wraps builder-owned channel data without copying.
func newTable(widthTexels int, data []float32) *Table {
	return &Table{widthTexels: widthTexels, data: data}
}

// WidthTexels returns the row width in texels.
func (t *Table) WidthTexels() int {
	return t.widthTexels
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return len(t.data) / 4 / t.widthTexels
}

// TexelCount returns the total number of texels.
func (t *Table) TexelCount() int {
	return len(t.data) / 4
}

// Coord maps a linear task address to the grid coordinate of the task's
// first texel, assuming stride texels per record. Records are laid out
// row-major; distinct in-range addresses map to non-overlapping texel
// ranges.
func (t *Table) Coord(addr TaskAddress, stride int) (x, y int) {
	tasksPerRow := t.widthTexels / stride
	x = (int(addr) % tasksPerRow) * stride
	y = int(addr) / tasksPerRow
	return x, y
}

// Fetch returns the texel at (x, y): a point-sampled read, no filtering.
// Coordinates are not bounds-checked; this is the decode hot path.
func (t *Table) Fetch(x, y int) Texel {
	i := (y*t.widthTexels + x) * 4
	return Texel{t.data[i], t.data[i+1], t.data[i+2], t.data[i+3]}
}

// FetchOffset returns the texel dx texels to the right of (x, y).
// Decoders use it to read a record's second texel relative to its first.
func (t *Table) FetchOffset(x, y, dx int) Texel {
	return t.Fetch(x+dx, y)
}

// SetTexel overwrites the texel at (x, y). It is the producer-side write
// primitive; calling it after decoding has started breaks the
// read-only contract.
func (t *Table) SetTexel(x, y int, texel Texel) {
	i := (y*t.widthTexels + x) * 4
	copy(t.data[i:i+4], texel[:])
}

// Contains reports whether addr falls inside the table at the standard
// stride. Decoders never call this; it exists so hosts and tests can
// validate addresses off the hot path.
func (t *Table) Contains(addr TaskAddress) bool {
	x, y := t.Coord(addr, TaskStride)
	return y < t.Rows() && x+TaskStride <= t.widthTexels
}

// Float32s returns the backing channel data, row-major, four channels
// per texel. The slice is shared, not copied.
func (t *Table) Float32s() []float32 {
	return t.data
}

// Bytes serializes the channel data as little-endian IEEE-754 words,
// ready for a texture upload.
func (t *Table) Bytes() []byte {
	buf := make([]byte, len(t.data)*4)
	for i, f := range t.data {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
