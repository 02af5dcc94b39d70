package rendertask

// TaskAddress is the linear index of a task record in the table.
// Addresses are dense: the builder hands them out in packing order.
type TaskAddress uint32

// InvalidTaskAddress is permanently reserved to mean "no task". It is
// never assigned to a real record; DecodeClipArea short-circuits on it
// without reading the table.
const InvalidTaskAddress TaskAddress = 0x7fff

// TaskStride is the number of texels every task record occupies,
// regardless of kind. A fixed stride is what makes records addressable
// by a bare integer.
const TaskStride = 2

// Channel layout within a record's two texels. This is the wire format
// shared with shaders/task_fetch.wgsl; the two must stay bit-exact.
//
//	texel 0: rect origin.x | rect origin.y | rect size.w | rect size.h
//	texel 1: texture layer | payload 0     | payload 1   | payload 2
const (
	texelRect = 0 // texel offset of the rect
	texelMeta = 1 // texel offset of layer + payload

	chanLayer    = 0 // channel of the texture layer index in texelMeta
	chanPayload0 = 1
	chanPayload1 = 2
	chanPayload2 = 3
)

// TaskKind identifies how a record's payload is to be reinterpreted.
// The kind is a producer-side notion only: it is not stored in the
// table, because each shader knows which view it expects.
type TaskKind uint8

const (
	// TaskKindOpaque is a record whose payload this package does not
	// interpret.
	TaskKindOpaque TaskKind = iota

	// TaskKindPicture renders a subtree into an offscreen area; the
	// payload holds the content origin.
	TaskKindPicture

	// TaskKindClipArea masks other tasks; the payload holds the screen
	// origin and the local-space marker.
	TaskKindClipArea
)

// String returns a human-readable name for the task kind.
func (k TaskKind) String() string {
	switch k {
	case TaskKindOpaque:
		return "Opaque"
	case TaskKindPicture:
		return "Picture"
	case TaskKindClipArea:
		return "ClipArea"
	default:
		return "Unknown"
	}
}
