package rendertask

// TaskCommonData is the prefix every task record shares, regardless of
// kind: the device-pixel area the task renders into and the index of
// the texture layer holding its output.
type TaskCommonData struct {
	TaskRect          Rect
	TextureLayerIndex float32
}

// TaskData is a full record: the common prefix plus the three-float
// payload. The payload is opaque here; DecodePictureTask and
// DecodeClipArea reinterpret it.
type TaskData struct {
	Common   TaskCommonData
	UserData [3]float32
}

// PictureTask views a record's payload as the origin of the picture's
// content within its task rect.
type PictureTask struct {
	Common        TaskCommonData
	ContentOrigin Point
}

// ClipArea views a record's payload as a clip's screen origin plus a
// flag telling whether its coordinates are in the local (pre-transform)
// frame rather than screen space.
type ClipArea struct {
	Common       TaskCommonData
	ScreenOrigin Point
	LocalSpace   bool
}

// DecodeTaskCommonData reads the shared prefix of the record at addr.
//
// addr must reference a record written by the producer; out-of-range
// addresses decode garbage (see the package contract).
func (t *Table) DecodeTaskCommonData(addr TaskAddress) TaskCommonData {
	return t.DecodeTask(addr).Common
}

// DecodeTask reads the full record at addr: the same two fetches as
// DecodeTaskCommonData, additionally retaining the payload channels.
// Every typed view is a projection of this decode; none of them reads
// the table again.
func (t *Table) DecodeTask(addr TaskAddress) TaskData {
	x, y := t.Coord(addr, TaskStride)
	rect := t.Fetch(x, y)
	meta := t.FetchOffset(x, y, texelMeta)
	return TaskData{
		Common: TaskCommonData{
			TaskRect:          R(rect[0], rect[1], rect[2], rect[3]),
			TextureLayerIndex: meta[chanLayer],
		},
		UserData: [3]float32{meta[chanPayload0], meta[chanPayload1], meta[chanPayload2]},
	}
}

// DecodePictureTask reads the record at addr as a picture task,
// narrowing the payload to the content origin. Payload channel 2 is
// unused by this view.
func (t *Table) DecodePictureTask(addr TaskAddress) PictureTask {
	task := t.DecodeTask(addr)
	return PictureTask{
		Common:        task.Common,
		ContentOrigin: P(task.UserData[0], task.UserData[1]),
	}
}

// DecodeClipArea reads the record at addr as a clip area.
//
// InvalidTaskAddress decodes to the canonical zero clip (empty rect,
// layer 0, zero screen origin, LocalSpace false) without touching the
// table; "no clip" is the common case and must not cost a read, nor
// address a slot that was never written.
//
// The local-space flag is an exact comparison of payload channel 2
// against zero, not a threshold: the producer writes a clean 0/1 marker.
func (t *Table) DecodeClipArea(addr TaskAddress) ClipArea {
	if addr == InvalidTaskAddress {
		return ClipArea{}
	}
	task := t.DecodeTask(addr)
	return ClipArea{
		Common:       task.Common,
		ScreenOrigin: P(task.UserData[0], task.UserData[1]),
		LocalSpace:   task.UserData[2] == 0.0,
	}
}
