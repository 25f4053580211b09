package scheduler

// EventType identifies a kind of event. Only one event of each type can be
// scheduled at a time.
type EventType uint8

const (
	// ScanlineRender fires at the end of every scanline.
	ScanlineRender EventType = iota
	// FrameComplete fires once every line of a frame has been rendered.
	FrameComplete

	eventTypes
)

func (t EventType) String() string {
	switch t {
	case ScanlineRender:
		return "ScanlineRender"
	case FrameComplete:
		return "FrameComplete"
	}
	return "Unknown"
}

// Event is a node of the scheduler's event list.
type Event struct {
	cycle     uint64
	eventType EventType
	scheduled bool
	next      *Event
}
