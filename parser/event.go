package parser

// EventKind identifies what a parser event carries.
type EventKind uint8

const (
	// EventRow delivers one element of the rows array as raw bytes.
	EventRow EventKind = iota + 1
	// EventComplete delivers the combined metadata envelope after the root
	// object closes.
	EventComplete
	// EventError reports malformed input or a structural mismatch. It is
	// delivered at most once per stream; the payload is the parser's entire
	// live window at the time of detection, to aid diagnosis.
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventRow:
		return "Row"
	case EventComplete:
		return "Complete"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is delivered synchronously to the user callback from within Feed.
type Event struct {
	Kind EventKind

	// Data is the event payload: the raw row bytes for EventRow, the
	// combined metadata for EventComplete, the live window contents for
	// EventError. The slice aliases parser-owned memory and is only valid
	// for the duration of the callback; copy anything that must outlive it.
	Data []byte

	// Row is the zero-based index of the row within the array.
	// Set for EventRow only.
	Row int64

	// Digest is the xxHash64 of Data, populated for EventRow when the
	// parser was created with WithRowDigests.
	Digest uint64
}

// Callback receives parser events. It must not call back into the
// originating Parser's Feed or Reset.
type Callback func(Event)
