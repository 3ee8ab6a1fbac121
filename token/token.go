// Package token implements an incremental structural lexer for JSON byte
// streams, plus the fixed-path matcher used to locate a target array.
//
// The lexer consumes arbitrary chunks (possibly split mid-token) and emits
// structural events carrying absolute byte offsets into the stream fed so
// far. It performs no value decoding and keeps no copy of the input: every
// event is expressed purely as offsets, so the caller decides how to slice
// its own buffers.
package token

// Kind classifies the JSON entity an event refers to.
type Kind uint8

const (
	KindObject Kind = iota + 1
	KindArray
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// Action describes what structurally happened at an event.
type Action uint8

const (
	// ActionPush reports a container opening. Pos is the offset of the
	// opening brace/bracket; End is not set.
	ActionPush Action = iota + 1
	// ActionPop reports a container closing. Pos is the offset of the
	// opening brace/bracket, End is one past the closer.
	ActionPop
	// ActionKey reports a completed object key. Pos and End delimit the
	// raw key content, quotes excluded.
	ActionKey
	// ActionScalar reports a completed scalar value. Pos and End delimit
	// the raw bytes, quotes included for strings.
	ActionScalar
	// ActionError reports malformed input. Pos is the offset at which the
	// lexer gave up; Err describes the problem.
	ActionError
)

// Event is a single structural notification.
//
// Offsets are absolute within the stream fed so far and follow the half-open
// [Pos, End) convention, so callers can re-slice their buffers without any
// adjustment.
type Event struct {
	Action Action
	Kind   Kind
	Depth  int   // container nesting depth; the root container is 1
	Pos    int64 // absolute start offset, inclusive
	End    int64 // absolute end offset, exclusive (pop/key/scalar only)
	Err    error // set for ActionError
}

// Callback receives structural events synchronously during Feed.
type Callback func(Event)
