package token

import "bytes"

// MatchResult is the path matcher's verdict for a container opening.
type MatchResult uint8

const (
	// MatchNone means the container is not on the target path.
	MatchNone MatchResult = iota
	// MatchPartial means the container is a proper prefix of the target
	// path (here: the root object).
	MatchPartial
	// MatchFull means the container is exactly the target array.
	MatchFull
)

func (r MatchResult) String() string {
	switch r {
	case MatchPartial:
		return "Partial"
	case MatchFull:
		return "Full"
	default:
		return "None"
	}
}

// PathMatcher decides whether an opening container sits on the fixed target
// path: an array stored one level under the given key of the root object.
//
// The matcher works purely on structural facts supplied by the caller (the
// container's depth and kind, and the key under which it opens), so it never
// needs to see document bytes of its own.
type PathMatcher struct {
	key []byte
}

// NewPathMatcher compiles the target path for the array under rowsKey in the
// root object.
func NewPathMatcher(rowsKey string) *PathMatcher {
	return &PathMatcher{key: []byte(rowsKey)}
}

// MatchOpen classifies a container that just opened at the given depth under
// the given parent key (nil at the root). Keys are compared as raw bytes:
// an escaped spelling of the target key does not match.
func (m *PathMatcher) MatchOpen(depth int, key []byte, kind Kind) MatchResult {
	switch {
	case depth == 1 && kind == KindObject:
		return MatchPartial
	case depth == 2 && kind == KindArray && bytes.Equal(key, m.key):
		return MatchFull
	default:
		return MatchNone
	}
}
