package token

import "fmt"

// DefaultMaxDepth is the deepest container nesting level the lexer reports
// events for. Deeper structure is still parsed, just not reported.
const DefaultMaxDepth = 4

type scanState uint8

const (
	stateValue        scanState = iota + 1 // expecting a value
	stateValueOrClose                      // expecting a value or ']' (right after '[')
	stateKeyOrClose                        // expecting a key or '}' (right after '{')
	stateKey                               // expecting a key (after ',' in an object)
	stateColon                             // expecting ':' after a key
	stateValueEnd                          // after a value: ',' or the container closer
	stateString                            // inside a string
	stateStringEsc                         // just consumed a backslash
	stateStringUni                         // inside a \uXXXX escape
	stateNumber                            // inside a number
	stateLiteral                           // inside true/false/null
	stateEnd                               // root value done; whitespace only
)

type frame struct {
	kind  Kind
	start int64
}

// Lexer is an incremental structural JSON tokenizer.
//
// Feed it the stream's bytes in order, split anywhere; it resumes mid-token
// across chunk boundaries and reports push/pop/key/scalar events with
// absolute offsets via the callback, synchronously within Feed. After a
// malformed-input error the lexer goes dead and silently swallows further
// input until Reset.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	cb       Callback
	maxDepth int

	pos   int64 // absolute offset of the next byte to be fed
	state scanState
	stack []frame

	tokStart int64 // start offset of the in-flight string/number/literal
	strIsKey bool
	uniLeft  int
	lit      string
	litOff   int
	dead     bool
}

// NewLexer creates a lexer reporting events up to maxDepth container levels
// to cb. A maxDepth of 0 or less selects DefaultMaxDepth.
func NewLexer(maxDepth int, cb Callback) *Lexer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Lexer{
		cb:       cb,
		maxDepth: maxDepth,
		state:    stateValue,
		stack:    make([]frame, 0, 8),
	}
}

// Pos returns the absolute offset of the next byte to be fed.
func (lx *Lexer) Pos() int64 {
	return lx.pos
}

// Depth returns the current container nesting depth.
func (lx *Lexer) Depth() int {
	return len(lx.stack)
}

// Dead reports whether the lexer has hit malformed input and stopped.
func (lx *Lexer) Dead() bool {
	return lx.dead
}

// Reset rewinds the lexer to the start of a new stream, reusing allocations.
func (lx *Lexer) Reset() {
	lx.pos = 0
	lx.state = stateValue
	lx.stack = lx.stack[:0]
	lx.tokStart = 0
	lx.strIsKey = false
	lx.uniLeft = 0
	lx.lit = ""
	lx.litOff = 0
	lx.dead = false
}

// Feed consumes the next chunk of the stream. Events fire synchronously
// before Feed returns. A dead lexer still advances its position so that the
// caller's offset bookkeeping stays consistent.
func (lx *Lexer) Feed(data []byte) {
	if lx.dead {
		lx.pos += int64(len(data))
		return
	}

	base := lx.pos
	i := 0
	for i < len(data) && !lx.dead {
		c := data[i]
		abs := base + int64(i)

		switch lx.state {
		case stateValue, stateValueOrClose:
			if isSpace(c) {
				i++
				continue
			}
			if c == ']' && lx.state == stateValueOrClose {
				lx.pop(abs)
				i++
				continue
			}
			lx.startValue(c, abs)
			i++

		case stateKeyOrClose:
			if isSpace(c) {
				i++
				continue
			}
			switch c {
			case '}':
				lx.pop(abs)
			case '"':
				lx.tokStart = abs
				lx.strIsKey = true
				lx.state = stateString
			default:
				lx.fail(abs, "expected object key or '}'")
			}
			i++

		case stateKey:
			if isSpace(c) {
				i++
				continue
			}
			if c != '"' {
				lx.fail(abs, "expected object key")
				continue
			}
			lx.tokStart = abs
			lx.strIsKey = true
			lx.state = stateString
			i++

		case stateColon:
			if isSpace(c) {
				i++
				continue
			}
			if c != ':' {
				lx.fail(abs, "expected ':' after object key")
				continue
			}
			lx.state = stateValue
			i++

		case stateValueEnd:
			if isSpace(c) {
				i++
				continue
			}
			top := lx.stack[len(lx.stack)-1]
			switch {
			case c == ',' && top.kind == KindObject:
				lx.state = stateKey
			case c == ',' && top.kind == KindArray:
				lx.state = stateValue
			case c == '}' && top.kind == KindObject:
				lx.pop(abs)
			case c == ']' && top.kind == KindArray:
				lx.pop(abs)
			default:
				lx.fail(abs, "expected ',' or container close after value")
			}
			i++

		case stateString:
			switch {
			case c == '"':
				lx.finishString(abs)
			case c == '\\':
				lx.state = stateStringEsc
			case c < 0x20:
				lx.fail(abs, "control character inside string")
			}
			i++

		case stateStringEsc:
			switch c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				lx.state = stateString
			case 'u':
				lx.uniLeft = 4
				lx.state = stateStringUni
			default:
				lx.fail(abs, "invalid escape sequence")
			}
			i++

		case stateStringUni:
			if !isHex(c) {
				lx.fail(abs, "invalid unicode escape")
				continue
			}
			lx.uniLeft--
			if lx.uniLeft == 0 {
				lx.state = stateString
			}
			i++

		case stateNumber:
			if isNumberChar(c) {
				i++
				continue
			}
			// Delimiter: the number ends here; reprocess c in the next state.
			lx.finishScalar(KindNumber, lx.tokStart, abs)

		case stateLiteral:
			if lx.litOff >= len(lx.lit) || c != lx.lit[lx.litOff] {
				lx.fail(abs, "invalid literal")
				continue
			}
			lx.litOff++
			i++
			if lx.litOff == len(lx.lit) {
				lx.finishScalar(literalKind(lx.lit), lx.tokStart, abs+1)
			}

		case stateEnd:
			if !isSpace(c) {
				lx.fail(abs, "trailing garbage after document")
				continue
			}
			i++

		default:
			lx.fail(abs, "lexer state corrupted")
		}
	}

	lx.pos = base + int64(len(data))
}

// startValue dispatches on the first byte of a value.
func (lx *Lexer) startValue(c byte, abs int64) {
	switch {
	case c == '{':
		lx.push(KindObject, abs)
		lx.state = stateKeyOrClose
	case c == '[':
		lx.push(KindArray, abs)
		lx.state = stateValueOrClose
	case c == '"':
		lx.tokStart = abs
		lx.strIsKey = false
		lx.state = stateString
	case c == '-' || (c >= '0' && c <= '9'):
		lx.tokStart = abs
		lx.state = stateNumber
	case c == 't':
		lx.startLiteral("true", abs)
	case c == 'f':
		lx.startLiteral("false", abs)
	case c == 'n':
		lx.startLiteral("null", abs)
	default:
		lx.fail(abs, "unexpected character at value start")
	}
}

func (lx *Lexer) startLiteral(lit string, abs int64) {
	lx.lit = lit
	lx.litOff = 1
	lx.tokStart = abs
	lx.state = stateLiteral
}

func (lx *Lexer) push(kind Kind, abs int64) {
	lx.stack = append(lx.stack, frame{kind: kind, start: abs})
	depth := len(lx.stack)
	if depth <= lx.maxDepth {
		lx.cb(Event{Action: ActionPush, Kind: kind, Depth: depth, Pos: abs})
	}
}

func (lx *Lexer) pop(closerAbs int64) {
	depth := len(lx.stack)
	fr := lx.stack[depth-1]
	lx.stack = lx.stack[:depth-1]
	if depth <= lx.maxDepth {
		lx.cb(Event{Action: ActionPop, Kind: fr.kind, Depth: depth, Pos: fr.start, End: closerAbs + 1})
	}
	lx.state = lx.afterValue()
}

// finishString closes the string whose opening quote is at tokStart;
// closeQuote is the offset of the terminating quote.
func (lx *Lexer) finishString(closeQuote int64) {
	if lx.strIsKey {
		lx.strIsKey = false
		depth := len(lx.stack)
		if depth <= lx.maxDepth {
			lx.cb(Event{Action: ActionKey, Kind: KindString, Depth: depth, Pos: lx.tokStart + 1, End: closeQuote})
		}
		lx.state = stateColon

		return
	}

	lx.finishScalar(KindString, lx.tokStart, closeQuote+1)
}

// finishScalar reports a completed scalar value with [pos, end) raw bytes.
func (lx *Lexer) finishScalar(kind Kind, pos, end int64) {
	depth := len(lx.stack) + 1
	if depth <= lx.maxDepth {
		lx.cb(Event{Action: ActionScalar, Kind: kind, Depth: depth, Pos: pos, End: end})
	}
	lx.state = lx.afterValue()
}

func (lx *Lexer) afterValue() scanState {
	if len(lx.stack) == 0 {
		return stateEnd
	}

	return stateValueEnd
}

func (lx *Lexer) fail(abs int64, msg string) {
	lx.dead = true
	lx.cb(Event{
		Action: ActionError,
		Pos:    abs,
		Err:    fmt.Errorf("%s at offset %d", msg, abs),
	})
}

func literalKind(lit string) Kind {
	switch lit {
	case "true":
		return KindTrue
	case "false":
		return KindFalse
	default:
		return KindNull
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isNumberChar accepts any byte that can appear inside a JSON number. The
// lexer locates structure rather than validating values, so it does not
// reject shapes like "1.2.3"; a downstream decoder will.
func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E'
}
