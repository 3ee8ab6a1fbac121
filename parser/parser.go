package parser

import (
	"errors"

	"github.com/arloliu/rowstream/internal/buffer"
	"github.com/arloliu/rowstream/internal/options"
	"github.com/arloliu/rowstream/token"
)

const (
	scratchInitialSize = 4096
	metaInitialSize    = 512
	keyInitialSize     = 64
)

// phase selects which structural events the parser acts on. Dispatch is a
// single switch per event rather than rebindable handler pointers.
type phase uint8

const (
	phaseSearch  phase = iota + 1 // locating the root object and the rows array
	phaseStream                   // delivering rows from inside the rows array
	phaseTrailer                  // waiting for the root object to close
)

// Parser is the incremental row-extraction context.
//
// It owns the lexer, the path matcher, and three buffers: the rolling scratch
// window over the live portion of the stream, the accumulated metadata, and
// the most recent object key. See the package documentation for the usage
// model and the concurrency contract.
type Parser struct {
	lex     *token.Lexer
	matcher *token.PathMatcher
	cb      Callback
	cfg     config

	scratch *buffer.Buffer
	meta    *buffer.Buffer
	lastKey *buffer.Buffer

	// minPos is the absolute stream offset of scratch byte 0; it only ever
	// advances. keepPos is the watermark below which bytes may be discarded
	// after the current Feed. Invariant: minPos <= keepPos.
	minPos  int64
	keepPos int64

	// lastRowEnd is where the metadata trailer begins: one past the last
	// completed row, or the rows array closer when the array has closed.
	lastRowEnd int64
	headerLen  int
	rowCount   int64

	phase        phase
	haveError    bool // sticky until Reset
	initialized  bool // root object seen and accepted
	metaComplete bool // trailer appended to meta
	headerDone   bool // header captured into meta

	// Depths of the accepted containers; 0 while unknown.
	rootDepth int
	rowsDepth int
}

// New creates a Parser delivering events to cb.
func New(cb Callback, opts ...Option) (*Parser, error) {
	if cb == nil {
		return nil, errors.New("callback cannot be nil")
	}

	p := &Parser{
		cb:      cb,
		cfg:     config{rowsKey: DefaultRowsKey, maxDepth: token.DefaultMaxDepth},
		scratch: buffer.New(scratchInitialSize),
		meta:    buffer.New(metaInitialSize),
		lastKey: buffer.New(keyInitialSize),
		phase:   phaseSearch,
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	p.lex = token.NewLexer(p.cfg.maxDepth, p.structural)
	p.matcher = token.NewPathMatcher(p.cfg.rowsKey)

	return p, nil
}

// Feed consumes the next chunk of the document, in stream order. Chunks may
// be empty and may split the document anywhere, including mid-token.
//
// Zero or more events are delivered synchronously to the callback before
// Feed returns. Afterwards the scratch window is trimmed: bytes up to the
// last completed row are discarded, which bounds memory by the largest
// unconsumed suffix of the stream.
func (p *Parser) Feed(chunk []byte) {
	oldLen := p.scratch.Len()
	p.scratch.MustWrite(chunk)

	// The lexer continues from its own absolute position; it only ever sees
	// the newly appended region.
	p.lex.Feed(p.scratch.Bytes()[oldLen:])

	p.trim()
}

// Reset rewinds the parser for a new document, reusing all allocations, the
// lexer, and the matcher. The callback and options are retained.
func (p *Parser) Reset() {
	p.lex.Reset()
	p.scratch.Reset()
	p.meta.Reset()
	p.lastKey.Reset()

	p.minPos = 0
	p.keepPos = 0
	p.lastRowEnd = 0
	p.headerLen = 0
	p.rowCount = 0

	p.phase = phaseSearch
	p.haveError = false
	p.initialized = false
	p.metaComplete = false
	p.headerDone = false
	p.rootDepth = 0
	p.rowsDepth = 0
}

// RowCount returns the number of rows delivered so far.
func (p *Parser) RowCount() int64 {
	return p.rowCount
}

// Failed reports whether the sticky error flag is set.
func (p *Parser) Failed() bool {
	return p.haveError
}

// Meta forces metadata combination and returns the metadata bytes: the
// document envelope with an empty rows array. The slice is valid until the
// next Reset or Feed.
//
// Meta is normally called after the stream has been fully consumed; calling
// it earlier freezes the metadata at whatever has been seen so far.
func (p *Parser) Meta() []byte {
	p.combineMeta()
	return p.meta.Bytes()
}

// region translates the absolute range [abs, abs+n) into a slice of the live
// scratch window. If abs has already been trimmed away the data is
// permanently gone and the result is empty, never a fault. The result is
// clamped to the bytes actually present; n < 0 requests everything through
// the end of the window.
func (p *Parser) region(abs, n int64) []byte {
	if abs < p.minPos {
		return nil
	}

	b := p.scratch.Bytes()
	off := abs - p.minPos
	if off >= int64(len(b)) {
		return nil
	}

	avail := int64(len(b)) - off
	if n < 0 || n > avail {
		n = avail
	}

	return b[off : off+n]
}

// trim discards scratch bytes below keepPos by moving the live tail to the
// front of the window and advancing minPos.
func (p *Parser) trim() {
	if p.keepPos <= p.minPos {
		return
	}

	drop := int(p.keepPos - p.minPos)
	b := p.scratch.Bytes()
	n := copy(b, b[drop:])
	p.scratch.Truncate(n)
	p.minPos = p.keepPos
}

// combineMeta truncates the metadata buffer back to the captured header and
// appends the trailer: everything from lastRowEnd through the end of the
// window. Because the header ends with the rows array '[' and the trailer
// begins at (or after) its ']', the concatenation is the envelope with an
// empty rows array, itself valid JSON. Idempotent.
func (p *Parser) combineMeta() {
	if p.metaComplete {
		return
	}

	if p.headerLen <= p.meta.Len() {
		p.meta.Truncate(p.headerLen)
	}
	p.meta.MustWrite(p.region(p.lastRowEnd, -1))
	p.metaComplete = true
}
