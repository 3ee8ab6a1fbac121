package parser

import (
	"github.com/arloliu/rowstream/internal/hash"
	"github.com/arloliu/rowstream/token"
)

// structural is the lexer callback. Errors and keys are handled regardless
// of phase; everything else dispatches on the current phase.
func (p *Parser) structural(ev token.Event) {
	switch ev.Action {
	case token.ActionError:
		p.onParseError()
		return
	case token.ActionKey:
		p.onKey(ev)
		return
	}

	switch p.phase {
	case phaseSearch:
		p.searchEvent(ev)
	case phaseStream:
		p.streamEvent(ev)
	case phaseTrailer:
		p.trailerEvent(ev)
	}
}

// onKey captures the most recent object key. The matcher needs the parent's
// key at the moment a child container opens, and the key bytes may be
// trimmed or relocated by then, so they are copied out immediately.
func (p *Parser) onKey(ev token.Event) {
	p.lastKey.Reset()
	p.lastKey.MustWrite(p.region(ev.Pos, ev.End-ev.Pos))
}

// onParseError handles a malformed-input report from the lexer: set the
// sticky flag and deliver a single ERROR event carrying the entire live
// window (there is no structural landmark to scope it more precisely).
func (p *Parser) onParseError() {
	if p.haveError {
		return
	}
	p.haveError = true
	p.cb(Event{Kind: EventError, Data: p.scratch.Bytes()})
}

// structuralError reports a document-shape mismatch (root is not an object,
// or the rows array never appeared). Same sticky-flag protocol as a parse
// error; the lexer keeps running, but row handlers become no-ops.
func (p *Parser) structuralError() {
	p.onParseError()
}

// searchEvent looks for the root object, then for the rows array one level
// below it.
func (p *Parser) searchEvent(ev token.Event) {
	if p.haveError {
		return
	}

	switch ev.Action {
	case token.ActionPush:
		if !p.initialized {
			if p.matcher.MatchOpen(ev.Depth, nil, ev.Kind) != token.MatchPartial {
				p.structuralError()
				return
			}
			p.initialized = true
			p.rootDepth = ev.Depth

			return
		}
		if p.matcher.MatchOpen(ev.Depth, p.lastKey.Bytes(), ev.Kind) == token.MatchFull {
			p.rowsDepth = ev.Depth
			p.captureHeader(ev.Pos)
			p.phase = phaseStream
		}

	case token.ActionScalar:
		if !p.initialized {
			// Root value is a scalar, not an object.
			p.structuralError()
		}

	case token.ActionPop:
		if p.initialized && ev.Depth == p.rootDepth {
			// Root closed without a rows array at the expected path.
			p.structuralError()
		}
	}
}

// captureHeader stores everything seen so far, up to and including the rows
// array opener, as the metadata header. Runs exactly once per document; no
// trimming can have happened yet, so the whole prefix is still addressable.
func (p *Parser) captureHeader(arrayOpen int64) {
	if p.headerDone {
		return
	}
	p.meta.Reset()
	p.meta.MustWrite(p.region(p.minPos, arrayOpen+1-p.minPos))
	p.headerLen = p.meta.Len()
	p.headerDone = true
}

// streamEvent delivers rows. Each completed value directly inside the rows
// array is one row; the array's own close switches to the trailer phase
// without a row event.
func (p *Parser) streamEvent(ev token.Event) {
	switch ev.Action {
	case token.ActionPop:
		if ev.Depth == p.rowsDepth {
			if !p.haveError {
				// Keep the ']' addressable: the trailer starts with it.
				p.keepPos = ev.End - 1
				p.lastRowEnd = ev.End - 1
			}
			p.phase = phaseTrailer

			return
		}
		if ev.Depth == p.rowsDepth+1 {
			p.emitRow(ev.Pos, ev.End)
		}

	case token.ActionScalar:
		if ev.Depth == p.rowsDepth+1 {
			p.emitRow(ev.Pos, ev.End)
		}
	}
}

// emitRow advances the discard watermark past the completed row and hands
// its bytes to the callback. The slice aliases the scratch window and is
// invalidated by the trim that follows this Feed.
func (p *Parser) emitRow(start, end int64) {
	if p.haveError {
		return
	}

	p.keepPos = end
	p.lastRowEnd = end
	p.rowCount++

	ev := Event{Kind: EventRow, Data: p.region(start, end-start), Row: p.rowCount - 1}
	if p.cfg.digests {
		ev.Digest = hash.Digest(ev.Data)
	}
	p.cb(ev)
}

// trailerEvent waits for the root object to close, then combines the
// metadata and reports completion. Deliberately not gated on the sticky
// error flag: completion stays best-effort after an error, for the rare case
// where the lexer is still alive.
func (p *Parser) trailerEvent(ev token.Event) {
	if ev.Action == token.ActionPop && ev.Depth == p.rootDepth {
		p.combineMeta()
		p.cb(Event{Kind: EventComplete, Data: p.meta.Bytes()})
	}
}
