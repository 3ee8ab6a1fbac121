// Package parser implements incremental extraction of row elements from a
// JSON document that arrives as a sequence of byte chunks.
//
// The document is expected to be a single root object containing, under a
// configurable key (default "rows"), an array of row values, surrounded by
// arbitrary metadata fields. Rows are delivered through a callback as soon as
// each one is fully parsed; the metadata envelope (everything except the row
// array contents) can be retrieved once the stream has been consumed.
//
// The parser keeps only a rolling window of the stream in memory: bytes
// belonging to already-delivered rows are discarded after every Feed, so
// memory usage is bounded by the largest unconsumed suffix rather than the
// document size.
//
// # Usage
//
//	p, err := parser.New(func(ev parser.Event) {
//	    switch ev.Kind {
//	    case parser.EventRow:
//	        handleRow(ev.Data) // copy if retained: the slice dies with the callback
//	    case parser.EventComplete:
//	        handleMeta(ev.Data)
//	    case parser.EventError:
//	        handleBadInput(ev.Data)
//	    }
//	})
//	if err != nil {
//	    return err
//	}
//	for chunk := range chunks {
//	    p.Feed(chunk)
//	}
//
// A Parser is single-threaded and non-reentrant: Feed must not be called from
// inside the callback, and a single Parser must not be shared across
// goroutines. Independent Parsers are fully independent.
package parser
