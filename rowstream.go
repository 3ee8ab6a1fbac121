// Package rowstream provides incremental extraction of row elements from
// large JSON documents that arrive as network chunks.
//
// The expected document shape is a root object with one key (default "rows")
// holding an array of row values, preceded and followed by arbitrary
// metadata fields:
//
//	{"total_rows": 2, "rows": [{"id": "a"}, {"id": "b"}], "errors": []}
//
// Rows are delivered through a callback the moment each one is fully parsed,
// without ever buffering the whole document; afterwards the metadata
// envelope (the document with an empty rows array) is available as a
// standalone, valid JSON fragment.
//
// # Basic Usage
//
// Feeding chunks by hand:
//
//	import "github.com/arloliu/rowstream"
//
//	p, err := rowstream.New(func(ev parser.Event) {
//	    switch ev.Kind {
//	    case parser.EventRow:
//	        fmt.Printf("row %d: %s\n", ev.Row, ev.Data)
//	    case parser.EventComplete:
//	        fmt.Printf("meta: %s\n", ev.Data)
//	    case parser.EventError:
//	        fmt.Printf("bad input near: %s\n", ev.Data)
//	    }
//	})
//	for chunk := range transport {
//	    p.Feed(chunk)
//	}
//
// Draining an io.Reader (with transparent decompression):
//
//	err := rowstream.ParseReader(resp.Body, callback,
//	    source.WithDetection(),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the parser and
// source packages, simplifying the most common use cases. For fine-grained
// control (rows key, reporting depth, digests, chunk sizes, compression),
// use those packages directly.
package rowstream

import (
	"errors"
	"io"

	"github.com/arloliu/rowstream/internal/hash"
	"github.com/arloliu/rowstream/parser"
	"github.com/arloliu/rowstream/source"
)

// ErrMalformedDocument is returned by Collect when the document fails to
// parse. Rows delivered before the failure point are still returned.
var ErrMalformedDocument = errors.New("malformed document")

// New creates a row parser delivering events to cb.
//
// This is a thin wrapper over parser.New; see that package for the full
// event and lifecycle contract.
//
// Available options:
//   - parser.WithRowsKey("results")
//   - parser.WithMaxDepth(6)
//   - parser.WithRowDigests()
//
// Example:
//
//	p, err := rowstream.New(cb, parser.WithRowsKey("results"))
func New(cb parser.Callback, opts ...parser.Option) (*parser.Parser, error) {
	return parser.New(cb, opts...)
}

// ParseReader drains r into a fresh parser, delivering events to cb.
//
// The reader is consumed to EOF in chunks; source options control chunk size
// and transport decompression. Transport errors are returned; parse problems
// surface through cb's events.
//
// Example:
//
//	err := rowstream.ParseReader(body, cb,
//	    source.WithChunkSize(32*1024),
//	    source.WithDetection(),
//	)
func ParseReader(r io.Reader, cb parser.Callback, opts ...source.Option) error {
	p, err := parser.New(cb)
	if err != nil {
		return err
	}

	src, err := source.NewReader(r, opts...)
	if err != nil {
		return err
	}

	return src.DrainTo(p)
}

// Collect drains r and returns all rows (copied, so they outlive the parse)
// plus the combined metadata. Convenience for small documents and tests;
// streaming callers should use ParseReader and consume rows in place.
//
// A malformed document returns ErrMalformedDocument along with the rows
// collected before the failure point.
func Collect(r io.Reader, opts ...source.Option) (rows [][]byte, meta []byte, err error) {
	p, err := parser.New(func(ev parser.Event) {
		if ev.Kind == parser.EventRow {
			row := make([]byte, len(ev.Data))
			copy(row, ev.Data)
			rows = append(rows, row)
		}
	})
	if err != nil {
		return nil, nil, err
	}

	src, err := source.NewReader(r, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := src.DrainTo(p); err != nil {
		return nil, nil, err
	}
	if p.Failed() {
		return rows, nil, ErrMalformedDocument
	}

	meta = append(meta, p.Meta()...)

	return rows, meta, nil
}

// RowDigest computes the xxHash64 digest of a row payload, matching the
// Digest field produced by parser.WithRowDigests.
func RowDigest(data []byte) uint64 {
	return hash.Digest(data)
}
