// Package source pumps a document from an io.Reader into a parser.Parser in
// fixed-size chunks, optionally decompressing the transport stream on the
// way through.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/rowstream/compress"
	"github.com/arloliu/rowstream/format"
	"github.com/arloliu/rowstream/internal/options"
	"github.com/arloliu/rowstream/parser"
)

// DefaultChunkSize is the read size used when WithChunkSize is not given.
const DefaultChunkSize = 8 * 1024

// Option configures a Reader at creation time.
type Option = options.Option[*Reader]

// WithChunkSize sets the maximum number of bytes fed to the parser per read.
func WithChunkSize(n int) Option {
	return options.New(func(s *Reader) error {
		if n <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", n)
		}
		s.chunkSize = n

		return nil
	})
}

// WithCompression declares the transport compression explicitly.
// Mutually exclusive with WithDetection.
func WithCompression(typ format.CompressionType) Option {
	return options.NoError(func(s *Reader) {
		s.compression = typ
		s.detect = false
	})
}

// WithDetection sniffs the compression format from the first bytes of the
// stream (gzip, zstd, s2, lz4 frame magics; anything else is treated as an
// uncompressed document).
func WithDetection() Option {
	return options.NoError(func(s *Reader) {
		s.detect = true
	})
}

// Reader drains an io.Reader into a Parser.
type Reader struct {
	r           io.Reader
	chunkSize   int
	compression format.CompressionType
	detect      bool
	buf         []byte
}

// NewReader creates a source reading the document from r.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	if r == nil {
		return nil, errors.New("reader cannot be nil")
	}

	s := &Reader{
		r:           r,
		chunkSize:   DefaultChunkSize,
		compression: format.CompressionNone,
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}
	s.buf = make([]byte, s.chunkSize)

	return s, nil
}

// DrainTo reads the document to EOF, feeding each chunk to p.
//
// Parse problems surface through p's callback events, not through the
// returned error: DrainTo only fails on transport trouble (read errors, or a
// broken compressed stream). Retrying is the caller's business.
func (s *Reader) DrainTo(p *parser.Parser) error {
	r := s.r
	typ := s.compression

	if s.detect {
		var prefix []byte
		var err error
		prefix, typ, err = s.sniff()
		if err != nil {
			return err
		}
		r = io.MultiReader(bytes.NewReader(prefix), s.r)
	}

	r, err := compress.NewReader(typ, r)
	if err != nil {
		return fmt.Errorf("open %s stream: %w", typ, err)
	}

	for {
		n, err := r.Read(s.buf)
		if n > 0 {
			p.Feed(s.buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read document stream: %w", err)
		}
	}
}

// sniff reads up to the longest frame magic and classifies the stream. The
// consumed prefix is returned so DrainTo can stitch it back in front.
func (s *Reader) sniff() ([]byte, format.CompressionType, error) {
	prefix := make([]byte, 10) // longest magic: the s2/snappy frame header
	n, err := io.ReadFull(s.r, prefix)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, format.CompressionNone, fmt.Errorf("sniff document stream: %w", err)
	}
	prefix = prefix[:n]

	return prefix, format.Detect(prefix), nil
}
