package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/rowstream/format"
)

// NewReader wraps r with streaming decompression for the given format.
//
// The returned reader yields the decompressed byte stream; it does not
// buffer beyond what the underlying codec needs for one frame window.
// CompressionNone returns r unchanged.
func NewReader(typ format.CompressionType, r io.Reader) (io.Reader, error) {
	switch typ {
	case format.CompressionNone:
		return r, nil
	case format.CompressionGzip:
		return newGzipReader(r)
	case format.CompressionZstd:
		return newZstdReader(r)
	case format.CompressionS2:
		return newS2Reader(r), nil
	case format.CompressionLZ4:
		return newLZ4Reader(r), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", typ)
	}
}

// NewWriter wraps w with streaming compression for the given format.
//
// The caller must Close the returned writer to flush the final frame.
// CompressionNone returns a passthrough whose Close does not close w.
func NewWriter(typ format.CompressionType, w io.Writer) (io.WriteCloser, error) {
	switch typ {
	case format.CompressionNone:
		return nopWriteCloser{w}, nil
	case format.CompressionGzip:
		return newGzipWriter(w), nil
	case format.CompressionZstd:
		return newZstdWriter(w)
	case format.CompressionS2:
		return newS2Writer(w), nil
	case format.CompressionLZ4:
		return newLZ4Writer(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", typ)
	}
}
