//go:build !nobuild

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Pure-Go Zstandard streaming via klauspost/compress. The decoder runs
// single-threaded: the source pump reads sequentially anyway, and one worker
// keeps memory predictable.

func newZstdReader(r io.Reader) (io.Reader, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		return nil, err
	}

	return dec.IOReadCloser(), nil
}

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
}
