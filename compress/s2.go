package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

func newS2Reader(r io.Reader) io.Reader {
	return s2.NewReader(r)
}

func newS2Writer(w io.Writer) io.WriteCloser {
	return s2.NewWriter(w)
}
