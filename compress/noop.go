package compress

import "io"

// nopWriteCloser adapts a plain writer to the WriteCloser shape NewWriter
// promises. Close is a no-op: the passthrough does not own w.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
