// Package buffer provides a growable byte buffer used by the parser for its
// scratch window, metadata accumulation, and key capture.
package buffer

// Buffer is an owned, contiguous, append-only byte region.
//
// The zero value is ready to use. Growth doubles capacity until the pending
// write fits, copying existing content; an append never partially writes.
// There is no front-removal operation: callers that need to discard a prefix
// move the tail themselves and truncate.
type Buffer struct {
	// B is the underlying byte slice.
	B []byte
}

// New creates a Buffer with the specified initial capacity.
func New(capacity int) *Buffer {
	return &Buffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the length of the buffer.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Cap returns the capacity of the buffer.
func (b *Buffer) Cap() int {
	return cap(b.B)
}

// Reset resets the buffer to be empty, retaining the allocation for reuse.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Release resets the buffer and drops its allocation.
func (b *Buffer) Release() {
	b.B = nil
}

// Truncate shortens the buffer to n bytes.
// Panics if n is negative or greater than the current length.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.B) {
		panic("buffer: Truncate out of range")
	}
	b.B = b.B[:n]
}

// MustWrite appends data, growing the buffer as needed.
// Allocation failure is fatal; there is no partial write.
func (b *Buffer) MustWrite(data []byte) {
	b.Grow(len(data))
	b.B = append(b.B, data...)
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.Grow(1)
	b.B = append(b.B, c)

	return nil
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Capacity doubles until the requirement fits, which keeps the
// amortized cost of long append sequences linear.
func (b *Buffer) Grow(requiredBytes int) {
	need := len(b.B) + requiredBytes
	if need <= cap(b.B) {
		return
	}

	newCap := cap(b.B)
	if newCap == 0 {
		newCap = 64
	}
	for newCap < need {
		newCap *= 2
	}

	newBuf := make([]byte, len(b.B), newCap)
	copy(newBuf, b.B)
	b.B = newBuf
}
