package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_MustWrite(t *testing.T) {
	b := New(8)
	b.MustWrite([]byte("hello"))
	require.Equal(t, 5, b.Len())
	require.Equal(t, "hello", string(b.Bytes()))

	b.MustWrite([]byte(" world"))
	require.Equal(t, "hello world", string(b.Bytes()))
}

func TestBuffer_GrowDoubles(t *testing.T) {
	b := New(4)
	data := []byte(strings.Repeat("x", 100))
	b.MustWrite(data)
	require.Equal(t, 100, b.Len())
	require.GreaterOrEqual(t, b.Cap(), 100)

	// Appends never partially write.
	b.MustWrite(data)
	require.Equal(t, 200, b.Len())
	require.Equal(t, strings.Repeat("x", 200), string(b.Bytes()))
}

func TestBuffer_ZeroValue(t *testing.T) {
	var b Buffer
	b.MustWrite([]byte("abc"))
	require.Equal(t, "abc", string(b.Bytes()))
}

func TestBuffer_ResetRetainsCapacity(t *testing.T) {
	b := New(4)
	b.MustWrite([]byte(strings.Repeat("y", 64)))
	capBefore := b.Cap()

	b.Reset()
	require.Zero(t, b.Len())
	require.Equal(t, capBefore, b.Cap())
}

func TestBuffer_ReleaseDropsAllocation(t *testing.T) {
	b := New(4)
	b.MustWrite([]byte("data"))

	b.Release()
	require.Zero(t, b.Len())
	require.Zero(t, b.Cap())

	// Still usable afterwards.
	b.MustWrite([]byte("again"))
	require.Equal(t, "again", string(b.Bytes()))
}

func TestBuffer_Truncate(t *testing.T) {
	b := New(8)
	b.MustWrite([]byte("abcdef"))
	b.Truncate(3)
	require.Equal(t, "abc", string(b.Bytes()))

	require.Panics(t, func() { b.Truncate(-1) })
	require.Panics(t, func() { b.Truncate(4) })
}

func TestBuffer_WriteByte(t *testing.T) {
	b := New(1)
	for _, c := range []byte("xyz") {
		require.NoError(t, b.WriteByte(c))
	}
	require.Equal(t, "xyz", string(b.Bytes()))
}
