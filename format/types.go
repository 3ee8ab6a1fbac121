// Package format defines the compression identifiers shared by the compress
// and source packages, plus magic-byte detection for transparent handling of
// compressed document streams.
package format

import "bytes"

// CompressionType identifies the compression applied to a document stream.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed stream.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents a gzip stream.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents a Zstandard stream.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents an S2/Snappy framed stream.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents an LZ4 framed stream.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Frame magics for the supported formats.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicS2   = []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect sniffs the compression format from the first bytes of a stream.
//
// It recognizes the gzip, Zstandard, S2 (snappy framing), and LZ4 frame
// magics. Anything else, including a short prefix, is reported as
// CompressionNone; JSON documents cannot begin with any of these magics, so
// the fallback is safe for this module's inputs.
func Detect(prefix []byte) CompressionType {
	switch {
	case bytes.HasPrefix(prefix, magicGzip):
		return CompressionGzip
	case bytes.HasPrefix(prefix, magicZstd):
		return CompressionZstd
	case bytes.HasPrefix(prefix, magicS2):
		return CompressionS2
	case bytes.HasPrefix(prefix, magicLZ4):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
