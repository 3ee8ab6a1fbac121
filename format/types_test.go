package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Gzip", CompressionGzip.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xff).String())
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name   string
		prefix []byte
		want   CompressionType
	}{
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}, CompressionGzip},
		{"zstd", []byte{0x28, 0xb5, 0x2f, 0xfd, 0x04}, CompressionZstd},
		{"s2", []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}, CompressionS2},
		{"lz4", []byte{0x04, 0x22, 0x4d, 0x18, 0x64}, CompressionLZ4},
		{"json document", []byte(`{"rows":[]}`), CompressionNone},
		{"empty", nil, CompressionNone},
		{"short", []byte{0x1f}, CompressionNone},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Detect(tc.prefix), tc.name)
	}
}
