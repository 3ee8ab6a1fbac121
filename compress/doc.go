// Package compress provides streaming compression codecs for document
// transports feeding the row parser.
//
// Unlike block codecs, everything here wraps an io.Reader or io.Writer so
// that a compressed response body can be decompressed chunk by chunk while
// it is still arriving; at no point does the whole document exist in memory.
//
// Supported formats (see the format package for identifiers and detection):
//
//   - None: passthrough
//   - Gzip: klauspost/compress/gzip, broadest transport compatibility
//   - Zstd: klauspost/compress/zstd (a cgo variant backed by valyala/gozstd
//     exists behind the nobuild tag for deployments that prefer it)
//   - S2:   klauspost/compress/s2, fastest on local links
//   - LZ4:  pierrec/lz4 framed streams
//
// Typical use is through the source package, which sniffs the format from
// the first bytes and wraps the transport automatically:
//
//	rd, err := compress.NewReader(format.CompressionZstd, resp.Body)
//	if err != nil {
//	    return err
//	}
//	// feed rd's bytes to a parser.Parser
package compress
