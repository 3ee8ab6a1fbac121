package rowstream

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rowstream/compress"
	"github.com/arloliu/rowstream/format"
	"github.com/arloliu/rowstream/parser"
	"github.com/arloliu/rowstream/source"
)

const testDoc = `{"total_rows":2,"rows":[{"id":"a"},{"id":"b"}],"errors":[]}`

func TestNew(t *testing.T) {
	var rows []string
	p, err := New(func(ev parser.Event) {
		if ev.Kind == parser.EventRow {
			rows = append(rows, string(ev.Data))
		}
	})
	require.NoError(t, err)

	p.Feed([]byte(testDoc))
	require.Equal(t, []string{`{"id":"a"}`, `{"id":"b"}`}, rows)
}

func TestParseReader(t *testing.T) {
	var rows, metas int
	err := ParseReader(strings.NewReader(testDoc), func(ev parser.Event) {
		switch ev.Kind {
		case parser.EventRow:
			rows++
		case parser.EventComplete:
			metas++
		}
	}, source.WithChunkSize(7))
	require.NoError(t, err)
	require.Equal(t, 2, rows)
	require.Equal(t, 1, metas)
}

func TestCollect(t *testing.T) {
	rows, meta, err := Collect(strings.NewReader(testDoc))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.Equal(t, `{"id":"a"}`, string(rows[0]))
	require.Equal(t, `{"id":"b"}`, string(rows[1]))

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(meta, &envelope))
	require.Equal(t, float64(2), envelope["total_rows"])
	require.Empty(t, envelope["rows"])
}

func TestCollect_MalformedDocument(t *testing.T) {
	rows, meta, err := Collect(strings.NewReader(`{"rows":[{"a":1},INVALID]}`))
	require.ErrorIs(t, err, ErrMalformedDocument)
	require.Nil(t, meta)

	// Rows completed before the failure point are still returned.
	require.Len(t, rows, 1)
	require.Equal(t, `{"a":1}`, string(rows[0]))
}

func TestCollect_CompressedWithDetection(t *testing.T) {
	var buf bytes.Buffer
	w, err := compress.NewWriter(format.CompressionZstd, &buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(testDoc))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rows, _, err := Collect(&buf, source.WithDetection())
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestRowDigest(t *testing.T) {
	var fromEvent uint64
	p, err := New(func(ev parser.Event) {
		if ev.Kind == parser.EventRow && ev.Row == 0 {
			fromEvent = ev.Digest
		}
	}, parser.WithRowDigests())
	require.NoError(t, err)

	p.Feed([]byte(testDoc))
	require.Equal(t, RowDigest([]byte(`{"id":"a"}`)), fromEvent)
}
