package token

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// record flattens an event into a comparable string. Offsets are absolute,
// so the flattened trace must be identical no matter how the input is
// chunked.
func record(ev Event) string {
	switch ev.Action {
	case ActionPush:
		return fmt.Sprintf("push %s d%d @%d", ev.Kind, ev.Depth, ev.Pos)
	case ActionPop:
		return fmt.Sprintf("pop %s d%d [%d,%d)", ev.Kind, ev.Depth, ev.Pos, ev.End)
	case ActionKey:
		return fmt.Sprintf("key d%d [%d,%d)", ev.Depth, ev.Pos, ev.End)
	case ActionScalar:
		return fmt.Sprintf("scalar %s d%d [%d,%d)", ev.Kind, ev.Depth, ev.Pos, ev.End)
	case ActionError:
		return fmt.Sprintf("error @%d", ev.Pos)
	default:
		return "unknown"
	}
}

func lexAll(maxDepth int, doc string) []string {
	var trace []string
	lx := NewLexer(maxDepth, func(ev Event) {
		trace = append(trace, record(ev))
	})
	lx.Feed([]byte(doc))

	return trace
}

func TestLexer_SimpleObject(t *testing.T) {
	// 0123456789...
	doc := `{"a":1}`
	trace := lexAll(4, doc)

	require.Equal(t, []string{
		"push Object d1 @0",
		"key d1 [2,3)",
		"scalar Number d2 [5,6)",
		"pop Object d1 [0,7)",
	}, trace)
}

func TestLexer_NestedContainers(t *testing.T) {
	doc := `{"a":[{"b":true}],"c":null}`
	trace := lexAll(4, doc)

	require.Equal(t, []string{
		"push Object d1 @0",
		"key d1 [2,3)",
		"push Array d2 @5",
		"push Object d3 @6",
		"key d3 [8,9)",
		"scalar True d4 [11,15)",
		"pop Object d3 [6,16)",
		"pop Array d2 [5,17)",
		"key d1 [19,20)",
		"scalar Null d2 [22,26)",
		"pop Object d1 [0,27)",
	}, trace)
}

func TestLexer_ChunkingInvariance(t *testing.T) {
	doc := `{"k":"va\"l","n":-1.5e+10,"a":[true,false,null],"o":{"u":"é"}}`
	want := lexAll(4, doc)
	require.NotEmpty(t, want)

	// Every two-chunk split must produce the identical event trace, even
	// when it lands inside a string escape, a number, or a literal.
	for i := 1; i < len(doc); i++ {
		var trace []string
		lx := NewLexer(4, func(ev Event) {
			trace = append(trace, record(ev))
		})
		lx.Feed([]byte(doc[:i]))
		lx.Feed([]byte(doc[i:]))
		require.Equal(t, want, trace, "split at %d", i)
	}

	// One byte at a time.
	var trace []string
	lx := NewLexer(4, func(ev Event) {
		trace = append(trace, record(ev))
	})
	for i := 0; i < len(doc); i++ {
		lx.Feed([]byte{doc[i]})
	}
	require.Equal(t, want, trace)
}

func TestLexer_MaxDepthSuppression(t *testing.T) {
	doc := `{"a":{"b":{"c":1}}}`

	// Depth 2 reporting: the d3 object and the scalar inside it disappear,
	// but the structure still parses and the d1/d2 pops carry correct ends.
	trace := lexAll(2, doc)
	require.Equal(t, []string{
		"push Object d1 @0",
		"key d1 [2,3)",
		"push Object d2 @5",
		"key d2 [7,8)",
		fmt.Sprintf("pop Object d2 [5,%d)", len(doc)-1),
		fmt.Sprintf("pop Object d1 [0,%d)", len(doc)),
	}, trace)
}

func TestLexer_StringEscapes(t *testing.T) {
	doc := `["a\\", "é", "tab\t"]`
	trace := lexAll(4, doc)
	require.Len(t, trace, 5) // push, 3 scalars, pop
	require.Equal(t, "push Array d1 @0", trace[0])
	require.Equal(t, fmt.Sprintf("pop Array d1 [0,%d)", len(doc)), trace[4])
}

func TestLexer_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"bad value start", `{"a":INVALID}`},
		{"bad literal", `[trux]`},
		{"missing colon", `{"a" 1}`},
		{"missing comma", `[1 2]`},
		{"bad escape", `["\x"]`},
		{"bad unicode escape", `["\u00gz"]`},
		{"control char in string", "[\"a\x01b\"]"},
		{"comma before close", `{"a":1,}`},
		{"trailing garbage", `{} x`},
		{"lone closer", `{"a":]`},
	}

	for _, tc := range cases {
		var errs int
		lx := NewLexer(4, func(ev Event) {
			if ev.Action == ActionError {
				errs++
				require.Error(t, ev.Err, tc.name)
			}
		})
		lx.Feed([]byte(tc.doc))
		require.Equal(t, 1, errs, tc.name)
		require.True(t, lx.Dead(), tc.name)
	}
}

func TestLexer_DeadSwallowsInput(t *testing.T) {
	var events int
	lx := NewLexer(4, func(Event) { events++ })
	lx.Feed([]byte(`garbage`))
	require.True(t, lx.Dead())
	after := events

	lx.Feed([]byte(`{"a":1}`))
	require.Equal(t, after, events)

	// Position still advances so caller offset bookkeeping stays aligned.
	require.Equal(t, int64(len(`garbage`)+len(`{"a":1}`)), lx.Pos())
}

func TestLexer_Reset(t *testing.T) {
	var trace []string
	lx := NewLexer(4, func(ev Event) { trace = append(trace, record(ev)) })

	lx.Feed([]byte(`bogus`))
	require.True(t, lx.Dead())

	lx.Reset()
	trace = trace[:0]
	require.False(t, lx.Dead())
	require.Zero(t, lx.Pos())

	lx.Feed([]byte(`{"a":1}`))
	require.Equal(t, []string{
		"push Object d1 @0",
		"key d1 [2,3)",
		"scalar Number d2 [5,6)",
		"pop Object d1 [0,7)",
	}, trace)
}

func TestLexer_EmptyContainers(t *testing.T) {
	require.Equal(t, []string{
		"push Object d1 @0",
		"pop Object d1 [0,2)",
	}, lexAll(4, `{}`))

	require.Equal(t, []string{
		"push Array d1 @0",
		"pop Array d1 [0,2)",
	}, lexAll(4, `[]`))
}

func TestLexer_RootScalar(t *testing.T) {
	require.Equal(t, []string{`scalar String d1 [0,7)`}, lexAll(4, `"hello"`))
	require.Equal(t, []string{`scalar Null d1 [0,4)`}, lexAll(4, `null`))
}

func TestLexer_NumberEndsAtDelimiter(t *testing.T) {
	trace := lexAll(4, `[12, 3.5]`)
	require.Equal(t, []string{
		"push Array d1 @0",
		"scalar Number d2 [1,3)",
		"scalar Number d2 [5,8)",
		"pop Array d1 [0,9)",
	}, trace)
}

func TestLexer_WhitespaceEverywhere(t *testing.T) {
	doc := " \t{\n\"a\" : [ 1 , 2 ] \r}\n"
	var errs int
	var pops int
	lx := NewLexer(4, func(ev Event) {
		switch ev.Action {
		case ActionError:
			errs++
		case ActionPop:
			pops++
		}
	})
	lx.Feed([]byte(doc))
	require.Zero(t, errs)
	require.Equal(t, 2, pops)
}
