package parser

import (
	"errors"
	"fmt"

	"github.com/arloliu/rowstream/internal/options"
)

// DefaultRowsKey is the root-object key under which the row array is looked
// up when WithRowsKey is not given.
const DefaultRowsKey = "rows"

// minMaxDepth is the shallowest reporting depth that still lets the parser
// observe row elements (root=1, rows array=2, element=3).
const minMaxDepth = 3

// Option configures a Parser at creation time. Options survive Reset.
type Option = options.Option[*Parser]

// WithRowsKey sets the root-object key whose array value holds the rows.
//
// The key is compared against the document's raw key bytes, so it must be
// given in its unescaped JSON spelling.
func WithRowsKey(key string) Option {
	return options.New(func(p *Parser) error {
		if key == "" {
			return errors.New("rows key cannot be empty")
		}
		p.cfg.rowsKey = key

		return nil
	})
}

// WithMaxDepth sets the deepest container nesting level the underlying lexer
// reports. Deeper structure inside row elements is still parsed, just not
// reported. The minimum is 3 (root object, rows array, row element).
func WithMaxDepth(depth int) Option {
	return options.New(func(p *Parser) error {
		if depth < minMaxDepth {
			return fmt.Errorf("max depth %d is below minimum %d", depth, minMaxDepth)
		}
		p.cfg.maxDepth = depth

		return nil
	})
}

// WithRowDigests enables xxHash64 digests on row events, for cheap
// downstream deduplication or integrity checks.
func WithRowDigests() Option {
	return options.NoError(func(p *Parser) {
		p.cfg.digests = true
	})
}

type config struct {
	rowsKey  string
	maxDepth int
	digests  bool
}
