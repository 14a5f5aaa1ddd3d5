package parse

import (
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/token"
)

// DefaultMaxDepth bounds the nesting of arrays and objects.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth       int
	strictCommas   bool
	strictTrailing bool
	positions      map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth sets the maximum nesting of arrays and objects.  n <= 0 means
// DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// StrictCommas rejects a comma directly before a closing '}' or ']'.
func StrictCommas() ParseOption {
	return func(o *parseOpts) { o.strictCommas = true }
}

// StrictTrailing rejects anything but whitespace after the root value.
func StrictTrailing() ParseOption {
	return func(o *parseOpts) { o.strictTrailing = true }
}

// ParsePositions records the source position of every parsed node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
