package encode

import "github.com/signadot/jv/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the number of spaces per nesting level.  0, the
// default, produces compact output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

// EncodePretty is EncodeIndent(2).
func EncodePretty() EncodeOption {
	return EncodeIndent(2)
}

// EncodeSourceOrder writes object fields in the order they were parsed or
// constructed instead of sorted.
func EncodeSourceOrder(v bool) EncodeOption {
	return func(es *EncState) { es.sourceOrder = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
