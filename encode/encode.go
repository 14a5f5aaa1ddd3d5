package encode

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/signadot/jv/format"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	sourceOrder   bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node followed by a newline.  JSON output is canonical
// unless EncodeSourceOrder is given: object fields sorted by key, numbers
// in their original lexical form, strings escaped minimally.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.JSONFormat:
		d, err = es.appendNode(nil, node)
	case format.YAMLFormat:
		d, err = encodeYAML(node, es)
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
	if err != nil {
		return err
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// Append appends the JSON encoding of node to d, without a trailing
// newline.
func Append(d []byte, node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.appendNode(d, node)
}

// String returns the JSON encoding of node without a trailing newline.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	d, err := Append(nil, node, opts...)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func (es *EncState) color(d []byte, t ir.Type, a ColorAttr, s string) []byte {
	if es.Color == nil {
		return append(d, s...)
	}
	return append(d, es.Color(t, a, s)...)
}

func (es *EncState) nl(d []byte) []byte {
	if es.indent == 0 {
		return d
	}
	d = append(d, '\n')
	for range es.depth * es.indent {
		d = append(d, ' ')
	}
	return d
}

func (es *EncState) appendNode(d []byte, node *ir.Node) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return es.color(d, node.Type, ValueColor, "null"), nil
	case ir.BoolType:
		if node.Bool {
			return es.color(d, node.Type, ValueColor, "true"), nil
		}
		return es.color(d, node.Type, ValueColor, "false"), nil
	case ir.NumberType:
		if node.Number == "" {
			return nil, fmt.Errorf("%w: empty number", ErrEncoding)
		}
		return es.color(d, node.Type, ValueColor, node.Number), nil
	case ir.StringType:
		if es.Color == nil {
			return token.AppendQuote(d, node.String), nil
		}
		return es.color(d, node.Type, ValueColor, token.Quote(node.String)), nil
	case ir.ArrayType:
		return es.appendArray(d, node)
	case ir.ObjectType:
		return es.appendObject(d, node)
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
}

func (es *EncState) appendArray(d []byte, node *ir.Node) ([]byte, error) {
	d = es.color(d, node.Type, SepColor, "[")
	if len(node.Values) == 0 {
		return es.color(d, node.Type, SepColor, "]"), nil
	}
	es.depth++
	var err error
	for i, v := range node.Values {
		if i > 0 {
			d = es.color(d, node.Type, SepColor, ",")
		}
		d = es.nl(d)
		d, err = es.appendNode(d, v)
		if err != nil {
			return nil, err
		}
	}
	es.depth--
	d = es.nl(d)
	return es.color(d, node.Type, SepColor, "]"), nil
}

func (es *EncState) appendObject(d []byte, node *ir.Node) ([]byte, error) {
	d = es.color(d, node.Type, SepColor, "{")
	if len(node.Fields) == 0 {
		return es.color(d, node.Type, SepColor, "}"), nil
	}
	order := make([]int, len(node.Fields))
	for i := range order {
		order[i] = i
	}
	if !es.sourceOrder {
		slices.SortFunc(order, func(a, b int) int {
			return strings.Compare(node.Fields[a], node.Fields[b])
		})
	}
	es.depth++
	var err error
	for j, i := range order {
		if j > 0 {
			d = es.color(d, node.Type, SepColor, ",")
		}
		d = es.nl(d)
		d = es.color(d, node.Type, FieldColor, token.Quote(node.Fields[i]))
		d = es.color(d, node.Type, SepColor, ":")
		if es.indent > 0 {
			d = append(d, ' ')
		}
		d, err = es.appendNode(d, node.Values[i])
		if err != nil {
			return nil, err
		}
	}
	es.depth--
	d = es.nl(d)
	return es.color(d, node.Type, SepColor, "}"), nil
}
