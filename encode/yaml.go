package encode

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/jv/ir"

	"github.com/goccy/go-yaml"
)

// yamlNumber keeps the lexical text of a number in YAML output.
type yamlNumber string

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

func encodeYAML(node *ir.Node, es *EncState) ([]byte, error) {
	v, err := yamlValue(node, es)
	if err != nil {
		return nil, err
	}
	yOpts := []yaml.EncodeOption{}
	if es.indent > 0 {
		yOpts = append(yOpts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return d, nil
}

func yamlValue(node *ir.Node, es *EncState) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		return yamlNumber(node.Number), nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := yamlValue(v, es)
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			yv, err := yamlValue(node.Values[i], es)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f, Value: yv}
		}
		if !es.sourceOrder {
			slices.SortFunc(res, func(a, b yaml.MapItem) int {
				return strings.Compare(a.Key.(string), b.Key.(string))
			})
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
}
