package eval

import (
	"encoding/json"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

func MarshalJSON(node *ir.Node) ([]byte, error) {
	return encode.Append(nil, node)
}

// FromJSONAny converts the result of an expression to a node.  Values
// ir.FromAny does not know are round tripped through encoding/json.
func FromJSONAny(v any) (*ir.Node, error) {
	node, err := ir.FromAny(v)
	if err == nil {
		return node, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

func ToJSONAny(node *ir.Node) any {
	return ir.ToAny(node)
}
