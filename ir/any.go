package ir

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

var ErrUnsupported = errors.New("unsupported go value")

// ToAny converts node to plain Go values: map[string]any, []any, string,
// bool, nil, and int64 or float64 for numbers.  Numbers which fit neither
// are returned as their lexical text.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i]] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values to a node.  It accepts the values
// produced by ToAny and encoding/json, all sized integer and float types,
// nodes and slices or string keyed maps of any of these.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(x.String()), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromUint(uint64(x)), nil
	case uint8:
		return FromUint(uint64(x)), nil
	case uint16:
		return FromUint(uint64(x)), nil
	case uint32:
		return FromUint(uint64(x)), nil
	case uint64:
		return FromUint(x), nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return Null(), nil
		}
		return FromNumber(strconv.FormatFloat(float64(x), 'g', -1, 32)), nil
	case float64:
		return FromFloat(x), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case interface{ Node() *Node }:
		return x.Node(), nil
	case []any:
		res := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = n
		}
		return &Node{Type: ArrayType, Values: res}, nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		values := make([]*Node, len(keys))
		for i, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			values[i] = n
		}
		return newObject(keys, values), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}
