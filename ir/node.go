package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

// objects with more fields than this get a field index
const indexThreshold = 8

// Node is one JSON value.  Nodes are never modified after construction;
// the With* methods return new nodes sharing unchanged children.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Bool   bool
	Number string

	index map[string]int
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromNumber returns a number node holding the lexical text v verbatim.
// The caller is responsible for v being a valid JSON number.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromInt(v int64) *Node {
	return FromNumber(strconv.FormatInt(v, 10))
}

func FromUint(v uint64) *Node {
	return FromNumber(strconv.FormatUint(v, 10))
}

// FromFloat returns the shortest text representing f.  NaN and infinities
// have no JSON form and become null.
func FromFloat(f float64) *Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return FromNumber(strconv.FormatFloat(f, 'g', -1, 64))
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: slices.Clone(ySlice),
	}
}

// FromMap returns an object with the keys of yMap in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	values := make([]*Node, len(keys))
	for i, key := range keys {
		values[i] = yMap[key]
	}
	return newObject(keys, values)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals returns an object with the keys in the given order.  When a
// key repeats, the last value wins and keeps the position of the first.
func FromKeyVals(kvs []KeyVal) *Node {
	fields := make([]string, len(kvs))
	values := make([]*Node, len(kvs))
	for i := range kvs {
		fields[i] = kvs[i].Key
		values[i] = kvs[i].Val
	}
	return NewObject(fields, values)
}

// NewObject returns an object node taking ownership of fields and values,
// which must have the same length.  Duplicate fields are resolved as in
// FromKeyVals.
func NewObject(fields []string, values []*Node) *Node {
	if len(fields) != len(values) {
		panic("ir: fields and values differ in length")
	}
	if len(fields) <= indexThreshold {
		fields, values = dedupSmall(fields, values)
		return newObject(fields, values)
	}
	index := make(map[string]int, len(fields))
	j := 0
	for i, f := range fields {
		if k, ok := index[f]; ok {
			values[k] = values[i]
			continue
		}
		index[f] = j
		fields[j] = f
		values[j] = values[i]
		j++
	}
	return &Node{
		Type:   ObjectType,
		Fields: fields[:j:j],
		Values: values[:j:j],
		index:  index,
	}
}

func dedupSmall(fields []string, values []*Node) ([]string, []*Node) {
	j := 0
outer:
	for i, f := range fields {
		for k := 0; k < j; k++ {
			if fields[k] == f {
				values[k] = values[i]
				continue outer
			}
		}
		fields[j] = f
		values[j] = values[i]
		j++
	}
	return fields[:j:j], values[:j:j]
}

// newObject builds an object from fields known to be distinct.
func newObject(fields []string, values []*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: fields,
		Values: values,
	}
	if len(fields) > indexThreshold {
		res.index = make(map[string]int, len(fields))
		for i, f := range fields {
			res.index[f] = i
		}
	}
	return res
}

// Len returns the number of elements of an array or fields of an object,
// and 0 otherwise.
func (y *Node) Len() int {
	return len(y.Values)
}

// Get returns the value of field in an object node.
func (y *Node) Get(field string) (*Node, bool) {
	if y.Type != ObjectType {
		return nil, false
	}
	i := y.fieldIndex(field)
	if i < 0 {
		return nil, false
	}
	return y.Values[i], true
}

func (y *Node) fieldIndex(field string) int {
	if y.index != nil {
		i, ok := y.index[field]
		if !ok {
			return -1
		}
		return i
	}
	for i, f := range y.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// Index returns element i of an array node.
func (y *Node) Index(i int) (*Node, bool) {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil, false
	}
	return y.Values[i], true
}
