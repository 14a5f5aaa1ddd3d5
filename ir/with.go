package ir

import "slices"

// WithField returns a copy of the object y with field set to v.  An
// existing field keeps its position; a new one is appended.
func (y *Node) WithField(field string, v *Node) *Node {
	if y.Type != ObjectType {
		panic("ir: WithField on " + y.Type.String())
	}
	fields := slices.Clone(y.Fields)
	values := slices.Clone(y.Values)
	if i := y.fieldIndex(field); i >= 0 {
		values[i] = v
	} else {
		fields = append(fields, field)
		values = append(values, v)
	}
	return newObject(slices.Clip(fields), slices.Clip(values))
}

// WithoutField returns a copy of the object y without field.
func (y *Node) WithoutField(field string) *Node {
	if y.Type != ObjectType {
		panic("ir: WithoutField on " + y.Type.String())
	}
	i := y.fieldIndex(field)
	if i < 0 {
		return y
	}
	fields := slices.Delete(slices.Clone(y.Fields), i, i+1)
	values := slices.Delete(slices.Clone(y.Values), i, i+1)
	return newObject(fields, values)
}

// WithIndex returns a copy of the array y with element i set to v.  i may
// equal the length of y, in which case v is appended.
func (y *Node) WithIndex(i int, v *Node) *Node {
	if y.Type != ArrayType {
		panic("ir: WithIndex on " + y.Type.String())
	}
	if i < 0 || i > len(y.Values) {
		panic("ir: WithIndex out of range")
	}
	values := make([]*Node, len(y.Values), len(y.Values)+1)
	copy(values, y.Values)
	if i == len(values) {
		values = append(values, v)
	} else {
		values[i] = v
	}
	return &Node{Type: ArrayType, Values: values}
}
