package ir

// Equal reports whether a and b are structurally equal.  Objects are equal
// when they have the same set of fields with equal values, regardless of
// field order.  Numbers are compared by their lexical text.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return a.Number == b.Number
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			bv, ok := b.Get(f)
			if !ok || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}
