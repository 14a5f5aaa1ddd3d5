// Package ir provides the in memory representation of JSON documents.
//
// # Node Structure
//
// A Node is a tagged union: the Type field says which of the other fields
// carry the value.
//
//   - NullType: no value; distinct from an absent field
//   - BoolType: Bool
//   - NumberType: Number, the lexical text from the source, never converted
//     to a float while parsing
//   - StringType: String, already unescaped
//   - ArrayType: Values, in order
//   - ObjectType: Fields[i] is the key for Values[i]
//
// Object fields are unique.  Constructors resolve duplicates by keeping the
// first position and the last value, which is what parsing `{"a":1,"a":2}`
// yields.  Field order is kept for deterministic output but does not take
// part in equality.
//
// # Creating Nodes
//
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromString("a")})},
//	})
//	lit, err := ir.FromAny(map[string]any{"n": 1.5})
//
// # Immutability
//
// Nodes must not be modified once built.  WithField, WithoutField and
// WithIndex return modified copies that share unchanged children, so a
// tree may be read from many goroutines without locking.
//
// # Related Packages
//
//   - github.com/signadot/jv/parse - Parses text into nodes
//   - github.com/signadot/jv/encode - Encodes nodes to text
//   - github.com/signadot/jv - Path tracking navigation and typed decoding
package ir
