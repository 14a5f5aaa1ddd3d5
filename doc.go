// Package jv navigates parsed JSON and decodes it into Go values, keeping
// track of where in the document each value came from.
//
// # Views
//
// A View pairs a node, or the error met on the way to it, with its path
// from the root:
//
//	root, err := jv.ParseString(`{"a":{"b":[1,"x"]}}`)
//	n, err := jv.Decode[int](root.Key("a").Key("b").Index(1))
//	// err: expected Int value but found String instead at "a.b[1]"
//
// Navigation never fails immediately.  A missing key gives a view holding a
// *KeyNotFoundError, and every view derived from it holds the same error,
// so the error of a whole chain is checked once.
//
// # Decoding
//
// Decode[T] converts a view to T.  Strings, bools, sized integers, floats,
// Number, *big.Int, any, View and *ir.Node are built in, and slices, string
// keyed maps and pointers of these are registered.  Types from outside the
// package are added with Register, or implement Decodable.
//
// Coercions between JSON types, such as reading "123" as an integer, are
// governed by a Config.  The process default may be swapped at any time
// with SetDefaultConfig; a single view can use its own with WithConfig.
//
// # Related Packages
//
//   - github.com/signadot/jv/parse - parse text to nodes
//   - github.com/signadot/jv/ir - node representation
//   - github.com/signadot/jv/kpath - paths
//   - github.com/signadot/jv/encode - canonical encoding
package jv
