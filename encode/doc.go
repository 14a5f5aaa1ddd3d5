// Package encode encodes ir nodes to text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	s, err := encode.String(node)          // {"age":30,"name":"alice"}
//	err = encode.Encode(node, os.Stdout, encode.EncodePretty())
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// JSON output is canonical by default: fields sorted by key, numbers written
// with the text they were parsed from and strings escaping only quotes,
// backslashes and control characters.  It is meant for diagnostics and
// comparison, not for reproducing the input byte for byte.
//
// # Related Packages
//
//   - github.com/signadot/jv/ir - node representation
//   - github.com/signadot/jv/parse - parse text to nodes
package encode
