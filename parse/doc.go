// Package parse parses JSON text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    var pe *parse.Error
//	    if errors.As(err, &pe) {
//	        // pe.Offset, pe.Reason
//	    }
//	    return err
//	}
//
// Numbers keep their source text, so `945.06` encodes back as `945.06`.
//
// The parser is lenient in two documented ways: a comma may precede a
// closing bracket and text after the root value is ignored.  StrictCommas
// and StrictTrailing turn these into errors.  Nesting is limited to
// DefaultMaxDepth unless MaxDepth says otherwise.
//
// # Related Packages
//
//   - github.com/signadot/jv/ir - node representation
//   - github.com/signadot/jv/encode - encode nodes to text
//   - github.com/signadot/jv/token - tokenization
package parse
