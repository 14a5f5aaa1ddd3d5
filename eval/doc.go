// Package eval evaluates expressions over JSON documents.
//
// Expressions use the expr language (github.com/expr-lang/expr).  The
// fields of an object document are variables, the whole document is
// "doc", and the functions getpath, haspath and getenv are available:
//
//	p, err := eval.Compile(`price * qty > 100 && haspath("discount")`)
//	ok, err := p.Test(doc, nil)
//
// # Related Packages
//
//   - github.com/signadot/jv - views and paths used by getpath
package eval
