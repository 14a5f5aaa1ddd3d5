package eval

import (
	"fmt"
	"maps"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds variables visible to expressions in addition to those derived
// from the document.
type Env map[string]any

// Program is a compiled expression.  It may be run on any number of
// documents, concurrently.
type Program struct {
	code string
	prg  *vm.Program
}

func Compile(code string) (*Program, error) {
	prg, err := expr.Compile(code, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", code, err)
	}
	return &Program{code: code, prg: prg}, nil
}

func (p *Program) String() string {
	return p.code
}

// Run evaluates p with the fields of doc, if doc is an object, and doc
// itself as "doc" in scope, then env.  The result is converted back to a
// node.
func (p *Program) Run(doc *ir.Node, env Env) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", p.code, encode.MustString(doc))
	}
	res, err := expr.Run(p.prg, docEnv(doc, env))
	if err != nil {
		return nil, err
	}
	return FromJSONAny(res)
}

// Eval compiles and runs code once.
func Eval(doc *ir.Node, code string, env Env) (*ir.Node, error) {
	p, err := Compile(code)
	if err != nil {
		return nil, err
	}
	return p.Run(doc, env)
}

// Test runs p on doc and reports whether the result is true.
func (p *Program) Test(doc *ir.Node, env Env) (bool, error) {
	res, err := p.Run(doc, env)
	if err != nil {
		return false, err
	}
	if res.Type != ir.BoolType {
		return false, fmt.Errorf("%q gave %s, not a bool", p.code, res.Type)
	}
	return res.Bool, nil
}

func docEnv(doc *ir.Node, env Env) map[string]any {
	res := make(map[string]any, doc.Len()+len(env)+4)
	if doc.Type == ir.ObjectType {
		for i, f := range doc.Fields {
			res[f] = ToJSONAny(doc.Values[i])
		}
	}
	res["doc"] = ToJSONAny(doc)
	maps.Copy(res, docFuncs(doc))
	maps.Copy(res, env)
	return res
}
