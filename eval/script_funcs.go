package eval

import (
	"os"

	"github.com/signadot/jv"
	"github.com/signadot/jv/ir"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// docFuncs are the functions which need the document.
func docFuncs(doc *ir.Node) map[string]any {
	root := jv.New(doc)
	return map[string]any{
		"getpath": func(path string) (any, error) {
			node, err := root.Get(path).Node()
			if err != nil {
				return nil, err
			}
			return ToJSONAny(node), nil
		},
		"haspath": func(path string) bool {
			return root.Get(path).Exists()
		},
	}
}
