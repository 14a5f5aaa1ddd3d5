package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"
)

// Logf writes to stderr, rendering nodes as compact JSON and paths in
// their string form.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			s, err := encode.String(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = s
		case kpath.KPath:
			args[i] = x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
