package patch

import (
	"fmt"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch is a decoded JSON Patch (RFC 6902) document.
type Patch struct {
	ops jsonpatch.Patch
}

// Decode reads a JSON Patch from node, which must be an array of
// operations.
func Decode(node *ir.Node) (*Patch, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: json patch must be an array, got %s", ErrPatch, node.Type)
	}
	d, err := encode.Append(nil, node)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

// Len returns the number of operations in p.
func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply returns doc with p applied.  doc is not modified.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json patch with %d ops on %s\n", len(p.ops), encode.MustString(doc))
	}
	d, err := encode.Append(nil, doc)
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// Apply decodes patch and applies it to doc.
func Apply(doc, patch *ir.Node) (*ir.Node, error) {
	p, err := Decode(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}
