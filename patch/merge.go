package patch

import (
	"fmt"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Merge applies the JSON merge patch (RFC 7386) merge to doc: fields of
// merge replace those of doc recursively, null fields are removed.
func Merge(doc, merge *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", encode.MustString(merge), encode.MustString(doc))
	}
	d, err := encode.Append(nil, doc)
	if err != nil {
		return nil, err
	}
	m, err := encode.Append(nil, merge)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// CreateMerge returns the merge patch turning from into to.
func CreateMerge(from, to *ir.Node) (*ir.Node, error) {
	f, err := encode.Append(nil, from)
	if err != nil {
		return nil, err
	}
	t, err := encode.Append(nil, to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}
