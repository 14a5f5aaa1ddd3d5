package libdiff

import (
	"strings"

	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffString gives an edit when the two strings share most of their text
// and a replacement otherwise.
func diffString(from, to *ir.Node, p kpath.KPath) Change {
	multiLine := strings.Contains(from.String, "\n") && strings.Contains(to.String, "\n")
	diffs := diffpatch.New().DiffMain(from.String, to.String, multiLine)
	diffSize := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			diffSize += len(diffs[i].Text)
		}
	}
	if diffSize > min(len(from.String), len(to.String))/2 {
		return Change{Path: p, Op: OpReplace, From: from, To: to}
	}
	return Change{Path: p, Op: OpEdit, From: from, To: to, Edits: diffs}
}
