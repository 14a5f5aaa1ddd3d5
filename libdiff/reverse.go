package libdiff

import (
	"slices"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Reverse returns the changes undoing changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i := range changes {
		c := changes[len(changes)-1-i]
		r := Change{Path: c.Path, Op: c.Op, From: c.To, To: c.From}
		switch c.Op {
		case OpInsert:
			r.Op = OpDelete
		case OpDelete:
			r.Op = OpInsert
		case OpEdit:
			r.Edits = reverseEdits(c.Edits)
		}
		res[i] = r
	}
	return res
}

func reverseEdits(diffs []diffpatch.Diff) []diffpatch.Diff {
	res := slices.Clone(diffs)
	for i := range res {
		switch res[i].Type {
		case diffpatch.DiffInsert:
			res[i].Type = diffpatch.DiffDelete
		case diffpatch.DiffDelete:
			res[i].Type = diffpatch.DiffInsert
		}
	}
	return res
}
