package libdiff

import (
	"strconv"

	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray aligns the elements of from and to by a summary of each
// element: its type, and its value for scalars.  Aligned containers are
// diffed recursively, a deletion followed by an insertion at the same
// index becomes a replacement.
func diffArray(from, to *ir.Node, p kpath.KPath, out *[]Change) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	// ri is the index in the array as changed so far
	fi, ti, ri := 0, 0, 0
	lastDel := -1
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				*out = append(*out, Change{Path: p.Append(kpath.Index(ri)), Op: OpDelete, From: from.Values[fi]})
				lastDel = len(*out) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			lastDel = -1
			for range n {
				diff(from.Values[fi], to.Values[ti], p.Append(kpath.Index(ri)), out)
				fi++
				ti++
				ri++
			}
		case diffpatch.DiffInsert:
			for range n {
				if lastDel >= 0 && lastDel == len(*out)-1 {
					del := &(*out)[lastDel]
					if del.From.Type == to.Values[ti].Type && !del.From.Type.IsLeaf() {
						*out = (*out)[:lastDel]
						diff(del.From, to.Values[ti], p.Append(kpath.Index(ri)), out)
					} else {
						del.Op = OpReplace
						del.To = to.Values[ti]
					}
				} else {
					*out = append(*out, Change{Path: p.Append(kpath.Index(ri)), Op: OpInsert, To: to.Values[ti]})
				}
				lastDel = -1
				ti++
				ri++
			}
		}
	}
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		return node.Type.String() + "-" + node.Number
	}
	return node.Type.String()
}
