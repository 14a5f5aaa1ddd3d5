package libdiff

import (
	"strings"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpReplace Op = iota
	OpInsert
	OpDelete
	// OpEdit replaces a string by another close to it; the change carries
	// the text edits.
	OpEdit
)

func (op Op) String() string {
	switch op {
	case OpReplace:
		return "replace"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpEdit:
		return "edit"
	}
	return "unknown"
}

// Change is one difference between two documents.
//
// Changes are applied in order.  An array index refers to the array as
// left by the changes before it, so inserting or deleting an element
// shifts the indices of later changes to the same array.
type Change struct {
	Path  kpath.KPath
	Op    Op
	From  *ir.Node
	To    *ir.Node
	Edits []diffpatch.Diff
}

func (c *Change) String() string {
	var b strings.Builder
	p := c.Path.String()
	if p == "" {
		p = "$"
	}
	switch c.Op {
	case OpInsert:
		b.WriteString("+ " + p + ": " + encode.MustString(c.To))
	case OpDelete:
		b.WriteString("- " + p + ": " + encode.MustString(c.From))
	case OpReplace:
		b.WriteString("~ " + p + ": " + encode.MustString(c.From) + " -> " + encode.MustString(c.To))
	case OpEdit:
		b.WriteString("~ " + p + ": ")
		for _, d := range c.Edits {
			switch d.Type {
			case diffpatch.DiffEqual:
				b.WriteString(d.Text)
			case diffpatch.DiffDelete:
				b.WriteString("[-" + d.Text + "-]")
			case diffpatch.DiffInsert:
				b.WriteString("{+" + d.Text + "+}")
			}
		}
	}
	return b.String()
}

// Diff returns the changes turning from into to, or nil if they are equal.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(from, to, nil, &res)
	if debug.Diff() {
		debug.Logf("diff: %d changes\n", len(res))
	}
	return res
}

func diff(from, to *ir.Node, p kpath.KPath, out *[]Change) {
	if ir.Equal(from, to) {
		return
	}
	if from.Type != to.Type {
		*out = append(*out, Change{Path: p, Op: OpReplace, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		diffObject(from, to, p, out)
	case ir.ArrayType:
		diffArray(from, to, p, out)
	case ir.StringType:
		*out = append(*out, diffString(from, to, p))
	default:
		*out = append(*out, Change{Path: p, Op: OpReplace, From: from, To: to})
	}
}

// diffObject aligns the field names of from and to, then recurses on the
// fields present in both.
func diffObject(from, to *ir.Node, p kpath.KPath, out *[]Change) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				f := runeMap[r]
				if _, ok := to.Get(f); ok {
					// moved; handled where it appears in to
					fi++
					continue
				}
				*out = append(*out, Change{Path: p.Append(kpath.Field(f)), Op: OpDelete, From: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				diff(from.Values[fi], to.Values[ti], p.Append(kpath.Field(runeMap[r])), out)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				f := runeMap[r]
				if old, ok := from.Get(f); ok {
					diff(old, to.Values[ti], p.Append(kpath.Field(f)), out)
					ti++
					continue
				}
				*out = append(*out, Change{Path: p.Append(kpath.Field(f)), Op: OpInsert, To: to.Values[ti]})
				ti++
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
