package jv

import (
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"
)

// Set returns a view, at the same path as v, of a copy of the node of v
// with val placed at the relative path p.  v and its tree are left
// unchanged.
//
// Fields are added or replaced.  An index equal to the length of an array
// appends; a larger one gives a *KeyNotFoundError.  Containers missing
// along p are created, an object for a field and an array for an index,
// and a scalar in the way is replaced by the container p needs.
func (v View) Set(p kpath.KPath, val *ir.Node) View {
	if v.err != nil {
		return v
	}
	if val == nil {
		val = ir.Null()
	}
	node, err := setIn(v.node, v.path, p, val)
	if err != nil {
		return View{err: err, path: v.Path(), cfg: v.cfg}
	}
	return View{node: node, path: v.path, cfg: v.cfg}
}

// SetKey is Set with a single field.
func (v View) SetKey(field string, val *ir.Node) View {
	return v.Set(kpath.KPath{kpath.Field(field)}, val)
}

// setIn treats a nil node as absent.
func setIn(node *ir.Node, at, p kpath.KPath, val *ir.Node) (*ir.Node, error) {
	if len(p) == 0 {
		return val, nil
	}
	k := p[0]
	at = at.Append(k)
	if k.IsIndex {
		if node == nil || node.Type != ir.ArrayType {
			node = ir.FromSlice(nil)
		}
		if k.Index < 0 || k.Index > node.Len() {
			return nil, &KeyNotFoundError{Path: at}
		}
		child, _ := node.Index(k.Index)
		sub, err := setIn(child, at, p[1:], val)
		if err != nil {
			return nil, err
		}
		return node.WithIndex(k.Index, sub), nil
	}
	if node == nil || node.Type != ir.ObjectType {
		node = ir.FromKeyVals(nil)
	}
	child, _ := node.Get(k.Field)
	sub, err := setIn(child, at, p[1:], val)
	if err != nil {
		return nil, err
	}
	return node.WithField(k.Field, sub), nil
}
