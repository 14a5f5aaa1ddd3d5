package libdiff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"
)

var ErrApply = errors.New("cannot apply change")

// Apply returns doc with changes applied in order.  doc is not modified.
func Apply(doc *ir.Node, changes []Change) (*ir.Node, error) {
	var err error
	for i := range changes {
		c := &changes[i]
		doc, err = apply(doc, c.Path, c)
		if err != nil {
			return nil, fmt.Errorf("%w: %s at %q: %w", ErrApply, c.Op, c.Path.String(), err)
		}
	}
	return doc, nil
}

func apply(node *ir.Node, p kpath.KPath, c *Change) (*ir.Node, error) {
	switch len(p) {
	case 0:
		if c.Op == OpDelete {
			return ir.Null(), nil
		}
		return c.To, nil
	case 1:
		return applyLast(node, p[0], c)
	}
	k := p[0]
	var (
		child *ir.Node
		ok    bool
	)
	if k.IsIndex {
		child, ok = node.Index(k.Index)
	} else {
		child, ok = node.Get(k.Field)
	}
	if !ok {
		return nil, fmt.Errorf("no value at %s", k)
	}
	sub, err := apply(child, p[1:], c)
	if err != nil {
		return nil, err
	}
	if k.IsIndex {
		return node.WithIndex(k.Index, sub), nil
	}
	return node.WithField(k.Field, sub), nil
}

func applyLast(node *ir.Node, k kpath.Key, c *Change) (*ir.Node, error) {
	if k.IsIndex {
		if node.Type != ir.ArrayType {
			return nil, fmt.Errorf("index %s of %s", k, node.Type)
		}
		n := node.Len()
		switch c.Op {
		case OpInsert:
			if k.Index < 0 || k.Index > n {
				return nil, fmt.Errorf("index %s out of range", k)
			}
			return ir.FromSlice(slices.Insert(slices.Clone(node.Values), k.Index, c.To)), nil
		case OpDelete:
			if k.Index < 0 || k.Index >= n {
				return nil, fmt.Errorf("index %s out of range", k)
			}
			return ir.FromSlice(slices.Delete(slices.Clone(node.Values), k.Index, k.Index+1)), nil
		default:
			if k.Index < 0 || k.Index >= n {
				return nil, fmt.Errorf("index %s out of range", k)
			}
			return node.WithIndex(k.Index, c.To), nil
		}
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("field %s of %s", k, node.Type)
	}
	_, exists := node.Get(k.Field)
	switch c.Op {
	case OpInsert:
		if exists {
			return nil, fmt.Errorf("field %s exists", k)
		}
		return node.WithField(k.Field, c.To), nil
	case OpDelete:
		if !exists {
			return nil, fmt.Errorf("no field %s", k)
		}
		return node.WithoutField(k.Field), nil
	default:
		if !exists {
			return nil, fmt.Errorf("no field %s", k)
		}
		return node.WithField(k.Field, c.To), nil
	}
}
