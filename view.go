package jv

import (
	"errors"
	"fmt"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"
	"github.com/signadot/jv/parse"
)

// View is a node, or the error met while navigating to it, together with
// the path from the root.  Views are values; navigation returns new views
// and never modifies the receiver.
//
// Once a view holds an error, navigating from it yields views holding the
// same error with the path extended, so a chain of lookups needs only one
// check at the end.
type View struct {
	node *ir.Node
	err  error
	path kpath.KPath
	cfg  *Config
}

// New returns a view of node at the root path.
func New(node *ir.Node) View {
	if node == nil {
		node = ir.Null()
	}
	return View{node: node}
}

// Parse parses d and returns a view of the root.  Errors are *parse.Error.
func Parse(d []byte, opts ...parse.ParseOption) (View, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed: %v\n", err)
		}
		return View{err: err}, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes into %s\n", len(d), node.Type)
	}
	return View{node: node}, nil
}

func ParseString(s string, opts ...parse.ParseOption) (View, error) {
	return Parse([]byte(s), opts...)
}

// Path returns a copy of the path from the root to v.
func (v View) Path() kpath.KPath {
	if len(v.path) == 0 {
		return nil
	}
	return v.path.Append()
}

func (v View) Err() error {
	return v.err
}

// Node returns the node of v, or the error v holds.
func (v View) Node() (*ir.Node, error) {
	if v.err != nil {
		return nil, v.err
	}
	if v.node == nil {
		return ir.Null(), nil
	}
	return v.node, nil
}

// Type returns the type of the node of v.  A view holding an error
// reports NullType.
func (v View) Type() ir.Type {
	if v.err != nil || v.node == nil {
		return ir.NullType
	}
	return v.node.Type
}

// IsNull reports whether v holds a null node.  An error view is not null.
func (v View) IsNull() bool {
	return v.err == nil && v.Type() == ir.NullType
}

// Exists reports whether v holds a node rather than an error.
func (v View) Exists() bool {
	return v.err == nil
}

// Lookup returns the view of key k under v.  Looking up a field which is
// absent, an index out of range, or any key of a scalar gives a view
// holding a *KeyNotFoundError whose path ends with k.
func (v View) Lookup(k kpath.Key) View {
	res := View{path: v.path.Append(k), cfg: v.cfg}
	if v.err != nil {
		res.err = v.err
		return res
	}
	var (
		child *ir.Node
		ok    bool
	)
	switch {
	case v.node == nil:
		// the zero View reads as null
	case k.IsIndex:
		child, ok = v.node.Index(k.Index)
	default:
		child, ok = v.node.Get(k.Field)
	}
	if !ok {
		res.err = &KeyNotFoundError{Path: res.path}
		return res
	}
	res.node = child
	return res
}

func (v View) Key(field string) View {
	return v.Lookup(kpath.Field(field))
}

func (v View) Index(i int) View {
	return v.Lookup(kpath.Index(i))
}

// At looks up each key of p in turn.
func (v View) At(p kpath.KPath) View {
	for _, k := range p {
		v = v.Lookup(k)
	}
	return v
}

// Get parses path in kpath syntax and looks it up.  A malformed path gives
// a view holding the syntax error.
func (v View) Get(path string) View {
	p, err := kpath.Parse(path)
	if err != nil {
		if v.err != nil {
			return v
		}
		return View{err: err, path: v.Path(), cfg: v.cfg}
	}
	return v.At(p)
}

// Nodes returns a view of each element of the array v.
func (v View) Nodes() ([]View, error) {
	if v.err != nil {
		return nil, v.err
	}
	if v.Type() != ir.ArrayType {
		return nil, v.mismatch(ir.ArrayType.String())
	}
	res := make([]View, len(v.node.Values))
	for i, child := range v.node.Values {
		res[i] = View{node: child, path: v.path.Append(kpath.Index(i)), cfg: v.cfg}
	}
	return res, nil
}

// Keys returns the fields of the object v in source order.
func (v View) Keys() ([]string, error) {
	if v.err != nil {
		return nil, v.err
	}
	if v.Type() != ir.ObjectType {
		return nil, v.mismatch(ir.ObjectType.String())
	}
	return append([]string(nil), v.node.Fields...), nil
}

// WithConfig returns v using c for decoding v and views derived from it.
// A nil c restores the process default.
func (v View) WithConfig(c *Config) View {
	v.cfg = c
	return v
}

// Config returns the configuration decoding of v uses.
func (v View) Config() *Config {
	if v.cfg != nil {
		return v.cfg
	}
	return DefaultConfig()
}

// String returns the canonical encoding of v, or a description of its
// error.
func (v View) String() string {
	if v.err != nil {
		return fmt.Sprintf("<error at %q: %v>", v.path.String(), v.err)
	}
	node, _ := v.Node()
	s, err := encode.String(node)
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return s
}

func (v View) MarshalJSON() ([]byte, error) {
	if v.err != nil {
		return nil, v.err
	}
	node, _ := v.Node()
	return encode.Append(nil, node)
}

// Equal reports whether v and o have equal paths and either structurally
// equal nodes or the same error.
func (v View) Equal(o View) bool {
	if !v.path.Equal(o.path) {
		return false
	}
	if v.err != nil || o.err != nil {
		return v.err == o.err
	}
	vn, _ := v.Node()
	on, _ := o.Node()
	return ir.Equal(vn, on)
}

func (v View) mismatch(expected string) error {
	return &TypeMismatchError{
		Expected: expected,
		Found:    v.Type().String(),
		Path:     v.Path(),
	}
}

func isViewErr(err error) bool {
	return errors.Is(err, ErrKeyNotFound) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, parse.ErrParse) ||
		errors.Is(err, kpath.ErrSyntax)
}
