package jv

import (
	"errors"
	"testing"

	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"
)

func mustPath(t *testing.T, s string) kpath.KPath {
	t.Helper()
	p, err := kpath.Parse(s)
	if err != nil {
		t.Fatalf("path %s: %v", s, err)
	}
	return p
}

func TestSet(t *testing.T) {
	const in = `{"a":{"b":[1]},"s":"x"}`
	tests := []struct {
		name string
		path string
		val  *ir.Node
		want string
	}{
		{"append", "a.b[1]", ir.FromInt(2), `{"a":{"b":[1,2]},"s":"x"}`},
		{"replace element", "a.b[0]", ir.FromInt(0), `{"a":{"b":[0]},"s":"x"}`},
		{"new field", "a.c", ir.FromBool(true), `{"a":{"b":[1],"c":true},"s":"x"}`},
		{"create objects", "n.m.k", ir.FromString("v"), `{"a":{"b":[1]},"n":{"m":{"k":"v"}},"s":"x"}`},
		{"create array", "arr[0]", ir.Null(), `{"a":{"b":[1]},"arr":[null],"s":"x"}`},
		{"scalar in the way", "s.t", ir.FromInt(1), `{"a":{"b":[1]},"s":{"t":1}}`},
		{"nil value", "s", nil, `{"a":{"b":[1]},"s":null}`},
		{"root", "", ir.FromInt(7), `7`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, in)
			var p kpath.KPath
			if tt.path != "" {
				p = mustPath(t, tt.path)
			}
			got := root.Set(p, tt.val)
			if err := got.Err(); err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			if root.String() != in {
				t.Errorf("original modified: %s", root)
			}
		})
	}
}

func TestSetOutOfRange(t *testing.T) {
	root := mustParse(t, `{"a":{"b":[1]}}`)
	for _, path := range []string{"a.b[2]", "a.b[-1]", "x[3]"} {
		v := root.Set(mustPath(t, path), ir.Null())
		var knf *KeyNotFoundError
		if !errors.As(v.Err(), &knf) {
			t.Errorf("%s: got %v", path, v.Err())
			continue
		}
		if knf.Path.String() != path {
			t.Errorf("%s: error path %s", path, knf.Path)
		}
	}
}

func TestSetSubview(t *testing.T) {
	root := mustParse(t, `{"a":{"b":[1]}}`)
	sub := root.Key("a").SetKey("c", ir.FromString("d"))
	if sub.Path().String() != "a" {
		t.Errorf("path %s", sub.Path())
	}
	if sub.String() != `{"b":[1],"c":"d"}` {
		t.Errorf("got %s", sub)
	}
	v := root.Key("a").Set(mustPath(t, "b[9]"), ir.Null())
	if p, _ := ErrorPath(v.Err()); p.String() != "a.b[9]" {
		t.Errorf("error path %s", p)
	}
	if s, err := Decode[string](sub.Key("c")); err != nil || s != "d" {
		t.Errorf("decode after set: %q %v", s, err)
	}
}
