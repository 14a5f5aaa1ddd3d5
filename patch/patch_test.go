package patch

import (
	"errors"
	"testing"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return node
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":[1]}`)
	p := mustParse(t, `[
		{"op":"replace","path":"/a","value":2},
		{"op":"add","path":"/b/-","value":3},
		{"op":"add","path":"/c","value":{"d":null}}
	]`)
	got, err := Apply(doc, p)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":2,"b":[1,3],"c":{"d":null}}`)
	if !ir.Equal(want, got) {
		t.Errorf("got %s", encode.MustString(got))
	}
	if encode.MustString(doc) != `{"a":1,"b":[1]}` {
		t.Errorf("doc modified: %s", encode.MustString(doc))
	}
}

func TestDecode(t *testing.T) {
	p, err := Decode(mustParse(t, `[{"op":"remove","path":"/a"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 1 {
		t.Errorf("len %d", p.Len())
	}
	if _, err := Decode(mustParse(t, `{"op":"remove"}`)); !errors.Is(err, ErrPatch) {
		t.Errorf("object patch: %v", err)
	}
	_, err = p.Apply(mustParse(t, `{"b":1}`))
	if !errors.Is(err, ErrPatch) {
		t.Errorf("remove missing: %v", err)
	}
}

func TestMerge(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":{"c":2,"d":3}}`)
	got, err := Merge(doc, mustParse(t, `{"b":{"c":null},"e":4}`))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":1,"b":{"d":3},"e":4}`)
	if !ir.Equal(want, got) {
		t.Errorf("got %s", encode.MustString(got))
	}
}

func TestCreateMerge(t *testing.T) {
	from := mustParse(t, `{"a":1,"b":{"c":2,"d":3},"x":"y"}`)
	to := mustParse(t, `{"a":1,"b":{"c":5},"z":true}`)
	m, err := CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"b":{"c":5,"d":null},"x":null,"z":true}`)
	if !ir.Equal(want, m) {
		t.Errorf("merge patch %s", encode.MustString(m))
	}
	got, err := Merge(from, m)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(to, got) {
		t.Errorf("got %s", encode.MustString(got))
	}
}
