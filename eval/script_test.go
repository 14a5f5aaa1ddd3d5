package eval

import (
	"strings"
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

func TestEval(t *testing.T) {
	doc := mustParse(t, `{"a":2,"b":[1,2,3],"s":"x","o":{"k":"v"}}`)
	tests := []struct {
		code string
		env  Env
		want string
	}{
		{`a * 10`, nil, `20`},
		{`len(b)`, nil, `3`},
		{`s + "y"`, nil, `"xy"`},
		{`o.k`, nil, `"v"`},
		{`doc.a`, nil, `2`},
		{`getpath("b[1]")`, nil, `2`},
		{`haspath("o.k") && !haspath("o.z")`, nil, `true`},
		{`x + a`, Env{"x": 5}, `7`},
		{`{"n": a, "l": [s]}`, nil, `{"l":["x"],"n":2}`},
		{`missing`, nil, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Eval(doc, tt.code, tt.env)
			if err != nil {
				t.Fatal(err)
			}
			if s := encode.MustString(got); s != tt.want {
				t.Errorf("got %s, want %s", s, tt.want)
			}
		})
	}
}

func TestProgramReuse(t *testing.T) {
	p, err := Compile(`n > 1`)
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != `n > 1` {
		t.Errorf("String() = %s", p)
	}
	for _, tt := range []struct {
		doc  string
		want bool
	}{
		{`{"n":2}`, true},
		{`{"n":0}`, false},
	} {
		got, err := p.Test(mustParse(t, tt.doc), nil)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %t", tt.doc, got)
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := Compile(`a +`); err == nil {
		t.Error("compiled a +")
	}
	p, err := Compile(`a`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Test(mustParse(t, `{"a":"s"}`), nil); err == nil || !strings.Contains(err.Error(), "not a bool") {
		t.Errorf("got %v", err)
	}
	if _, err := Eval(mustParse(t, `{}`), `getpath("a.b")`, nil); err == nil {
		t.Error("getpath of missing path succeeded")
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("JV_EVAL_TEST", "set")
	got, err := Eval(mustParse(t, `null`), `getenv("JV_EVAL_TEST")`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType || got.String != "set" {
		t.Errorf("got %s", encode.MustString(got))
	}
}

func TestFromJSONAny(t *testing.T) {
	type pair struct {
		A int    `json:"a"`
		B string `json:"b,omitempty"`
	}
	got, err := FromJSONAny([]any{pair{A: 1}, map[string]any{"k": pair{A: 2, B: "x"}}})
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != `[{"a":1},{"k":{"a":2,"b":"x"}}]` {
		t.Errorf("got %s", s)
	}
}
