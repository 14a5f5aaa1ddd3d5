package ir

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	obj := func(kvs ...KeyVal) *Node { return FromKeyVals(kvs) }
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null", Null(), Null(), true},
		{"bool", FromBool(true), FromBool(false), false},
		{"number text", FromNumber("1.0"), FromNumber("1.0"), true},
		{"number lexical", FromNumber("1.0"), FromNumber("1"), false},
		{"types", FromString("1"), FromNumber("1"), false},
		{"field order", obj(KeyVal{"a", FromInt(1)}, KeyVal{"b", FromInt(2)}),
			obj(KeyVal{"b", FromInt(2)}, KeyVal{"a", FromInt(1)}), true},
		{"field value", obj(KeyVal{"a", FromInt(1)}), obj(KeyVal{"a", FromInt(2)}), false},
		{"field set", obj(KeyVal{"a", FromInt(1)}), obj(KeyVal{"b", FromInt(1)}), false},
		{"array order", FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}), false},
		{"nil", nil, Null(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %t, want %t", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal reversed = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNewObjectDedup(t *testing.T) {
	node := NewObject([]string{"a", "b", "a"}, []*Node{FromInt(1), FromInt(2), FromInt(3)})
	if diff := cmp.Diff([]string{"a", "b"}, node.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	a, _ := node.Get("a")
	if a.Number != "3" {
		t.Errorf("a = %s", a.Number)
	}
}

func TestGetIndexed(t *testing.T) {
	m := map[string]*Node{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		m[k] = FromString(k)
	}
	node := FromMap(m)
	for k := range m {
		v, ok := node.Get(k)
		if !ok || v.String != k {
			t.Errorf("Get(%q) = %v, %t", k, v, ok)
		}
	}
	if _, ok := node.Get("z"); ok {
		t.Error("Get(z) found")
	}
	if _, ok := FromString("x").Get("x"); ok {
		t.Error("Get on string found")
	}
}

func TestIndex(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(0), FromInt(1)})
	if v, ok := arr.Index(1); !ok || v.Number != "1" {
		t.Errorf("Index(1) = %v %t", v, ok)
	}
	for _, i := range []int{-1, 2} {
		if _, ok := arr.Index(i); ok {
			t.Errorf("Index(%d) found", i)
		}
	}
}

func TestWith(t *testing.T) {
	orig := FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", FromInt(2)}})
	repl := orig.WithField("a", FromInt(9))
	added := orig.WithField("c", FromInt(3))
	removed := orig.WithoutField("a")

	if a, _ := orig.Get("a"); a.Number != "1" {
		t.Errorf("original modified: %v", a)
	}
	if diff := cmp.Diff([]string{"a", "b"}, repl.Fields); diff != "" {
		t.Errorf("replace fields (-want +got):\n%s", diff)
	}
	if a, _ := repl.Get("a"); a.Number != "9" {
		t.Errorf("replace: %v", a)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, added.Fields); diff != "" {
		t.Errorf("add fields (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, removed.Fields); diff != "" {
		t.Errorf("remove fields (-want +got):\n%s", diff)
	}

	arr := FromSlice([]*Node{FromInt(0)})
	set := arr.WithIndex(0, FromInt(5))
	app := arr.WithIndex(1, FromInt(6))
	if v, _ := arr.Index(0); v.Number != "0" {
		t.Errorf("original array modified")
	}
	if set.Len() != 1 || set.Values[0].Number != "5" {
		t.Errorf("set: %+v", set.Values)
	}
	if app.Len() != 2 || app.Values[1].Number != "6" {
		t.Errorf("append: %+v", app.Values)
	}
}

func TestFromFloat(t *testing.T) {
	if got := FromFloat(0.1).Number; got != "0.1" {
		t.Errorf("got %s", got)
	}
	if got := FromFloat(math.NaN()); got.Type != NullType {
		t.Errorf("NaN gave %s", got.Type)
	}
	if got := FromFloat(math.Inf(-1)); got.Type != NullType {
		t.Errorf("-Inf gave %s", got.Type)
	}
}

type lexNum string

func (n lexNum) Node() *Node { return FromNumber(string(n)) }

func TestFromAny(t *testing.T) {
	got, err := FromAny(map[string]any{
		"s":   "x",
		"i":   int8(-3),
		"u":   uint64(18446744073709551615),
		"f":   1.5,
		"b":   true,
		"n":   nil,
		"j":   json.Number("1e400"),
		"l":   lexNum("945.06"),
		"arr": []any{1, "two", []*Node{Null()}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{
		{"s", FromString("x")},
		{"i", FromNumber("-3")},
		{"u", FromNumber("18446744073709551615")},
		{"f", FromNumber("1.5")},
		{"b", FromBool(true)},
		{"n", Null()},
		{"j", FromNumber("1e400")},
		{"l", FromNumber("945.06")},
		{"arr", FromSlice([]*Node{FromInt(1), FromString("two"), FromSlice([]*Node{Null()})})},
	})
	if !Equal(want, got) {
		t.Errorf("got %+v", got)
	}
	if diff := cmp.Diff([]string{"arr", "b", "f", "i", "j", "l", "n", "s", "u"}, got.Fields); diff != "" {
		t.Errorf("fields not sorted (-want +got):\n%s", diff)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("struct: got %v", err)
	}
	if _, err := FromAny([]any{make(chan int)}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("nested chan: got %v", err)
	}
}

func TestToAny(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{"i", FromNumber("12")},
		{"f", FromNumber("1.5")},
		{"big", FromNumber("1e400")},
		{"a", FromSlice([]*Node{Null(), FromBool(false), FromString("s")})},
	})
	want := map[string]any{
		"i":   int64(12),
		"f":   1.5,
		"big": "1e400",
		"a":   []any{nil, false, "s"},
	}
	if diff := cmp.Diff(want, ToAny(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil || back != typ {
			t.Errorf("%s: got %s, %v", typ, back, err)
		}
	}
}
