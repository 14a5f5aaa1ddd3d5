package parse

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/token"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{`null`, ir.Null()},
		{` true `, ir.FromBool(true)},
		{`false`, ir.FromBool(false)},
		{`"a\nb"`, ir.FromString("a\nb")},
		{`945.06`, ir.FromNumber("945.06")},
		{`-1E+2`, ir.FromNumber("-1E+2")},
		{`123456789012345678901234567890`, ir.FromNumber("123456789012345678901234567890")},
		{`[]`, ir.FromSlice(nil)},
		{`{}`, ir.FromKeyVals(nil)},
		{`[1,[2,{}]]`, ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromKeyVals(nil)}),
		})},
		{`{"b":1,"a":{"c":[true]}}`, ir.FromKeyVals([]ir.KeyVal{
			{Key: "b", Val: ir.FromInt(1)},
			{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: "c", Val: ir.FromSlice([]*ir.Node{ir.FromBool(true)})},
			})},
		})},
		{`"😀"`, ir.FromString("😀")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(tt.want, got) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseKeepsFieldOrder(t *testing.T) {
	node, err := ParseString(`{"z":1,"a":2,"m":3}`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, node.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	node, err := ParseString(`{"a":1,"b":0,"a":2}`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, node.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	a, _ := node.Get("a")
	if a.Number != "2" {
		t.Errorf("a = %s, want 2", a.Number)
	}
}

func TestParseDuplicateKeysLarge(t *testing.T) {
	var b strings.Builder
	b.WriteString("{")
	for i := range 20 {
		b.WriteString(`"k`)
		b.WriteByte(byte('a' + i))
		b.WriteString(`":0,`)
	}
	b.WriteString(`"kc":"last"}`)
	node, err := ParseString(b.String())
	if err != nil {
		t.Fatal(err)
	}
	if node.Len() != 20 {
		t.Errorf("len %d, want 20", node.Len())
	}
	kc, _ := node.Get("kc")
	if kc.String != "last" {
		t.Errorf("kc = %+v", kc)
	}
	if node.Fields[2] != "kc" {
		t.Errorf("kc moved to %v", node.Fields)
	}
}

func TestParseTrailingComma(t *testing.T) {
	for _, in := range []string{`[1,2,]`, `{"a":1,}`} {
		if _, err := ParseString(in); err != nil {
			t.Errorf("%s: %v", in, err)
		}
		_, err := ParseString(in, StrictCommas())
		if !errors.Is(err, token.ErrUnexpected) {
			t.Errorf("%s strict: got %v", in, err)
		}
	}
	for _, in := range []string{`[,]`, `{,}`, `[1,,2]`} {
		if _, err := ParseString(in); !errors.Is(err, ErrParse) {
			t.Errorf("%s: got %v", in, err)
		}
	}
}

func TestParseTrailingData(t *testing.T) {
	node, err := ParseString(`{"a":1} garbage`)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Errorf("got %s", node.Type)
	}
	_, err = ParseString(`{"a":1} garbage`, StrictTrailing())
	var pe *Error
	if !errors.As(err, &pe) || !errors.Is(err, token.ErrTrailing) {
		t.Fatalf("got %v", err)
	}
	if pe.Offset != 8 {
		t.Errorf("offset %d, want 8", pe.Offset)
	}
	if _, err := ParseString("[1]  \n", StrictTrailing()); err != nil {
		t.Errorf("whitespace after root: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		reason error
		offset int
	}{
		{``, token.ErrUnexpectedEOF, 0},
		{`{`, token.ErrUnexpectedEOF, 1},
		{`[1,2`, token.ErrUnexpectedEOF, 4},
		{`{"a":1`, token.ErrUnexpectedEOF, 6},
		{`{"a"`, token.ErrUnexpectedEOF, 4},
		{`"abc`, token.ErrUnexpectedEOF, 4},
		{`[01]`, token.ErrNumber, 2},
		{`"\x"`, token.ErrBadEscape, 1},
		{`{"a" 1}`, token.ErrUnexpected, 5},
		{`{1:2}`, token.ErrUnexpected, 1},
		{`[1 2]`, token.ErrUnexpected, 3},
		{`}`, token.ErrUnexpected, 0},
		{"\"\x01\"", token.ErrControl, 1},
		{"[\"\xc3\"]", token.ErrBadUTF8, 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseString(tt.in)
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("got %v (%T), want *Error", err, err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v is not ErrParse", err)
			}
			if pe.Reason != tt.reason {
				t.Errorf("reason %v, want %v", pe.Reason, tt.reason)
			}
			if pe.Offset != tt.offset {
				t.Errorf("offset %d, want %d", pe.Offset, tt.offset)
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 10) + strings.Repeat("]", 10)
	if _, err := ParseString(deep, MaxDepth(10)); err != nil {
		t.Errorf("depth 10: %v", err)
	}
	_, err := ParseString(deep, MaxDepth(9))
	if !errors.Is(err, token.ErrDepth) {
		t.Errorf("depth 9: got %v", err)
	}
	huge := strings.Repeat("[", DefaultMaxDepth+1)
	if _, err := ParseString(huge); !errors.Is(err, token.ErrDepth) {
		t.Errorf("default: got %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	node, err := ParseString("{\n  \"a\": [1,\n   true]\n}", ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := node.Get("a")
	tr, _ := a.Index(1)
	type lc struct{ Line, Col int }
	got := []lc{}
	for _, n := range []*ir.Node{node, a, tr} {
		l, c := positions[n].LineCol()
		got = append(got, lc{l, c})
	}
	want := []lc{{0, 0}, {1, 7}, {2, 3}}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("positions (-want +got):\n%s", diff)
	}
}

func TestEscapedStringAllocs(t *testing.T) {
	var b strings.Builder
	b.WriteByte('[')
	for range 2000 {
		b.WriteString(`"a\nb",`)
	}
	b.WriteByte('"')
	b.WriteString(strings.Repeat("x", 1<<18))
	b.WriteString(`"]`)
	d := []byte(b.String())

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	node, err := Parse(d)
	runtime.ReadMemStats(&after)
	if err != nil {
		t.Fatal(err)
	}
	if node.Len() != 2001 || node.Values[0].String != "a\nb" {
		t.Fatalf("got %d values, first %q", node.Len(), node.Values[0].String)
	}
	if alloc := after.TotalAlloc - before.TotalAlloc; alloc > uint64(16*len(d)) {
		t.Errorf("parsing %d bytes allocated %d bytes", len(d), alloc)
	}
}
