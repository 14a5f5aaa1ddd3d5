package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenTypes(t *testing.T, in string) []TokenType {
	t.Helper()
	tk := NewTokenizer([]byte(in))
	var res []TokenType
	for {
		tok, err := tk.Next()
		if err != nil {
			t.Fatalf("tokenize %q: %v", in, err)
		}
		if tok.Type == TEOF {
			return res
		}
		res = append(res, tok.Type)
	}
}

func TestTokenizeTypes(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{"", nil},
		{" \t\r\n", nil},
		{`{}`, []TokenType{TLCurl, TRCurl}},
		{`[1, "a", true, false, null]`, []TokenType{
			TLSquare, TNumber, TComma, TString, TComma, TTrue, TComma, TFalse, TComma, TNull, TRSquare,
		}},
		{`{"a":-1.5e+3}`, []TokenType{TLCurl, TString, TColon, TNumber, TRCurl}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := tokenTypes(t, tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("types mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeNumberText(t *testing.T) {
	for _, in := range []string{"0", "-0", "945.06", "1e10", "1E-2", "-12.5e+07", "123456789012345678901234567890"} {
		tk := NewTokenizer([]byte(in))
		tok, err := tk.Next()
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if tok.Type != TNumber || string(tok.Bytes) != in {
			t.Errorf("%q: got %s %q", in, tok.Type, tok.Bytes)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in     string
		reason error
		offset int
	}{
		{`01`, ErrNumber, 1},
		{`1.x`, ErrNumber, 2},
		{`1.`, ErrUnexpectedEOF, 2},
		{`-`, ErrUnexpectedEOF, 1},
		{`1e+`, ErrUnexpectedEOF, 3},
		{`"abc`, ErrUnexpectedEOF, 4},
		{`"a\qb"`, ErrBadEscape, 2},
		{`"\u12G4"`, ErrBadEscape, 1},
		{`"\ud800"`, ErrBadEscape, 7},
		{`"\u12`, ErrUnexpectedEOF, 5},
		{`"\ud83d\u`, ErrUnexpectedEOF, 9},
		{`"\ud83d`, ErrUnexpectedEOF, 7},
		{`"\`, ErrUnexpectedEOF, 2},
		{`"\udc00"`, ErrBadEscape, 1},
		{"\"a\tb\"", ErrControl, 2},
		{"\"a\xffb\"", ErrBadUTF8, 2},
		{`tru`, ErrUnexpectedEOF, 3},
		{`trux`, ErrUnexpected, 0},
		{`@`, ErrUnexpected, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tk := NewTokenizer([]byte(tt.in))
			_, err := tk.Next()
			if !errors.Is(err, tt.reason) {
				t.Fatalf("got %v, want %v", err, tt.reason)
			}
			var te *TokenizeErr
			if !errors.As(err, &te) {
				t.Fatalf("got %T, want *TokenizeErr", err)
			}
			if te.Pos.I != tt.offset {
				t.Errorf("offset %d, want %d", te.Pos.I, tt.offset)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"a\"b\\c\/d"`, `a"b\c/d`},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{`"é"`, "é"},
		{`"😀"`, "😀"},
		{`"日本"`, "日本"},
	}
	for _, tt := range tests {
		got, err := Unquote(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %q want %q", tt.in, got, tt.want)
		}
	}
	if _, err := Unquote(`"a"b`); !errors.Is(err, ErrTrailing) {
		t.Errorf("trailing: got %v", err)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{`a"b\c`, `"a\"b\\c"`},
		{"\n\t\x01", `"\n\t\u0001"`},
		{"é/😀", `"é/😀"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
		back, err := Unquote(Quote(tt.in))
		if err != nil || back != tt.in {
			t.Errorf("Unquote(Quote(%q)) = %q, %v", tt.in, back, err)
		}
	}
}

func TestNumberPredicates(t *testing.T) {
	tests := []struct {
		in        string
		isNum     bool
		isInteger bool
	}{
		{"0", true, true},
		{"-12", true, true},
		{"1.5", true, false},
		{"1e3", true, false},
		{"01", false, false},
		{"1.", false, false},
		{"+1", false, false},
		{"1 ", false, false},
		{"", false, false},
		{"abc", false, false},
	}
	for _, tt := range tests {
		if got := IsNumber(tt.in); got != tt.isNum {
			t.Errorf("IsNumber(%q) = %t", tt.in, got)
		}
		if got := IsInteger(tt.in); got != tt.isInteger {
			t.Errorf("IsInteger(%q) = %t", tt.in, got)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	d := []byte("{\n  \"a\":\n    1}")
	tk := NewTokenizer(d)
	var last Token
	for {
		tok, err := tk.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type == TNumber {
			last = tok
		}
		if tok.Type == TEOF {
			break
		}
	}
	line, col := last.Pos.LineCol()
	if line != 2 || col != 4 {
		t.Errorf("got %d:%d, want 2:4", line, col)
	}
}
