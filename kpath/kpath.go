// Package kpath represents locations inside a JSON document as sequences
// of field names and array indices.
//
// The string form uses '.' before fields and brackets around indices:
//
//	a.b[1].c
//	[0].name
//	"field.with.dots"[2]
//
// Fields which would be ambiguous are written as JSON string literals.
package kpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jv/token"
)

var ErrSyntax = errors.New("kpath syntax error")

// Key is one step of a path: an object field or an array index.
type Key struct {
	Field   string
	Index   int
	IsIndex bool
}

func Field(f string) Key {
	return Key{Field: f}
}

func Index(i int) Key {
	return Key{Index: i, IsIndex: true}
}

func (k Key) String() string {
	if k.IsIndex {
		return "[" + strconv.Itoa(k.Index) + "]"
	}
	if token.KPathQuoteField(k.Field) {
		return token.Quote(k.Field)
	}
	return k.Field
}

// KPath is an ordered sequence of keys from the root of a document.  The
// empty KPath denotes the root.
type KPath []Key

// Append returns p followed by keys.  The result never shares its backing
// array with p, so paths derived from a common prefix stay independent.
func (p KPath) Append(keys ...Key) KPath {
	res := make(KPath, len(p), len(p)+len(keys))
	copy(res, p)
	return append(res, keys...)
}

func (p KPath) Equal(o KPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders p; the root renders as "".
func (p KPath) String() string {
	var b strings.Builder
	for i, k := range p {
		if !k.IsIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k.String())
	}
	return b.String()
}

// Strings returns the keys of p as strings, indices in decimal.
func (p KPath) Strings() []string {
	res := make([]string, len(p))
	for i, k := range p {
		if k.IsIndex {
			res[i] = strconv.Itoa(k.Index)
		} else {
			res[i] = k.Field
		}
	}
	return res
}

func (p KPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *KPath) UnmarshalText(d []byte) error {
	kp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = kp
	return nil
}

// Parse parses the string form of a path.  A leading '.' or '$' is
// accepted and ignored.
func Parse(s string) (KPath, error) {
	s = strings.TrimPrefix(s, "$")
	var res KPath
	i := 0
	n := len(s)
	if i < n && s[i] == '.' {
		i++
	}
	first := true
	for i < n {
		switch s[i] {
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index at %d in %q", ErrSyntax, i, s)
			}
			idx, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, s[i+1:i+j], s)
			}
			res = append(res, Index(idx))
			i += j + 1
		case '.':
			if first {
				return nil, fmt.Errorf("%w: empty field at %d in %q", ErrSyntax, i, s)
			}
			i++
			f, off, err := parseField(s[i:])
			if err != nil {
				return nil, fmt.Errorf("%w at %d in %q", err, i, s)
			}
			res = append(res, Field(f))
			i += off
		default:
			if !first {
				return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrSyntax, s[i], i, s)
			}
			f, off, err := parseField(s[i:])
			if err != nil {
				return nil, fmt.Errorf("%w at %d in %q", err, i, s)
			}
			res = append(res, Field(f))
			i += off
		}
		first = false
	}
	return res, nil
}

func parseField(s string) (string, int, error) {
	if s == "" {
		return "", 0, fmt.Errorf("%w: empty field", ErrSyntax)
	}
	if s[0] == '"' {
		end := closingQuote(s)
		if end < 0 {
			return "", 0, fmt.Errorf("%w: unterminated quoted field", ErrSyntax)
		}
		f, err := token.Unquote(s[:end+1])
		if err != nil {
			return "", 0, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		return f, end + 1, nil
	}
	j := strings.IndexAny(s, ".[")
	if j < 0 {
		j = len(s)
	}
	if j == 0 {
		return "", 0, fmt.Errorf("%w: empty field", ErrSyntax)
	}
	return s[:j], j, nil
}

func closingQuote(s string) int {
	esc := false
	for i := 1; i < len(s); i++ {
		switch {
		case esc:
			esc = false
		case s[i] == '\\':
			esc = true
		case s[i] == '"':
			return i
		}
	}
	return -1
}
