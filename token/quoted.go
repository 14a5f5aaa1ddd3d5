package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// KPathQuoteField returns true if a field name needs to be quoted in a
// kinded path: it is empty, starts with '$', contains path syntax
// characters or quotes, or contains spaces or non printable runes.
func KPathQuoteField(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, ".[]\"\\") || v[0] == '$' {
		return true
	}
	for _, r := range v {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

// Quote returns v as a JSON string literal, escaping only the quote,
// backslash and control characters.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends the quoted form of v to d.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return append(d, '"')
}

// Unquote decodes a complete JSON string literal.
func Unquote(v string) (string, error) {
	s, n, err := quoted([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrTrailing
	}
	return s, nil
}

// quoted decodes the string literal at the start of d, which must begin
// with '"'. It returns the decoded value and the number of bytes consumed.
// On error the returned length is the offset of the offending byte.
func quoted(d []byte) (string, int, error) {
	n := len(d)
	i := 1
	// fast path: no escapes
	for i < n {
		c := d[i]
		if c == '"' {
			return string(d[1:i]), i + 1, nil
		}
		if c == '\\' {
			break
		}
		if c < 0x20 {
			return "", i, ErrControl
		}
		if c < utf8.RuneSelf {
			i++
			continue
		}
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return "", i, ErrBadUTF8
		}
		i += sz
	}
	if i >= n {
		return "", n, ErrUnexpectedEOF
	}
	// sized from the prefix only; d runs to the end of the document
	b := make([]byte, 0, i-1+16)
	b = append(b, d[1:i]...)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return string(b), i + 1, nil
		case c < 0x20:
			return "", i, ErrControl
		case c == '\\':
			if i+1 >= n {
				return "", n, ErrUnexpectedEOF
			}
			esc := d[i+1]
			switch esc {
			case '"', '\\', '/':
				b = append(b, esc)
			case 'b':
				b = append(b, '\b')
			case 'f':
				b = append(b, '\f')
			case 'n':
				b = append(b, '\n')
			case 'r':
				b = append(b, '\r')
			case 't':
				b = append(b, '\t')
			case 'u':
				r, sz, err := unicodeEscape(d[i:])
				if err == ErrUnexpectedEOF {
					return "", n, err
				}
				if err != nil {
					return "", i + sz, err
				}
				b = utf8.AppendRune(b, r)
				i += sz
				continue
			default:
				return "", i, ErrBadEscape
			}
			i += 2
		case c < utf8.RuneSelf:
			b = append(b, c)
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return "", i, ErrBadUTF8
			}
			b = append(b, d[i:i+sz]...)
			i += sz
		}
	}
	return "", n, ErrUnexpectedEOF
}

// unicodeEscape decodes a \uXXXX escape at the start of d, including a
// following low surrogate escape when the first is a high surrogate.
func unicodeEscape(d []byte) (rune, int, error) {
	r1, err := hex4(d)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r1) {
		return r1, 6, nil
	}
	if r1 >= 0xdc00 {
		// low surrogate without a high one
		return 0, 0, ErrBadEscape
	}
	if len(d) == 6 {
		return 0, 6, ErrUnexpectedEOF
	}
	if d[6] != '\\' {
		return 0, 6, ErrBadEscape
	}
	if len(d) == 7 {
		return 0, 7, ErrUnexpectedEOF
	}
	if d[7] != 'u' {
		return 0, 6, ErrBadEscape
	}
	r2, err := hex4(d[6:])
	if err != nil {
		return 0, 6, err
	}
	if r2 < 0xdc00 || r2 > 0xdfff {
		return 0, 6, ErrBadEscape
	}
	r := utf16.DecodeRune(r1, r2)
	return r, 12, nil
}

func hex4(d []byte) (rune, error) {
	if len(d) < 6 {
		for _, c := range d[2:] {
			if !isHex(c) {
				return 0, ErrBadEscape
			}
		}
		return 0, ErrUnexpectedEOF
	}
	var r rune
	for _, c := range d[2:6] {
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, ErrBadEscape
		}
	}
	return r, nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
