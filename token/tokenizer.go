package token

import (
	"bytes"
	"unicode/utf8"
)

var (
	litTrue  = []byte("true")
	litFalse = []byte("false")
	litNull  = []byte("null")
)

// Tokenizer produces tokens from an in memory document on demand.
type Tokenizer struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{d: d, doc: NewPosDoc(d)}
}

// Doc returns the position index of the document being tokenized.
func (t *Tokenizer) Doc() *PosDoc {
	return t.doc
}

// Offset returns the offset of the next unread byte.
func (t *Tokenizer) Offset() int {
	return t.i
}

// Next returns the next token, or a token of type TEOF at the end of the
// document.  Errors are *TokenizeErr.
func (t *Tokenizer) Next() (Token, error) {
	t.skipSpace()
	d := t.d
	n := len(d)
	if t.i >= n {
		return Token{Type: TEOF, Pos: t.doc.end()}, nil
	}
	start := t.i
	pos := t.doc.Pos(start)
	c := d[start]
	switch c {
	case '{':
		return t.single(TLCurl, pos), nil
	case '}':
		return t.single(TRCurl, pos), nil
	case '[':
		return t.single(TLSquare, pos), nil
	case ']':
		return t.single(TRSquare, pos), nil
	case ':':
		return t.single(TColon, pos), nil
	case ',':
		return t.single(TComma, pos), nil
	case '"':
		v, off, err := quoted(d[start:])
		if err != nil {
			return Token{}, NewTokenizeErr(err, t.doc.Pos(start+off))
		}
		t.i += off
		return Token{Type: TString, Pos: pos, Bytes: d[start:t.i], Value: v}, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		off, _, err := number(d[start:])
		if err != nil {
			if start+off >= n {
				err = ErrUnexpectedEOF
			}
			return Token{}, NewTokenizeErr(err, t.doc.Pos(start+off))
		}
		t.i += off
		return Token{Type: TNumber, Pos: pos, Bytes: d[start:t.i]}, nil
	case 't':
		return t.literal(TTrue, litTrue, pos)
	case 'f':
		return t.literal(TFalse, litFalse, pos)
	case 'n':
		return t.literal(TNull, litNull, pos)
	}
	if c >= utf8.RuneSelf {
		r, _ := utf8.DecodeRune(d[start:])
		if r == utf8.RuneError {
			return Token{}, NewTokenizeErr(ErrBadUTF8, pos)
		}
		return Token{}, UnexpectedErr(string(r), pos)
	}
	return Token{}, UnexpectedErr(string(c), pos)
}

// AtEOF skips whitespace and reports whether the document is exhausted.
func (t *Tokenizer) AtEOF() bool {
	t.skipSpace()
	return t.i >= len(t.d)
}

func (t *Tokenizer) single(tt TokenType, pos *Pos) Token {
	tok := Token{Type: tt, Pos: pos, Bytes: t.d[t.i : t.i+1]}
	t.i++
	return tok
}

func (t *Tokenizer) literal(tt TokenType, lit []byte, pos *Pos) (Token, error) {
	rest := t.d[t.i:]
	if !bytes.HasPrefix(rest, lit) {
		if len(rest) < len(lit) && bytes.HasPrefix(lit, rest) {
			return Token{}, NewTokenizeErr(ErrUnexpectedEOF, t.doc.end())
		}
		return Token{}, UnexpectedErr(string(rest[:min(len(rest), len(lit))]), pos)
	}
	tok := Token{Type: tt, Pos: pos, Bytes: rest[:len(lit)]}
	t.i += len(lit)
	return tok, nil
}

func (t *Tokenizer) skipSpace() {
	d := t.d
	for t.i < len(d) {
		switch d[t.i] {
		case '\n':
			t.doc.nl(t.i)
		case ' ', '\t', '\r':
		default:
			return
		}
		t.i++
	}
}
