package token

import (
	"errors"
	"fmt"
)

// Reasons reported by the tokenizer and parser. The messages are the short
// reason strings surfaced in parse errors.
var (
	ErrUnexpectedEOF = errors.New("unexpectedEndOfInput")
	ErrBadEscape     = errors.New("invalidEscape")
	ErrNumber        = errors.New("invalidNumber")
	ErrUnexpected    = errors.New("unexpectedToken")
	ErrBadUTF8       = errors.New("invalidUTF8")
	ErrControl       = errors.New("controlCharacter")
	ErrDepth         = errors.New("maxDepthExceeded")
	ErrTrailing      = errors.New("trailingData")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
