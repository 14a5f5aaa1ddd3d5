package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jv/token"
)

var ErrParse = errors.New("parse error")

// Error reports malformed input.  Reason is one of the token reason
// sentinels, e.g. token.ErrUnexpectedEOF; both it and ErrParse match with
// errors.Is.
type Error struct {
	Offset int
	Reason error
	Detail string
	Pos    token.Pos
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s at %s", ErrParse, e.Detail, e.Pos)
	}
	return fmt.Sprintf("%s: %s at %s", ErrParse, e.Reason, e.Pos)
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Reason}
}

var reasons = []error{
	token.ErrUnexpectedEOF,
	token.ErrBadEscape,
	token.ErrNumber,
	token.ErrBadUTF8,
	token.ErrControl,
	token.ErrDepth,
	token.ErrTrailing,
	token.ErrUnexpected,
}

func newError(reason error, pos *token.Pos) *Error {
	return &Error{Offset: pos.I, Reason: reason, Pos: *pos}
}

func fromTokenizeErr(err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return err
	}
	res := &Error{Offset: te.Pos.I, Reason: te.Err, Pos: te.Pos}
	for _, r := range reasons {
		if errors.Is(te.Err, r) {
			res.Reason = r
			break
		}
	}
	if res.Reason != te.Err {
		res.Detail = te.Err.Error()
	}
	return res
}
