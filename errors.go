package jv

import (
	"errors"
	"fmt"

	"github.com/signadot/jv/kpath"
)

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrNoDecoder    = errors.New("no decoder registered")
)

// KeyNotFoundError is produced by navigation when a field is absent, an
// index is out of range, or the node is not a container.  Path ends with
// the key that missed.
type KeyNotFoundError struct {
	Path kpath.KPath
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no value associated with key %q", e.Path.String())
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// TypeMismatchError is produced by decoding when the node at Path cannot
// be converted to the requested type.
type TypeMismatchError struct {
	Expected string
	Found    string
	Path     kpath.KPath
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s value but found %s instead at %q", e.Expected, e.Found, e.Path.String())
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// PathError wraps an error returned by a registered decoder with the path
// of the node being decoded.
type PathError struct {
	Path kpath.KPath
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%q: %s", e.Path.String(), e.Err.Error())
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ErrorPath returns the path recorded in err if it is, or wraps, one of the
// errors of this package.
func ErrorPath(err error) (kpath.KPath, bool) {
	var (
		knf *KeyNotFoundError
		tm  *TypeMismatchError
		pe  *PathError
	)
	switch {
	case errors.As(err, &knf):
		return knf.Path, true
	case errors.As(err, &tm):
		return tm.Path, true
	case errors.As(err, &pe):
		return pe.Path, true
	}
	return nil, false
}
