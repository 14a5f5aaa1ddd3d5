package jv

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/token"
)

// Decodable is implemented by types which decode themselves from a view,
// typically by decoding their fields one key at a time.
type Decodable interface {
	DecodeView(View) error
}

// Decode converts the node of v to a T.
//
// If v holds an error, that error is returned.  Otherwise a decoder
// registered for T is used if there is one, then the built in decoders for
// strings, bools, numeric types, Number, *big.Int, any, View and *ir.Node,
// then Decodable.  A node of the wrong type gives a *TypeMismatchError
// with the path of v.
//
// Decodable is found through *T, so a type with pointer receivers decodes
// as Decode[S]; Decode[*S] needs RegisterAggregates[S].
//
// The Config of v, or the default at the time of the call, is used for the
// whole decode including the views a registered decoder or DecodeView
// derives from v.
func Decode[T any](v View) (T, error) {
	var res T
	if v.err != nil {
		return res, v.err
	}
	v = v.pinned()
	if f, ok := lookupDecoder(reflect.TypeFor[T]()); ok {
		x, err := f(v)
		if err != nil {
			return res, v.decodeErr(reflect.TypeFor[T](), wrapPath(v, err))
		}
		res, _ = x.(T)
		return res, nil
	}
	if err := decodeBuiltin(v, &res); err != nil {
		return res, v.decodeErr(reflect.TypeFor[T](), err)
	}
	return res, nil
}

// DecodeSlice decodes the array v element by element.  The first element
// which fails to decode fails the whole slice.
func DecodeSlice[T any](v View) ([]T, error) {
	nodes, err := v.pinned().Nodes()
	if err != nil {
		return nil, err
	}
	res := make([]T, 0, len(nodes))
	for _, elt := range nodes {
		x, err := Decode[T](elt)
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}

// DecodeMap decodes the object v field by field.  The first field which
// fails to decode fails the whole map.
func DecodeMap[T any](v View) (map[string]T, error) {
	v = v.pinned()
	keys, err := v.Keys()
	if err != nil {
		return nil, err
	}
	res := make(map[string]T, len(keys))
	for _, k := range keys {
		x, err := Decode[T](v.Key(k))
		if err != nil {
			return nil, err
		}
		res[k] = x
	}
	return res, nil
}

// DecodeOptional returns nil for null and otherwise a pointer to the
// decoded T.
func DecodeOptional[T any](v View) (*T, error) {
	if v.err != nil {
		return nil, v.err
	}
	v = v.pinned()
	if v.node.Type == ir.NullType {
		return nil, nil
	}
	x, err := Decode[T](v)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

func decodeBuiltin(v View, p any) error {
	var err error
	switch x := p.(type) {
	case *string:
		s, ok := v.Config().decodeString(v.node)
		if !ok {
			return v.mismatch("String")
		}
		*x = s
	case *bool:
		b, ok := v.Config().decodeBool(v.node)
		if !ok {
			return v.mismatch("Bool")
		}
		*x = b
	case *int:
		*x, err = decodeSigned[int](v, strconv.IntSize)
	case *int8:
		*x, err = decodeSigned[int8](v, 8)
	case *int16:
		*x, err = decodeSigned[int16](v, 16)
	case *int32:
		*x, err = decodeSigned[int32](v, 32)
	case *int64:
		*x, err = decodeSigned[int64](v, 64)
	case *uint:
		*x, err = decodeUnsigned[uint](v, strconv.IntSize)
	case *uint8:
		*x, err = decodeUnsigned[uint8](v, 8)
	case *uint16:
		*x, err = decodeUnsigned[uint16](v, 16)
	case *uint32:
		*x, err = decodeUnsigned[uint32](v, 32)
	case *uint64:
		*x, err = decodeUnsigned[uint64](v, 64)
	case *float32:
		var f float64
		f, err = decodeFloat(v, 32, "Float32")
		*x = float32(f)
	case *float64:
		*x, err = decodeFloat(v, 64, "Float64")
	case *Number:
		text, ok := v.Config().decodeNumber(v.node)
		if !ok || !token.IsNumber(text) {
			return v.mismatch("Number")
		}
		*x = Number(text)
	case **big.Int:
		text, ok := v.Config().decodeNumber(v.node)
		if !ok {
			return v.mismatch("BigInt")
		}
		b, bErr := Number(text).BigInt()
		if bErr != nil {
			return v.mismatch("BigInt")
		}
		*x = b
	case *View:
		*x = v
	case **ir.Node:
		*x = v.node
	case *any:
		*x = ir.ToAny(v.node)
	case Decodable:
		err = x.DecodeView(v)
		if err != nil {
			err = wrapPath(v, err)
		}
	default:
		return ErrNoDecoder
	}
	return err
}

func decodeSigned[I int | int8 | int16 | int32 | int64](v View, bits int) (I, error) {
	name := kindName[I]()
	text, ok := v.Config().decodeNumber(v.node)
	if !ok {
		return 0, v.mismatch(name)
	}
	neg, digits, ok := integralText(text, maxInt64Digits)
	if !ok {
		return 0, v.mismatch(name)
	}
	i, err := strconv.ParseInt(signed(neg, digits), 10, bits)
	if err != nil {
		return 0, v.mismatch(name)
	}
	return I(i), nil
}

func decodeUnsigned[U uint | uint8 | uint16 | uint32 | uint64](v View, bits int) (U, error) {
	name := kindName[U]()
	text, ok := v.Config().decodeNumber(v.node)
	if !ok {
		return 0, v.mismatch(name)
	}
	neg, digits, ok := integralText(text, maxInt64Digits)
	if !ok || (neg && digits != "0") {
		return 0, v.mismatch(name)
	}
	u, err := strconv.ParseUint(digits, 10, bits)
	if err != nil {
		return 0, v.mismatch(name)
	}
	return U(u), nil
}

func decodeFloat(v View, bits int, name string) (float64, error) {
	text, ok := v.Config().decodeNumber(v.node)
	if !ok || !token.IsNumber(text) {
		return 0, v.mismatch(name)
	}
	f, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return 0, v.mismatch(name)
	}
	return f, nil
}

// kindName gives "Int64" for int64 and so on.
func kindName[T any]() string {
	k := reflect.TypeFor[T]().Kind().String()
	return strings.ToUpper(k[:1]) + k[1:]
}

// pinned returns v with the default Config fixed, so that views derived
// from it keep one snapshot, and a nil node read as null.
func (v View) pinned() View {
	if v.err == nil && v.node == nil {
		v.node = ir.Null()
	}
	if v.cfg == nil {
		v.cfg = DefaultConfig()
	}
	return v
}

// wrapPath attaches the path of v to errors which do not carry one.
func wrapPath(v View, err error) error {
	if _, ok := ErrorPath(err); ok || isViewErr(err) {
		return err
	}
	return &PathError{Path: v.Path(), Err: err}
}

func (v View) decodeErr(t reflect.Type, err error) error {
	if err == ErrNoDecoder {
		err = &PathError{Path: v.Path(), Err: fmt.Errorf("%w for %s", ErrNoDecoder, t)}
	}
	if debug.Decode() {
		debug.Logf("decode %s at %s: %v\n", t, v.path, err)
	}
	return err
}
