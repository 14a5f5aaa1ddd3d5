package jv

import (
	"maps"
	"math/big"
	"net/url"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/signadot/jv/ir"
)

type decoderFunc func(View) (any, error)

// the registry is replaced as a whole on every registration, readers never
// lock.
var (
	regMu    sync.Mutex
	registry atomic.Pointer[map[reflect.Type]decoderFunc]
)

func init() {
	registry.Store(&map[reflect.Type]decoderFunc{})

	Register(decodeURL)
	Register(decodeTime)

	RegisterAggregates[string]()
	RegisterAggregates[bool]()
	RegisterAggregates[int]()
	RegisterAggregates[int8]()
	RegisterAggregates[int16]()
	RegisterAggregates[int32]()
	RegisterAggregates[int64]()
	RegisterAggregates[uint]()
	RegisterAggregates[uint8]()
	RegisterAggregates[uint16]()
	RegisterAggregates[uint32]()
	RegisterAggregates[uint64]()
	RegisterAggregates[float32]()
	RegisterAggregates[float64]()
	RegisterAggregates[Number]()
	RegisterAggregates[*big.Int]()
	RegisterAggregates[any]()
	RegisterAggregates[View]()
	RegisterAggregates[*ir.Node]()
	RegisterAggregates[*url.URL]()
	RegisterAggregates[time.Time]()
}

// Register makes Decode[T] use f.  f is called only on views holding a
// node.  Registering a type again replaces its decoder.
func Register[T any](f func(View) (T, error)) {
	if f == nil {
		panic("jv: Register with nil decoder")
	}
	register(reflect.TypeFor[T](), func(v View) (any, error) {
		return f(v)
	})
}

// RegisterAggregates registers []T, map[string]T and *T, decoded element
// by element with Decode[T].  A *T is nil for null.
func RegisterAggregates[T any]() {
	Register(DecodeSlice[T])
	Register(DecodeMap[T])
	Register(DecodeOptional[T])
}

// Registered reports whether Decode[T] uses a registered decoder.
func Registered[T any]() bool {
	_, ok := lookupDecoder(reflect.TypeFor[T]())
	return ok
}

func register(t reflect.Type, f decoderFunc) {
	regMu.Lock()
	defer regMu.Unlock()
	m := maps.Clone(*registry.Load())
	m[t] = f
	registry.Store(&m)
}

func lookupDecoder(t reflect.Type) (decoderFunc, bool) {
	f, ok := (*registry.Load())[t]
	return f, ok
}

func decodeURL(v View) (*url.URL, error) {
	s, err := Decode[string](v)
	if err != nil {
		return nil, err
	}
	return url.Parse(s)
}

// decodeTime reads RFC 3339 timestamps.
func decodeTime(v View) (time.Time, error) {
	s, err := Decode[string](v)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, s)
}
