package jv

import (
	"strings"
	"sync/atomic"

	"github.com/signadot/jv/ir"
)

// Config holds the coercions decoding consults before reporting a type
// mismatch.  Each decoder returns the converted value and whether the node
// was acceptable.  A nil field uses the default behavior.
//
// A Config must not be modified once it is in use; install a new one
// instead.
type Config struct {
	// StringDecoder converts a node to a string.
	StringDecoder func(*ir.Node) (string, bool)
	// BoolDecoder converts a node to a bool.
	BoolDecoder func(*ir.Node) (bool, bool)
	// NumberDecoder converts a node to number text, which is then parsed
	// as the requested numeric type.
	NumberDecoder func(*ir.Node) (string, bool)
}

var defaultConfig atomic.Pointer[Config]

func init() {
	defaultConfig.Store(NewConfig())
}

// NewConfig returns a Config with the default coercions: strings from
// strings only, numbers from numbers or strings, bools from bools or the
// strings "true" and "false".
func NewConfig() *Config {
	return &Config{
		StringDecoder: DecodeStringStrict,
		BoolDecoder:   DecodeBoolString,
		NumberDecoder: DecodeNumberString,
	}
}

// StrictConfig returns a Config with no coercions between types.
func StrictConfig() *Config {
	return &Config{
		StringDecoder: DecodeStringStrict,
		BoolDecoder:   DecodeBoolStrict,
		NumberDecoder: DecodeNumberStrict,
	}
}

// LenientConfig returns a Config which additionally reads numbers and
// bools as strings and accepts 1/0, yes/no and on/off as bools.
func LenientConfig() *Config {
	return &Config{
		StringDecoder: DecodeStringLenient,
		BoolDecoder:   DecodeBoolLenient,
		NumberDecoder: DecodeNumberString,
	}
}

// DefaultConfig returns the process wide Config.
func DefaultConfig() *Config {
	return defaultConfig.Load()
}

// SetDefaultConfig installs c as the process wide Config and returns the
// previous one.  Decodes already running keep the Config they started with.
func SetDefaultConfig(c *Config) *Config {
	if c == nil {
		c = NewConfig()
	}
	return defaultConfig.Swap(c)
}

func (c *Config) decodeString(n *ir.Node) (string, bool) {
	if c.StringDecoder == nil {
		return DecodeStringStrict(n)
	}
	return c.StringDecoder(n)
}

func (c *Config) decodeBool(n *ir.Node) (bool, bool) {
	if c.BoolDecoder == nil {
		return DecodeBoolString(n)
	}
	return c.BoolDecoder(n)
}

func (c *Config) decodeNumber(n *ir.Node) (string, bool) {
	if c.NumberDecoder == nil {
		return DecodeNumberString(n)
	}
	return c.NumberDecoder(n)
}

func DecodeStringStrict(n *ir.Node) (string, bool) {
	if n.Type != ir.StringType {
		return "", false
	}
	return n.String, true
}

func DecodeStringLenient(n *ir.Node) (string, bool) {
	switch n.Type {
	case ir.StringType:
		return n.String, true
	case ir.NumberType:
		return n.Number, true
	case ir.BoolType:
		if n.Bool {
			return "true", true
		}
		return "false", true
	}
	return "", false
}

func DecodeBoolStrict(n *ir.Node) (bool, bool) {
	if n.Type != ir.BoolType {
		return false, false
	}
	return n.Bool, true
}

// DecodeBoolString accepts bools and the exact strings "true" and "false".
func DecodeBoolString(n *ir.Node) (bool, bool) {
	switch n.Type {
	case ir.BoolType:
		return n.Bool, true
	case ir.StringType:
		switch n.String {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func DecodeBoolLenient(n *ir.Node) (bool, bool) {
	switch n.Type {
	case ir.BoolType:
		return n.Bool, true
	case ir.NumberType:
		switch n.Number {
		case "1":
			return true, true
		case "0":
			return false, true
		}
	case ir.StringType:
		switch strings.ToLower(strings.TrimSpace(n.String)) {
		case "true", "1", "yes", "on":
			return true, true
		case "false", "0", "no", "off":
			return false, true
		}
	}
	return false, false
}

func DecodeNumberStrict(n *ir.Node) (string, bool) {
	if n.Type != ir.NumberType {
		return "", false
	}
	return n.Number, true
}

// DecodeNumberString accepts numbers and strings.  A string is returned as
// is; whether it is a number is decided by the numeric decoder.
func DecodeNumberString(n *ir.Node) (string, bool) {
	switch n.Type {
	case ir.NumberType:
		return n.Number, true
	case ir.StringType:
		return n.String, true
	}
	return "", false
}
