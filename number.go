package jv

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/token"
)

// Number is the lexical text of a JSON number.  Decoding to Number keeps
// the text exactly as written, so 945.06 stays 945.06.
type Number string

func (n Number) String() string {
	return string(n)
}

func (n Number) Node() *ir.Node {
	return ir.FromNumber(string(n))
}

// Int64 returns n as an int64 if n denotes an integer in range, such as
// 12, 1.2e1 or 120e-1.
func (n Number) Int64() (int64, error) {
	neg, digits, ok := integralText(string(n), maxInt64Digits)
	if !ok {
		return 0, fmt.Errorf("%q is not an integer", string(n))
	}
	return strconv.ParseInt(signed(neg, digits), 10, 64)
}

func (n Number) Float64() (float64, error) {
	if !token.IsNumber(string(n)) {
		return 0, fmt.Errorf("%q is not a number", string(n))
	}
	return strconv.ParseFloat(string(n), 64)
}

// BigInt returns n as a big.Int if n denotes an integer.
func (n Number) BigInt() (*big.Int, error) {
	neg, digits, ok := integralText(string(n), maxBigDigits)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", string(n))
	}
	res, ok := new(big.Int).SetString(signed(neg, digits), 10)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", string(n))
	}
	return res, nil
}

const (
	maxInt64Digits = 20
	maxBigDigits   = 4096
)

// integralText reduces the JSON number s to the decimal digits of the
// integer it denotes.  It fails if s is not a number, has a non zero
// fractional part, or would need more than maxDigits digits.
func integralText(s string, maxDigits int) (bool, string, bool) {
	if !token.IsNumber(s) {
		return false, "", false
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	mant, expText := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, expText = s[:i], s[i+1:]
	}
	intPart, frac := mant, ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		intPart, frac = mant[:i], mant[i+1:]
	}
	digits := strings.TrimLeft(intPart+frac, "0")
	if digits == "" {
		return neg, "0", true
	}
	exp := 0
	if expText != "" {
		e, err := strconv.Atoi(strings.TrimPrefix(expText, "+"))
		if err != nil {
			// out of int range; only a zero mantissa reduces
			return false, "", false
		}
		// bounded before any arithmetic: beyond these the value has too
		// many digits or is a non zero fraction
		if e > maxDigits+len(frac) || e < -len(s) {
			return false, "", false
		}
		exp = e
	}
	exp -= len(frac)
	switch {
	case exp < 0:
		if exp < -len(digits) {
			return false, "", false
		}
		zeros := len(digits) - len(strings.TrimRight(digits, "0"))
		if -exp > zeros {
			return false, "", false
		}
		digits = digits[:len(digits)+exp]
	case exp > 0:
		if len(digits)+exp > maxDigits {
			return false, "", false
		}
		digits += strings.Repeat("0", exp)
	}
	if len(digits) > maxDigits {
		return false, "", false
	}
	return neg, digits, true
}

func signed(neg bool, digits string) string {
	if neg {
		return "-" + digits
	}
	return digits
}
