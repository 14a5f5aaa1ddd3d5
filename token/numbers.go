package token

// number scans a JSON number at the start of d, returning its length and
// whether it has a fraction or exponent part.
func number(d []byte) (int, bool, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, false, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i + 1, false, ErrNumber
	}
	i += digits
	f, err := fract(d[i:])
	if err != nil {
		return i + f, false, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return i + e, false, err
	}
	return i + e, f+e != 0, nil
}

// IsNumber reports whether all of v is a single JSON number.
func IsNumber(v string) bool {
	n, _, err := number([]byte(v))
	return err == nil && n == len(v)
}

// IsInteger reports whether v is a JSON number with neither fraction nor
// exponent.
func IsInteger(v string) bool {
	n, isFloat, err := number([]byte(v))
	return err == nil && n == len(v) && !isFloat
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) {
		switch d[i] {
		case '+', '-':
			i++
		}
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return i, ErrNumber
	}
	return n + i, nil
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 7159
		return 1, ErrNumber
	}
	return n + 1, nil
}
