package token

// Numeric lexical forms:
//
//	decimal  -?\d+            (no leading zeros)
//	hex      -?0x[0-9a-f]+    (case-insensitive)
//	octal    -?0o[0-7]+
//	binary   -?0b[01]+
//	float    -?(\d+\.\d*|\.\d+|\d+)(e[-+]?\d+)? with a '.' or exponent
//	imag     decimal or float with a trailing j
//
// The sign is only ever a leading '-'.

func scanNumber(d []byte) (TokenType, int, error) {
	i := 0
	n := len(d)
	if i < n && d[i] == '-' {
		i++
	}
	if i >= n {
		return 0, 0, ErrNumber
	}
	if d[i] == '0' && i+1 < n {
		switch d[i+1] {
		case 'x', 'X':
			k := hexDigits(d[i+2:])
			if k == 0 {
				return 0, 0, ErrNumber
			}
			return TInteger, i + 2 + k, nil
		case 'o', 'O':
			k := octDigits(d[i+2:])
			if k == 0 {
				return 0, 0, ErrNumber
			}
			return TInteger, i + 2 + k, nil
		case 'b', 'B':
			k := binDigits(d[i+2:])
			if k == 0 {
				return 0, 0, ErrNumber
			}
			return TInteger, i + 2 + k, nil
		}
	}
	digits := asciiDigits(d[i:])
	i += digits
	f := 0
	switch {
	case digits > 0:
		f = fract(d[i:])
	case i < n && d[i] == '.':
		k := asciiDigits(d[i+1:])
		if k == 0 {
			return 0, 0, ErrNumber
		}
		f = 1 + k
	default:
		return 0, 0, ErrNumber
	}
	i += f
	e := exp(d[i:])
	i += e
	if i < n && (d[i] == 'j' || d[i] == 'J') {
		return TImag, i + 1, nil
	}
	if f+e > 0 {
		return TFloat, i, nil
	}
	first := 0
	if d[0] == '-' {
		first = 1
	}
	if digits > 1 && d[first] == '0' {
		return 0, 0, ErrNumberLeadingZero
	}
	return TInteger, i, nil
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

func hexDigits(d []byte) int {
	i := 0
	for i < len(d) {
		c := d[i]
		if !asciiDigit(c) && !(c >= 'a' && c <= 'f') && !(c >= 'A' && c <= 'F') {
			return i
		}
		i++
	}
	return i
}

func octDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if d[i] < '0' || d[i] > '7' {
			return i
		}
		i++
	}
	return i
}

func binDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if d[i] != '0' && d[i] != '1' {
			return i
		}
		i++
	}
	return i
}

// fract consumes a fraction part. Digits after the dot are optional,
// so "1." is a float.
func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i >= len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
