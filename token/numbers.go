package token

// number scans a JSON numeric literal at the start of d, returning
// the literal's length and whether it has a fraction or exponent.
func number(d []byte) (int, bool, error) {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i = 1
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return 0, false, ErrNumberLeadingZero
	}
	i += digits
	f := fract(d[i:])
	e := exp(d[i+f:])
	if f+e == 0 {
		return i, false, nil
	}
	return i + f + e, true, nil
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
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
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
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
