package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote renders v as a JSON string literal.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// quoted returns the length in bytes of the string literal at the
// start of d, including both quotes.
func quoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnterminated
	}
	escaped := false
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case utf8.RuneError:
			if sz == 1 {
				return 0, ErrBadUTF8
			}
			escaped = false
		case '"':
			if !escaped {
				return i, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if i+4 > n {
					return i, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return i, ErrBadUnicode
				}
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			if unicode.IsControl(r) {
				return i, ErrUnicodeControl
			}
			if escaped {
				return i, ErrBadEscape
			}
			escaped = false
		}
	}
	return 0, ErrUnterminated
}

// QuotedToString decodes a JSON string literal, quotes included.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			r, sz := utf8.DecodeRune(d[i:])
			i += sz
			b.WriteRune(r)
			continue
		}
		i++
		switch d[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r := hexRune(d[i+1 : i+5])
			i += 4
			if utf16.IsSurrogate(r) && i+6 < n+1 && d[i+1] == '\\' && d[i+2] == 'u' {
				r2 := hexRune(d[i+3 : i+7])
				if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
					r = dec
					i += 6
				}
			}
			b.WriteRune(r)
		}
		i++
	}
	return b.String()
}

func hexRune(d []byte) rune {
	var r rune
	for _, c := range d {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		}
	}
	return r
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
