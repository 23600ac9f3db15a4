package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanQuoted returns the byte length of the quoted string token
// starting at d[0] (the opening quote), including both quotes. Any
// character may be backslash-escaped; the body is consumed up to the
// first unescaped closing quote.
func scanQuoted(d []byte) (int, error) {
	qc := rune(d[0])
	escaped := false
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		i += sz
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == qc:
			return i, nil
		}
	}
	return 0, ErrUnterminated
}

// Unquote strips the surrounding quotes of a scanned string
// token and resolves backslash escapes. Recognized escapes are the
// quote characters, backslash, n, r, t, b, f, xNN and uNNNN; an
// unrecognized escape keeps its backslash.
func Unquote(d []byte) string {
	qc := rune(d[0])
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		if r == qc {
			break
		}
		if r != '\\' || i >= len(d) {
			b.WriteRune(r)
			continue
		}
		e, esz := utf8.DecodeRune(d[i:])
		i += esz
		switch e {
		case '\'', '"', '\\':
			b.WriteRune(e)
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'x':
			if v, ok := hexRune(d[i:], 2); ok {
				b.WriteRune(v)
				i += 2
				continue
			}
			b.WriteByte('\\')
			b.WriteRune(e)
		case 'u':
			if v, ok := hexRune(d[i:], 4); ok {
				b.WriteRune(v)
				i += 4
				continue
			}
			b.WriteByte('\\')
			b.WriteRune(e)
		default:
			b.WriteByte('\\')
			b.WriteRune(e)
		}
	}
	return b.String()
}

func hexRune(d []byte, n int) (rune, bool) {
	if len(d) < n {
		return 0, false
	}
	var v rune
	for _, c := range d[:n] {
		var x rune
		switch {
		case c >= '0' && c <= '9':
			x = rune(c - '0')
		case c >= 'a' && c <= 'f':
			x = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			x = rune(c-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | x
	}
	return v, true
}

// Quote renders s as a canonical quoted string literal. Single quotes
// are preferred; double quotes are used when the content contains a
// single quote but no double quote.
func Quote(s string) string {
	qc := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		qc = '"'
	}
	d := make([]byte, 0, len(s)+2)
	d = append(d, qc)
	for _, r := range s {
		switch r {
		case rune(qc):
			d = append(d, '\\', qc)
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				d = append(d, fmt.Sprintf("\\x%02x", r)...)
			case unicode.IsControl(r):
				d = append(d, fmt.Sprintf("\\u%04x", r)...)
			default:
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, qc)
	return string(d)
}
