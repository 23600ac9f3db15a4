package key

import (
	"math"
	"strconv"
	"strings"

	"github.com/Qwlouse/konfig/token"
)

// String renders the canonical literal form of the key: the text that
// appears between brackets in a path's canonical form. Numbers
// normalize to decimal, strings quote with token.Quote, slices render
// their colon body, tuples keep the single-element trailing comma.
func (k Key) String() string {
	return string(k.AppendLiteral(nil))
}

// AppendLiteral appends the canonical literal form to d.
func (k Key) AppendLiteral(d []byte) []byte {
	switch k.kind {
	case IntKind:
		return strconv.AppendInt(d, k.i, 10)
	case FloatKind:
		return appendFloat(d, k.f)
	case ComplexKind:
		return appendComplex(d, k.c)
	case BoolKind:
		if k.b {
			return append(d, "True"...)
		}
		return append(d, "False"...)
	case NoneKind:
		return append(d, "None"...)
	case StringKind:
		return append(d, token.Quote(k.s)...)
	case SliceKind:
		if k.start != nil {
			d = strconv.AppendInt(d, *k.start, 10)
		}
		d = append(d, ':')
		if k.stop != nil {
			d = strconv.AppendInt(d, *k.stop, 10)
		}
		if k.step != nil {
			d = append(d, ':')
			d = strconv.AppendInt(d, *k.step, 10)
		}
		return d
	case TupleKind:
		d = append(d, '(')
		for i, e := range k.elems {
			if i > 0 {
				d = append(d, ',')
			}
			d = e.AppendLiteral(d)
		}
		if len(k.elems) == 1 {
			d = append(d, ',')
		}
		return append(d, ')')
	default:
		return append(d, "<invalid>"...)
	}
}

// appendFloat renders a float so the text re-parses as a float: the
// shortest decimal form, forced to carry a '.' or an exponent.
// Non-finite values have no grammar spelling and do not round-trip.
func appendFloat(d []byte, f float64) []byte {
	if s, ok := nonFinite(f); ok {
		return append(d, s...)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	d = append(d, s...)
	if !strings.ContainsAny(s, ".eE") {
		d = append(d, ".0"...)
	}
	return d
}

// appendComplexPart renders one component of a complex literal;
// integral values stay bare ("1", not "1.0").
func appendComplexPart(d []byte, f float64) []byte {
	if s, ok := nonFinite(f); ok {
		return append(d, s...)
	}
	return append(d, strconv.FormatFloat(f, 'g', -1, 64)...)
}

func appendComplex(d []byte, c complex128) []byte {
	re, im := real(c), imag(c)
	if re == 0 && !math.Signbit(re) {
		d = appendComplexPart(d, im)
		return append(d, 'j')
	}
	d = append(d, '(')
	d = appendComplexPart(d, re)
	imText := appendComplexPart(nil, im)
	if imText[0] != '-' {
		d = append(d, '+')
	}
	d = append(d, imText...)
	return append(d, 'j', ')')
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsInf(f, 1):
		return "inf", true
	case math.IsInf(f, -1):
		return "-inf", true
	case math.IsNaN(f):
		return "nan", true
	default:
		return "", false
	}
}
