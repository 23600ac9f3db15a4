package key

import "errors"

var ErrZeroStep = errors.New("slice step cannot be zero")

// Indices resolves slice bounds against a sequence of length n,
// following the indices semantics of the addressed domain: negative
// bounds count from the end, out-of-range bounds clamp, omitted bounds
// default per step direction.
//
// The returned (i, j, st) triple iterates as: for i; i < j (st > 0) or
// i > j (st < 0); i += st.
func Indices(start, stop, step *int64, n int) (i, j, st int, err error) {
	st = 1
	if step != nil {
		st = int(*step)
	}
	if st == 0 {
		return 0, 0, 0, ErrZeroStep
	}
	if st > 0 {
		i = clampIndex(start, n, 0, n, 0)
		j = clampIndex(stop, n, 0, n, n)
	} else {
		i = clampIndex(start, n, -1, n-1, n-1)
		j = clampIndex(stop, n, -1, n-1, -1)
	}
	return i, j, st, nil
}

func clampIndex(p *int64, n, lo, hi, dflt int) int {
	if p == nil {
		return dflt
	}
	v := int(*p)
	if v < 0 {
		v += n
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
