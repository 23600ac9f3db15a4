// Package resolve walks decoded documents, the map and slice trees
// produced by YAML or JSON unmarshalling, along a konfig.Path.
package resolve

import (
	"github.com/Qwlouse/konfig"
	"github.com/Qwlouse/konfig/debug"
	"github.com/Qwlouse/konfig/key"
)

// Get resolves p against doc and returns the addressed value. String
// keys index map[string]any, integer keys index []any with negative
// indices counting from the end, and slice keys take a subsequence of
// []any. Resolution stops at the first key that does not apply and
// returns a *Error locating the failure.
func Get(doc any, p *konfig.Path) (any, error) {
	cur := doc
	for i, k := range p.Keys() {
		next, err := step(cur, k, i)
		if err != nil {
			return nil, err
		}
		if debug.Resolve() {
			debug.Logf("resolve: %s -> %T", k, next)
		}
		cur = next
	}
	return cur, nil
}

func step(v any, k key.Key, seg int) (any, error) {
	switch k.Kind() {
	case key.StringKind:
		s, _ := k.Str()
		m, ok := v.(map[string]any)
		if !ok {
			return nil, errAt(ErrContainer, k, seg, v)
		}
		w, ok := m[s]
		if !ok {
			return nil, errAt(ErrNotFound, k, seg, v)
		}
		return w, nil
	case key.IntKind:
		n, _ := k.Int()
		sl, ok := v.([]any)
		if !ok {
			return nil, errAt(ErrContainer, k, seg, v)
		}
		i := n
		if i < 0 {
			i += int64(len(sl))
		}
		if i < 0 || i >= int64(len(sl)) {
			return nil, errAt(ErrRange, k, seg, v)
		}
		return sl[i], nil
	case key.SliceKind:
		start, stop, stp, _ := k.Bounds()
		sl, ok := v.([]any)
		if !ok {
			return nil, errAt(ErrContainer, k, seg, v)
		}
		i, j, st, err := key.Indices(start, stop, stp, len(sl))
		if err != nil {
			return nil, errAt(err, k, seg, v)
		}
		out := []any{}
		if st > 0 {
			for ; i < j; i += st {
				out = append(out, sl[i])
			}
		} else {
			for ; i > j; i += st {
				out = append(out, sl[i])
			}
		}
		return out, nil
	default:
		return nil, errAt(ErrContainer, k, seg, v)
	}
}
