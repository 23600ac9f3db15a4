// Package konfig provides Path, an immutable hashable address into
// nested configuration structures. A path combines dotted attribute
// access with bracketed literal keys:
//
//	server.hosts[0]['bind address']
//	matrix[1:5:2][(0,1)]
//
// Paths are values: once constructed they never change, compare
// structurally, and hash consistently, so they can index maps held by
// any consumer.
package konfig

import (
	"github.com/Qwlouse/konfig/key"
	"github.com/Qwlouse/konfig/parse"
	"github.com/Qwlouse/konfig/token"
)

// Path is an immutable ordered sequence of keys. Order is traversal
// order. The canonical string and hash are fixed at construction, so a
// Path may be shared across goroutines freely.
type Path struct {
	keys []key.Key
	str  string
	hash uint64
}

// New validates each part through key.Of and constructs a Path.
// Admissible parts are Go scalars, strings, nil, and key.Key values
// (slices and tuples are built with the key package constructors).
// The error names the first rejected part.
func New(parts ...any) (*Path, error) {
	keys := make([]key.Key, len(parts))
	for i, part := range parts {
		k, err := key.Of(part)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return newPath(keys), nil
}

// FromKeys constructs a Path from typed keys, revalidating each.
func FromKeys(keys ...key.Key) (*Path, error) {
	cp := make([]key.Key, len(keys))
	for i, k := range keys {
		if !k.Valid() {
			return nil, &key.BadKeyErr{Value: k}
		}
		cp[i] = k
	}
	return newPath(cp), nil
}

// Parse parses a path string per the grammar. The empty string is the
// empty path.
func Parse(text string) (*Path, error) {
	keys, err := parse.Parse(text)
	if err != nil {
		return nil, err
	}
	return newPath(keys), nil
}

func newPath(keys []key.Key) *Path {
	return &Path{
		keys: keys,
		str:  canonical(keys),
		hash: key.HashKeys(keys),
	}
}

func (p *Path) Len() int {
	return len(p.keys)
}

// At returns the key at index i. Negative indices count from the end.
// It panics when i is out of range.
func (p *Path) At(i int) key.Key {
	if i < 0 {
		i += len(p.keys)
	}
	return p.keys[i]
}

// Keys returns a copy of the key sequence.
func (p *Path) Keys() []key.Key {
	cp := make([]key.Key, len(p.keys))
	copy(cp, p.keys)
	return cp
}

// Sub returns the keys in [start, stop) with the slicing semantics of
// the addressed domain: negative bounds count from the end and
// out-of-range bounds clamp.
func (p *Path) Sub(start, stop int) []key.Key {
	s, e := int64(start), int64(stop)
	keys, _ := p.SubStep(&s, &e, nil)
	return keys
}

// SubStep is Sub with optional bounds and a step; nil bounds are
// omitted bounds. A zero step returns key.ErrZeroStep.
func (p *Path) SubStep(start, stop, step *int64) ([]key.Key, error) {
	i, j, st, err := key.Indices(start, stop, step, len(p.keys))
	if err != nil {
		return nil, err
	}
	var out []key.Key
	if st > 0 {
		for ; i < j; i += st {
			out = append(out, p.keys[i])
		}
	} else {
		for ; i > j; i += st {
			out = append(out, p.keys[i])
		}
	}
	return out, nil
}

// Equal reports structural equality of the key sequences. It is
// nil-safe on both sides.
func (p *Path) Equal(o *Path) bool {
	if p == nil || o == nil {
		return p == o
	}
	if len(p.keys) != len(o.keys) {
		return false
	}
	for i := range p.keys {
		if !p.keys[i].Equal(o.keys[i]) {
			return false
		}
	}
	return true
}

// EqualAny compares against an untyped value: false for anything that
// is not a Path, never panics.
func (p *Path) EqualAny(v any) bool {
	switch o := v.(type) {
	case *Path:
		return p.Equal(o)
	case Path:
		return p.Equal(&o)
	default:
		return false
	}
}

// Hash is a pure function of the key sequence: equal Paths hash
// equally for the life of the process.
func (p *Path) Hash() uint64 {
	return p.hash
}

// String returns the canonical form: identifier-like strings render as
// dotted segments, everything else as a bracketed literal, and the
// result never begins with a dot.
func (p *Path) String() string {
	return p.str
}

func canonical(keys []key.Key) string {
	var d []byte
	for _, k := range keys {
		d = appendSegment(d, k)
	}
	if len(d) > 0 && d[0] == '.' {
		d = d[1:]
	}
	return string(d)
}

func appendSegment(d []byte, k key.Key) []byte {
	if s, ok := k.Str(); ok && token.IsIdentifier(s) {
		return append(append(d, '.'), s...)
	}
	d = append(d, '[')
	d = k.AppendLiteral(d)
	return append(d, ']')
}

func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.str), nil
}

// UnmarshalText is the one mutating entry point, reserved for decoding
// into a fresh Path.
func (p *Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = *pp
	return nil
}
