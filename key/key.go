// Package key defines the admissible keys of a konfig path: scalar
// literals, slice triples and tuples of keys. A Key is an immutable
// tagged-union value; the zero Key is invalid and rejected by
// validation.
package key

// Kind discriminates the key kinds.
type Kind int

const (
	InvalidKind Kind = iota
	IntKind
	FloatKind
	ComplexKind
	BoolKind
	NoneKind
	StringKind
	SliceKind
	TupleKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		IntKind:     "Int",
		FloatKind:   "Float",
		ComplexKind: "Complex",
		BoolKind:    "Bool",
		NoneKind:    "None",
		StringKind:  "String",
		SliceKind:   "Slice",
		TupleKind:   "Tuple",
	}[k]
	if ok {
		return s
	}
	return "<invalid kind>"
}

// Key is one addressing step in a path. Keys are built through the
// constructors below or through Of; once built they are never
// modified.
type Key struct {
	kind Kind

	i int64
	f float64
	c complex128
	b bool
	s string

	start, stop, step *int64

	elems []Key
}

func Int(v int64) Key          { return Key{kind: IntKind, i: v} }
func Float(v float64) Key      { return Key{kind: FloatKind, f: v} }
func Complex(v complex128) Key { return Key{kind: ComplexKind, c: v} }
func Bool(v bool) Key          { return Key{kind: BoolKind, b: v} }
func None() Key                { return Key{kind: NoneKind} }
func String(v string) Key      { return Key{kind: StringKind, s: v} }

// Slice returns a slice key. Nil bounds are omitted bounds; a nil step
// renders without its colon. The bounds are copied.
func Slice(start, stop, step *int64) Key {
	return Key{
		kind:  SliceKind,
		start: copyBound(start),
		stop:  copyBound(stop),
		step:  copyBound(step),
	}
}

// Tuple returns a tuple key over the given elements, which may be
// empty. The elements are copied.
func Tuple(elems ...Key) Key {
	cp := make([]Key, len(elems))
	copy(cp, elems)
	return Key{kind: TupleKind, elems: cp}
}

// Bound is a convenience for slice bounds: Slice(Bound(1), Bound(5), nil).
func Bound(v int64) *int64 {
	return &v
}

func copyBound(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (k Key) Kind() Kind { return k.kind }

func (k Key) Int() (int64, bool)          { return k.i, k.kind == IntKind }
func (k Key) Float() (float64, bool)      { return k.f, k.kind == FloatKind }
func (k Key) Complex() (complex128, bool) { return k.c, k.kind == ComplexKind }
func (k Key) Bool() (bool, bool)          { return k.b, k.kind == BoolKind }
func (k Key) Str() (string, bool)         { return k.s, k.kind == StringKind }
func (k Key) IsNone() bool                { return k.kind == NoneKind }

// Bounds returns copies of the slice bounds.
func (k Key) Bounds() (start, stop, step *int64, ok bool) {
	if k.kind != SliceKind {
		return nil, nil, nil, false
	}
	return copyBound(k.start), copyBound(k.stop), copyBound(k.step), true
}

// Elems returns a copy of the tuple elements.
func (k Key) Elems() ([]Key, bool) {
	if k.kind != TupleKind {
		return nil, false
	}
	cp := make([]Key, len(k.elems))
	copy(cp, k.elems)
	return cp, true
}

// Valid reports whether the key, recursively through tuples, carries a
// known kind. Keys from constructors are always valid; the zero Key is
// not.
func (k Key) Valid() bool {
	switch k.kind {
	case IntKind, FloatKind, ComplexKind, BoolKind, NoneKind, StringKind, SliceKind:
		return true
	case TupleKind:
		for _, e := range k.elems {
			if !e.Valid() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports structural equality. Kinds participate in value
// identity: Bool(true) is not Int(1) and Int(1) is not Float(1).
func (k Key) Equal(o Key) bool {
	if k.kind != o.kind {
		return false
	}
	switch k.kind {
	case IntKind:
		return k.i == o.i
	case FloatKind:
		return k.f == o.f
	case ComplexKind:
		return k.c == o.c
	case BoolKind:
		return k.b == o.b
	case NoneKind:
		return true
	case StringKind:
		return k.s == o.s
	case SliceKind:
		return boundEq(k.start, o.start) && boundEq(k.stop, o.stop) && boundEq(k.step, o.step)
	case TupleKind:
		if len(k.elems) != len(o.elems) {
			return false
		}
		for i := range k.elems {
			if !k.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func boundEq(a, b *int64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	return *a == *b
}
