package parse

import (
	"errors"
	"testing"

	"github.com/Qwlouse/konfig/key"
)

func TestParseOK(t *testing.T) {
	pts := []struct {
		in   string
		keys []key.Key
	}{
		{
			in:   "",
			keys: []key.Key{},
		},
		{
			in:   "a",
			keys: []key.Key{key.String("a")},
		},
		{
			in:   "a.b.c",
			keys: []key.Key{key.String("a"), key.String("b"), key.String("c")},
		},
		{
			in:   "a.True.None",
			keys: []key.Key{key.String("a"), key.String("True"), key.String("None")},
		},
		{
			in:   "[0]",
			keys: []key.Key{key.Int(0)},
		},
		{
			in:   "[-1]",
			keys: []key.Key{key.Int(-1)},
		},
		{
			in:   "[0x1f]",
			keys: []key.Key{key.Int(31)},
		},
		{
			in:   "[0o17]",
			keys: []key.Key{key.Int(15)},
		},
		{
			in:   "[0b101]",
			keys: []key.Key{key.Int(5)},
		},
		{
			in:   "[1.5]",
			keys: []key.Key{key.Float(1.5)},
		},
		{
			in:   "[.5]",
			keys: []key.Key{key.Float(0.5)},
		},
		{
			in:   "[-1e-4]",
			keys: []key.Key{key.Float(-1e-4)},
		},
		{
			in:   "[2j]",
			keys: []key.Key{key.Complex(2i)},
		},
		{
			in:   "[-2j]",
			keys: []key.Key{key.Complex(-2i)},
		},
		{
			in:   "[(1+2j)]",
			keys: []key.Key{key.Complex(1 + 2i)},
		},
		{
			in:   "[(1.5-0.5j)]",
			keys: []key.Key{key.Complex(1.5 - 0.5i)},
		},
		{
			in:   "[True]",
			keys: []key.Key{key.Bool(true)},
		},
		{
			in:   "[False]",
			keys: []key.Key{key.Bool(false)},
		},
		{
			in:   "[None]",
			keys: []key.Key{key.None()},
		},
		{
			in:   "['hi']",
			keys: []key.Key{key.String("hi")},
		},
		{
			in:   `["it's"]`,
			keys: []key.Key{key.String("it's")},
		},
		{
			in:   "['bind address']",
			keys: []key.Key{key.String("bind address")},
		},
		{
			in:   "[1:5]",
			keys: []key.Key{key.Slice(key.Bound(1), key.Bound(5), nil)},
		},
		{
			in:   "[1:5:2]",
			keys: []key.Key{key.Slice(key.Bound(1), key.Bound(5), key.Bound(2))},
		},
		{
			in:   "[:]",
			keys: []key.Key{key.Slice(nil, nil, nil)},
		},
		{
			in:   "[::2]",
			keys: []key.Key{key.Slice(nil, nil, key.Bound(2))},
		},
		{
			in:   "[1:]",
			keys: []key.Key{key.Slice(key.Bound(1), nil, nil)},
		},
		{
			in:   "[:-1]",
			keys: []key.Key{key.Slice(nil, key.Bound(-1), nil)},
		},
		{
			in:   "[1:2:]",
			keys: []key.Key{key.Slice(key.Bound(1), key.Bound(2), nil)},
		},
		{
			in:   "[()]",
			keys: []key.Key{key.Tuple()},
		},
		{
			in:   "[(1,)]",
			keys: []key.Key{key.Tuple(key.Int(1))},
		},
		{
			in:   "[(1,2)]",
			keys: []key.Key{key.Tuple(key.Int(1), key.Int(2))},
		},
		{
			in:   "[(1,2,)]",
			keys: []key.Key{key.Tuple(key.Int(1), key.Int(2))},
		},
		{
			in:   "[('a',None,1:2)]",
			keys: []key.Key{key.Tuple(key.String("a"), key.None(), key.Slice(key.Bound(1), key.Bound(2), nil))},
		},
		{
			in:   "[((1,),2)]",
			keys: []key.Key{key.Tuple(key.Tuple(key.Int(1)), key.Int(2))},
		},
		{
			in: "server.hosts[0]['bind address'][1:5:2]",
			keys: []key.Key{
				key.String("server"), key.String("hosts"), key.Int(0),
				key.String("bind address"), key.Slice(key.Bound(1), key.Bound(5), key.Bound(2)),
			},
		},
		{
			in:   "[0].x",
			keys: []key.Key{key.Int(0), key.String("x")},
		},
	}
	for i := range pts {
		pt := &pts[i]
		keys, err := Parse(pt.in)
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if len(keys) != len(pt.keys) {
			t.Errorf("%q: got %d keys, want %d", pt.in, len(keys), len(pt.keys))
			continue
		}
		for j := range keys {
			if !keys[j].Equal(pt.keys[j]) {
				t.Errorf("%q: key %d is %s, want %s", pt.in, j, keys[j], pt.keys[j])
			}
		}
	}
}

func TestBadParse(t *testing.T) {
	pts := []struct {
		in string
		e  error
	}{
		{in: ".a", e: ErrParse},
		{in: "a.", e: ErrParse},
		{in: "a..b", e: ErrParse},
		{in: "a b", e: nil},
		{in: "a .b", e: nil},
		{in: "[1", e: ErrParse},
		{in: "[]", e: ErrParse},
		{in: "[1]]", e: ErrParse},
		{in: "a[1:2:3:4]", e: ErrSlice},
		{in: "[1:2.5]", e: ErrParse},
		{in: "[(1)]", e: ErrTuple},
		{in: "[(1,", e: ErrTuple},
		{in: "[(1 ,2)]", e: nil},
		{in: "[('a'+2j)]", e: ErrComplex},
		{in: "[(2j)]", e: ErrComplex},
		{in: "[(0x1f+2j)]", e: ErrComplex},
		{in: "[(0b1-2j)]", e: ErrComplex},
		{in: "[(1+2)]", e: ErrComplex},
		{in: "[(1+'a')]", e: ErrComplex},
		{in: "[9223372036854775808]", e: ErrNumberRange},
		{in: "['x]", e: nil},
		{in: "[.b]", e: nil},
		{in: "a[b]", e: ErrParse},
		{in: "server.'bind address'", e: ErrParse},
	}
	for _, pt := range pts {
		_, err := Parse(pt.in)
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if pt.e != nil && !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
	}
}
