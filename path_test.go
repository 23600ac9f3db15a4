package konfig

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Qwlouse/konfig/key"
)

func mustParse(t *testing.T, s string) *Path {
	t.Helper()
	p, err := Parse(s)
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	return p
}

func TestCanonical(t *testing.T) {
	pts := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "a.b", want: "a.b"},
		{in: "a['b']", want: "a.b"},
		{in: `a["b"].c`, want: "a.b.c"},
		{in: "['bind address']", want: "['bind address']"},
		{in: `["it's"]`, want: `["it's"]`},
		{in: "[0].x[1:5:2]", want: "[0].x[1:5:2]"},
		{in: "[1:2:]", want: "[1:2]"},
		{in: "[0x1f]", want: "[31]"},
		{in: "[-0x10]", want: "[-16]"},
		{in: "[1.50]", want: "[1.5]"},
		{in: "[1e2]", want: "[100.0]"},
		{in: "[2j]", want: "[2j]"},
		{in: "[(1+2j)]", want: "[(1+2j)]"},
		{in: "[()]", want: "[()]"},
		{in: "[(1,)]", want: "[(1,)]"},
		{in: "[(1,2,)]", want: "[(1,2)]"},
		{in: "[None]", want: "[None]"},
		{in: "[True].x", want: "[True].x"},
		{in: "a.True", want: "a.True"},
		{in: "[:]", want: "[:]"},
	}
	for _, pt := range pts {
		p := mustParse(t, pt.in)
		if got := p.String(); got != pt.want {
			t.Errorf("%q: got %q, want %q", pt.in, got, pt.want)
			continue
		}
		rt := mustParse(t, p.String())
		if !rt.Equal(p) {
			t.Errorf("%q: canonical form %q parses to a different path", pt.in, p.String())
		}
	}
}

func TestNew(t *testing.T) {
	p, err := New("server", "hosts", 0, "bind address", key.Slice(key.Bound(1), key.Bound(5), key.Bound(2)))
	if err != nil {
		t.Fatal(err)
	}
	want := "server.hosts[0]['bind address'][1:5:2]"
	if p.String() != want {
		t.Errorf("got %q, want %q", p.String(), want)
	}
	rt := mustParse(t, p.String())
	if !rt.Equal(p) {
		t.Errorf("%q does not round-trip", p.String())
	}

	for _, pt := range []struct {
		part any
		want string
	}{
		{part: key.Tuple(), want: "[()]"},
		{part: nil, want: "[None]"},
		{part: 0, want: "[0]"},
	} {
		p, err := New(pt.part)
		if err != nil {
			t.Fatal(err)
		}
		if p.String() != pt.want {
			t.Errorf("got %q, want %q", p.String(), pt.want)
		}
		if !mustParse(t, p.String()).Equal(p) {
			t.Errorf("%q does not round-trip", p.String())
		}
	}

	if _, err := New("a", []int{1}); err == nil {
		t.Error("expected error for slice part")
	} else if !errors.Is(err, key.ErrBadKey) {
		t.Errorf("got %v, want %v", err, key.ErrBadKey)
	}
	if _, err := FromKeys(key.Int(1), key.Key{}); !errors.Is(err, key.ErrBadKey) {
		t.Errorf("got %v, want %v", err, key.ErrBadKey)
	}
}

func TestEqualHash(t *testing.T) {
	a := mustParse(t, "a.b[0]")
	b, err := New("a", "b", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("%s != %s", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Error("equal paths hash apart")
	}
	c := mustParse(t, "a.b[1]")
	if a.Equal(c) {
		t.Errorf("%s == %s", a, c)
	}
	if a.Equal(nil) {
		t.Error("path equals nil")
	}
	var nilPath *Path
	if !nilPath.Equal(nil) {
		t.Error("nil should equal nil")
	}
	if a.EqualAny("a.b[0]") {
		t.Error("path equals its string")
	}
	if !a.EqualAny(b) {
		t.Error("EqualAny rejects an equal path")
	}
}

// Equal paths work as identical map keys through their hash.
func TestHashAsMapKey(t *testing.T) {
	m := map[uint64]string{}
	p := mustParse(t, "net['bind address'][(1,2)]")
	m[p.Hash()] = "v"
	q, err := New("net", "bind address", key.Tuple(key.Int(1), key.Int(2)))
	if err != nil {
		t.Fatal(err)
	}
	if m[q.Hash()] != "v" {
		t.Error("equal path missed the map entry")
	}
}

func TestSequence(t *testing.T) {
	p := mustParse(t, "a.b.c.d.e")
	if p.Len() != 5 {
		t.Fatalf("len %d, want 5", p.Len())
	}
	if s, _ := p.At(0).Str(); s != "a" {
		t.Errorf("At(0) = %q", s)
	}
	if s, _ := p.At(-1).Str(); s != "e" {
		t.Errorf("At(-1) = %q", s)
	}
	sub := p.Sub(1, 3)
	if len(sub) != 2 {
		t.Fatalf("sub len %d, want 2", len(sub))
	}
	if s, _ := sub[0].Str(); s != "b" {
		t.Errorf("sub[0] = %q", s)
	}
	rev, err := p.SubStep(nil, nil, key.Bound(-2))
	if err != nil {
		t.Fatal(err)
	}
	if len(rev) != 3 {
		t.Fatalf("rev len %d, want 3", len(rev))
	}
	if s, _ := rev[0].Str(); s != "e" {
		t.Errorf("rev[0] = %q", s)
	}
	if _, err := p.SubStep(nil, nil, key.Bound(0)); !errors.Is(err, key.ErrZeroStep) {
		t.Errorf("got %v, want %v", err, key.ErrZeroStep)
	}
}

func TestText(t *testing.T) {
	p := mustParse(t, "a[0]['b c']")
	d, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var q Path
	if err := q.UnmarshalText(d); err != nil {
		t.Fatal(err)
	}
	if !q.Equal(p) {
		t.Errorf("%s does not survive text round-trip", p)
	}
	if err := q.UnmarshalText([]byte("a..b")); err == nil {
		t.Error("expected error")
	}
}

// Randomized round-trip: any constructible path reparses from its
// canonical form to an equal path.
func TestRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		keys := make([]key.Key, rnd.Intn(6))
		for j := range keys {
			keys[j] = randKey(rnd, 2)
		}
		p, err := FromKeys(keys...)
		if err != nil {
			t.Fatal(err)
		}
		rt, err := Parse(p.String())
		if err != nil {
			t.Fatalf("%q: %v", p.String(), err)
		}
		if !rt.Equal(p) {
			t.Fatalf("%q reparses differently as %q", p.String(), rt.String())
		}
		if rt.Hash() != p.Hash() {
			t.Fatalf("%q: hash changed across round-trip", p.String())
		}
	}
}

func randKey(rnd *rand.Rand, depth int) key.Key {
	kinds := 7
	if depth > 0 {
		kinds = 8
	}
	switch rnd.Intn(kinds) {
	case 0:
		return key.Int(rnd.Int63n(2000) - 1000)
	case 1:
		return key.Float(float64(rnd.Int63n(2000)-1000) / 16)
	case 2:
		return key.Complex(complex(float64(rnd.Intn(20)-10), float64(rnd.Intn(20)-10)))
	case 3:
		return key.Bool(rnd.Intn(2) == 0)
	case 4:
		return key.None()
	case 5:
		return key.String(randString(rnd))
	case 6:
		return key.Slice(randBound(rnd), randBound(rnd), randBound(rnd))
	default:
		elems := make([]key.Key, rnd.Intn(3))
		for i := range elems {
			elems[i] = randKey(rnd, depth-1)
		}
		return key.Tuple(elems...)
	}
}

func randBound(rnd *rand.Rand) *int64 {
	if rnd.Intn(2) == 0 {
		return nil
	}
	return key.Bound(rnd.Int63n(20) - 10)
}

const randAlphabet = "ab_ '\"\\\n0λ"

func randString(rnd *rand.Rand) string {
	rs := []rune(randAlphabet)
	n := rnd.Intn(8)
	out := make([]rune, n)
	for i := range out {
		out[i] = rs[rnd.Intn(len(rs))]
	}
	return string(out)
}
