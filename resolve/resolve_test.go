package resolve

import (
	"errors"
	"testing"

	"github.com/Qwlouse/konfig"
	"github.com/google/go-cmp/cmp"
)

var doc = map[string]any{
	"server": map[string]any{
		"hosts": []any{
			map[string]any{"name": "a", "port": 80},
			map[string]any{"name": "b", "port": 8080},
			map[string]any{"name": "c", "port": 443},
		},
		"bind address": "0.0.0.0",
	},
	"debug": false,
}

func get(t *testing.T, path string) (any, error) {
	t.Helper()
	p, err := konfig.Parse(path)
	if err != nil {
		t.Fatalf("%q: %v", path, err)
	}
	return Get(doc, p)
}

func TestGet(t *testing.T) {
	pts := []struct {
		path string
		want any
	}{
		{path: "", want: doc},
		{path: "debug", want: false},
		{path: "server['bind address']", want: "0.0.0.0"},
		{path: "server.hosts[0].name", want: "a"},
		{path: "server.hosts[-1].port", want: 443},
		{path: "server.hosts[1:]", want: []any{
			map[string]any{"name": "b", "port": 8080},
			map[string]any{"name": "c", "port": 443},
		}},
		{path: "server.hosts[::-2]", want: []any{
			map[string]any{"name": "c", "port": 443},
			map[string]any{"name": "a", "port": 80},
		}},
		{path: "server.hosts[5:]", want: []any{}},
	}
	for _, pt := range pts {
		got, err := get(t, pt.path)
		if err != nil {
			t.Errorf("%q: %v", pt.path, err)
			continue
		}
		if d := cmp.Diff(pt.want, got); d != "" {
			t.Errorf("%q: (-want +got)\n%s", pt.path, d)
		}
	}
}

func TestGetErrs(t *testing.T) {
	pts := []struct {
		path string
		e    error
		seg  int
	}{
		{path: "nope", e: ErrNotFound, seg: 0},
		{path: "server.nope", e: ErrNotFound, seg: 1},
		{path: "server.hosts[9]", e: ErrRange, seg: 2},
		{path: "server.hosts[-4]", e: ErrRange, seg: 2},
		{path: "server[0]", e: ErrContainer, seg: 1},
		{path: "debug.x", e: ErrContainer, seg: 1},
		{path: "server.hosts.x", e: ErrContainer, seg: 2},
		{path: "server[None]", e: ErrContainer, seg: 1},
	}
	for _, pt := range pts {
		_, err := get(t, pt.path)
		if err == nil {
			t.Errorf("%q: expected error", pt.path)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.path, err, pt.e)
		}
		var re *Error
		if !errors.As(err, &re) {
			t.Errorf("%q: error carries no location", pt.path)
			continue
		}
		if re.Seg != pt.seg {
			t.Errorf("%q: failed at segment %d, want %d", pt.path, re.Seg, pt.seg)
		}
	}
}
