package libdiff

import (
	"testing"

	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/parse"
)

func mustParse(t *testing.T, text string) *doc.Node {
	t.Helper()
	n, err := parse.ParseString(text)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestDiffEqual(t *testing.T) {
	a := mustParse(t, `{"hello": 3.5, "test": 42, "arr": [1, 2]}`)
	b := mustParse(t, `{"hello": 3.5, "test": 42, "arr": [1, 2]}`)
	if d := Diff(a, b); d != nil {
		t.Errorf("expected nil diff, got %v", d)
	}
}

func TestDiffLeafChange(t *testing.T) {
	a := mustParse(t, `{"hello": 3.5, "test": 42}`)
	b := mustParse(t, `{"hello": 4.5, "test": 42}`)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("expected a diff")
	}
	if doc.Get(d, "test") != nil {
		t.Error("unchanged field in diff")
	}
	h := doc.Get(d, "hello")
	if h == nil {
		t.Fatal("changed field missing from diff")
	}
	f, ok := doc.Get(h, FromField).Float()
	if !ok || f != 3.5 {
		t.Errorf("~from %v %v", f, ok)
	}
	f, ok = doc.Get(h, ToField).Float()
	if !ok || f != 4.5 {
		t.Errorf("~to %v %v", f, ok)
	}
}

func TestDiffFieldAddRemove(t *testing.T) {
	a := mustParse(t, `{"a": 1, "b": 2}`)
	b := mustParse(t, `{"b": 2, "c": 3}`)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("expected a diff")
	}
	aDiff := doc.Get(d, "a")
	if aDiff == nil {
		t.Fatal("removed field missing from diff")
	}
	if doc.Get(aDiff, ToField).Type != doc.NullType {
		t.Error("removed field should have null ~to")
	}
	cDiff := doc.Get(d, "c")
	if cDiff == nil {
		t.Fatal("added field missing from diff")
	}
	if doc.Get(cDiff, FromField).Type != doc.NullType {
		t.Error("added field should have null ~from")
	}
}

func TestDiffNested(t *testing.T) {
	a := mustParse(t, `{"geometry": {"domain_width": 0.02, "type": "free_flame"}}`)
	b := mustParse(t, `{"geometry": {"domain_width": 0.03, "type": "free_flame"}}`)
	d := Diff(a, b)
	w, err := d.GetPath("geometry.domain_width.~to")
	if err != nil || w == nil {
		t.Fatalf("nested diff: %v, %v", w, err)
	}
	f, ok := w.Float()
	if !ok || f != 0.03 {
		t.Errorf("got %v %v", f, ok)
	}
}

func TestDiffArray(t *testing.T) {
	a := mustParse(t, `{"xs": [1, 2, 3]}`)
	b := mustParse(t, `{"xs": [1, 5]}`)
	d := Diff(a, b)
	xs := doc.Get(d, "xs")
	if xs == nil || xs.Type != doc.ArrayType || len(xs.Values) != 3 {
		t.Fatalf("array diff %v", xs)
	}
	if xs.Values[0].Type != doc.NullType {
		t.Error("equal slot should be null")
	}
	f, ok := doc.Get(xs.Values[1], ToField).Float()
	if !ok || f != 5 {
		t.Errorf("slot 1 ~to %v %v", f, ok)
	}
	if doc.Get(xs.Values[2], ToField).Type != doc.NullType {
		t.Error("dropped element should have null ~to")
	}
}

func TestDiffTypeChange(t *testing.T) {
	a := mustParse(t, `{"v": 1}`)
	b := mustParse(t, `{"v": "one"}`)
	d := Diff(a, b)
	v := doc.Get(d, "v")
	if v == nil {
		t.Fatal("expected diff for type change")
	}
	if got := doc.Get(v, ToField); got.Type != doc.StringType || got.String != "one" {
		t.Errorf("~to %v", got)
	}
}
