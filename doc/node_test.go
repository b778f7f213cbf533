package doc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGet(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"hello": FromFloat(3.5),
		"test":  FromInt(42),
		"name":  FromString("burner"),
	})
	if v := Get(obj, "hello"); v == nil || v.Type != NumberType {
		t.Fatalf("hello: %v", v)
	}
	if v := Get(obj, "missing"); v != nil {
		t.Fatalf("missing should be absent, got %v", v)
	}
}

func TestFloat(t *testing.T) {
	f, ok := FromFloat(3.5).Float()
	if !ok || f != 3.5 {
		t.Errorf("got %v %v", f, ok)
	}
	f, ok = FromInt(42).Float()
	if !ok || f != 42 {
		t.Errorf("got %v %v", f, ok)
	}
	if _, ok := FromString("3.5").Float(); ok {
		t.Error("string should not expose a float")
	}
	if _, ok := (*Node)(nil).Float(); ok {
		t.Error("nil should not expose a float")
	}
	raw := &Node{Type: NumberType, Number: "6.02e23"}
	f, ok = raw.Float()
	if !ok || f != 6.02e23 {
		t.Errorf("raw literal: got %v %v", f, ok)
	}
}

func TestCompare(t *testing.T) {
	a := FromMap(map[string]*Node{"a": FromInt(1), "b": FromString("x")})
	b := FromMap(map[string]*Node{"a": FromInt(1), "b": FromString("x")})
	c := FromMap(map[string]*Node{"a": FromInt(2), "b": FromString("x")})
	if Compare(a, b) != 0 {
		t.Error("equal objects compare nonzero")
	}
	if Compare(a, c) == 0 {
		t.Error("unequal objects compare zero")
	}
	if Compare(FromInt(3), FromFloat(3.0)) != 0 {
		t.Error("3 != 3.0")
	}
	if Compare(Null(), FromBool(false)) >= 0 {
		t.Error("null should rank below bool")
	}
}

func TestPath(t *testing.T) {
	root := FromMap(map[string]*Node{
		"geometry": FromMap(map[string]*Node{
			"domain_width": FromFloat(0.05),
		}),
		"samples": FromSlice([]*Node{FromInt(1), FromInt(2)}),
	})
	n, err := root.GetPath("geometry.domain_width")
	if err != nil || n == nil {
		t.Fatalf("GetPath: %v %v", n, err)
	}
	if got := n.Path(); got != "$.geometry.domain_width" {
		t.Errorf("Path() = %q", got)
	}
	n, err = root.GetPath("$.samples[1]")
	if err != nil || n == nil {
		t.Fatalf("GetPath index: %v %v", n, err)
	}
	if v, _ := n.Int(); v != 2 {
		t.Errorf("samples[1] = %v", v)
	}
	n, err = root.GetPath("geometry.missing")
	if err != nil || n != nil {
		t.Errorf("absent path should be nil, nil; got %v %v", n, err)
	}
	if _, err = root.GetPath("samples.x"); err == nil {
		t.Error("field lookup on array should error")
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	in := map[string]any{
		"mode":      "single",
		"radiation": true,
		"geometry": map[string]any{
			"domain_width": 0.05,
		},
		"counts": []any{int64(1), 2.5, nil},
	}
	n, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	out := ToAny(n)
	want := map[string]any{
		"mode":      "single",
		"radiation": true,
		"geometry": map[string]any{
			"domain_width": 0.05,
		},
		"counts": []any{int64(1), 2.5, nil},
	}
	if diff := cmp.Diff(want, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	orig := FromMap(map[string]*Node{"a": FromFloat(1.5)})
	cp := orig.Clone()
	*cp.Values[0].Float64 = 9
	if f, _ := Get(orig, "a").Float(); f != 1.5 {
		t.Error("clone shares number storage")
	}
	if Compare(orig, cp) == 0 {
		t.Error("mutated clone should differ")
	}
}
