package eval

import (
	"math"
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

func TestEvalArithmetic(t *testing.T) {
	root := mustParse(t, `{"a": 2, "b": 3, "c": "=a * b + 1"}`)
	if _, err := Eval(root, nil); err != nil {
		t.Fatal(err)
	}
	f, ok := doc.Get(root, "c").Float()
	if !ok || f != 7 {
		t.Errorf("got %v %v", f, ok)
	}
}

func TestEvalNested(t *testing.T) {
	root := mustParse(t, `{"w": 0.02, "geometry": {"half": "=w / 2"}}`)
	if _, err := Eval(root, nil); err != nil {
		t.Fatal(err)
	}
	geom := doc.Get(root, "geometry")
	f, ok := doc.Get(geom, "half").Float()
	if !ok || f != 0.01 {
		t.Errorf("got %v %v", f, ok)
	}
}

func TestEvalCallerEnv(t *testing.T) {
	root := mustParse(t, `{"t": "=base + 50"}`)
	if _, err := Eval(root, Env{"base": 300.0}); err != nil {
		t.Fatal(err)
	}
	f, ok := doc.Get(root, "t").Float()
	if !ok || f != 350 {
		t.Errorf("got %v %v", f, ok)
	}
}

func TestEvalPlainStringsPass(t *testing.T) {
	root := mustParse(t, `{"fuel": "CH4", "n": 1}`)
	if _, err := Eval(root, nil); err != nil {
		t.Fatal(err)
	}
	v := doc.Get(root, "fuel")
	if v.Type != doc.StringType || v.String != "CH4" {
		t.Errorf("got %v", v)
	}
}

func TestEvalSlpmToNdot(t *testing.T) {
	root := mustParse(t, `{"ndot": "=slpm_to_ndot(1.0) * 60.0 * 8.314 * 273.15"}`)
	if _, err := Eval(root, nil); err != nil {
		t.Fatal(err)
	}
	f, ok := doc.Get(root, "ndot").Float()
	if !ok || math.Abs(f-100) > 1e-9 {
		t.Errorf("got %v %v", f, ok)
	}
}

func TestEvalGetPath(t *testing.T) {
	root := mustParse(t, `{"geometry": {"domain_width": 0.02}, "copy": "=getpath(\"$.geometry.domain_width\")"}`)
	if _, err := Eval(root, nil); err != nil {
		t.Fatal(err)
	}
	f, ok := doc.Get(root, "copy").Float()
	if !ok || f != 0.02 {
		t.Errorf("got %v %v", f, ok)
	}
}

func TestEvalBadExpr(t *testing.T) {
	root := mustParse(t, `{"x": "=1 +"}`)
	if _, err := Eval(root, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestDocEnv(t *testing.T) {
	root := mustParse(t, `{"a": 1, "b": 2.5, "s": "x", "o": {}}`)
	env := DocEnv(root)
	if len(env) != 2 {
		t.Errorf("env %v", env)
	}
	if env["a"] != 1.0 || env["b"] != 2.5 {
		t.Errorf("env %v", env)
	}
}
