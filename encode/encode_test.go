package encode

import (
	"bytes"
	"testing"

	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/format"
)

func testNode() *doc.Node {
	return doc.FromKeyVals([]doc.KeyVal{
		{Key: doc.FromString("hello"), Val: doc.FromFloat(3.5)},
		{Key: doc.FromString("test"), Val: doc.FromInt(42)},
		{Key: doc.FromString("tags"), Val: doc.FromSlice([]*doc.Node{
			doc.FromString("a"), doc.Null(), doc.FromBool(true),
		})},
	})
}

func TestEncodeWire(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(testNode(), buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	want := `{"hello":3.5,"test":42,"tags":["a",null,true]}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestEncodeIndented(t *testing.T) {
	want := `{
  "hello": 3.5,
  "test": 42,
  "tags": [
    "a",
    null,
    true
  ]
}
`
	if got := MustString(testNode()) + "\n"; got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(testNode(), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	want := `hello: 3.5
test: 42
tags:
- a
- null
- true
`
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	obj := doc.FromKeyVals(nil)
	if got := MustString(obj); got != "{}" {
		t.Errorf("empty object: %q", got)
	}
	arr := doc.FromSlice(nil)
	if got := MustString(arr); got != "[]" {
		t.Errorf("empty array: %q", got)
	}
}
