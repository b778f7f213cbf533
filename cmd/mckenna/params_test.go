package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	mckenna "github.com/a-gargiulo/McKenna"
	"github.com/a-gargiulo/McKenna/parse"
)

func tmpFile(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestWriteParams(t *testing.T) {
	root, err := parse.ParseString(`{"hello": 3.5, "test": 42}`)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	tool := mckenna.DefaultTool()
	if err := writeParams(buf, tool.Params(root, nil)); err != nil {
		t.Fatal(err)
	}
	want := "hello = 3.500000\ntest = 42.000000\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteParamsSkips(t *testing.T) {
	root, err := parse.ParseString(`{"hello": "hi", "other": 1}`)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	tool := mckenna.DefaultTool()
	if err := writeParams(buf, tool.Params(root, nil)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q, want no output", buf.String())
	}
}

func TestParamsFile(t *testing.T) {
	p := tmpFile(t, "cfg.json", `{"hello": 3.5, "test": 42}`)
	buf := bytes.NewBuffer(nil)
	if err := paramsFile(&MainConfig{}, buf, p, nil); err != nil {
		t.Fatal(err)
	}
	want := "hello = 3.500000\ntest = 42.000000\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestParamsFileMissing(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := paramsFile(&MainConfig{}, buf,
		filepath.Join(t.TempDir(), "nope.json"), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("output on error: %q", buf.String())
	}
}

func TestParamsFileBadJSON(t *testing.T) {
	p := tmpFile(t, "bad.json", `{"hello": `)
	buf := bytes.NewBuffer(nil)
	err := paramsFile(&MainConfig{}, buf, p, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("error does not wrap ErrParse: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output on error: %q", buf.String())
	}
}
