package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/a-gargiulo/McKenna/debug"
	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/encode"
	"github.com/a-gargiulo/McKenna/format"
	"github.com/a-gargiulo/McKenna/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Document is a loaded configuration file: the parsed tree plus its
// provenance. Data holds the JSON bytes the tree was parsed from,
// after any patches.
type Document struct {
	Root   *doc.Node
	Path   string
	Format format.Format
	Data   []byte
}

type loadOpts struct {
	format  *format.Format
	patches []patch
	stdin   io.Reader
}

type patch struct {
	data []byte
	fmat format.Format
}

type LoadOption func(*loadOpts)

// WithFormat overrides suffix-based format detection.
func WithFormat(f format.Format) LoadOption {
	return func(o *loadOpts) { o.format = &f }
}

// WithPatch applies an RFC 7386 merge patch to the document before
// parsing. Patches apply in the order given.
func WithPatch(d []byte, f format.Format) LoadOption {
	return func(o *loadOpts) {
		o.patches = append(o.patches, patch{data: d, fmat: f})
	}
}

// WithStdin sets the reader used when the path is "-".
func WithStdin(r io.Reader) LoadOption {
	return func(o *loadOpts) { o.stdin = r }
}

// Load reads, patches and parses the named configuration file. A
// path of "-" reads standard input.
func Load(path string, opts ...LoadOption) (*Document, error) {
	lOpts := &loadOpts{stdin: os.Stdin}
	for _, f := range opts {
		f(lOpts)
	}
	var (
		raw  []byte
		err  error
		fmat format.Format
	)
	if path == "-" {
		raw, err = io.ReadAll(lOpts.stdin)
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}
	} else {
		raw, err = ReadFile(path)
		if err != nil {
			return nil, err
		}
		fmat, _ = format.FromPath(path)
	}
	if lOpts.format != nil {
		fmat = *lOpts.format
	}
	if debug.Load() {
		debug.Logf("loaded %q: %d bytes, format %s\n", path, len(raw), fmat)
	}

	jsonBytes, err := toJSONBytes(raw, fmat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, p := range lOpts.patches {
		pj, err := toJSONBytes(p.data, p.fmat)
		if err != nil {
			return nil, fmt.Errorf("bad patch: %w", err)
		}
		jsonBytes, err = jsonpatch.MergePatch(jsonBytes, pj)
		if err != nil {
			return nil, fmt.Errorf("could not apply patch: %w", err)
		}
		if debug.Patch() {
			debug.Logf("patched %q: %s\n", path, string(jsonBytes))
		}
	}

	root, err := parse.Parse(jsonBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Document{
		Root:   root,
		Path:   path,
		Format: fmat,
		Data:   jsonBytes,
	}, nil
}

// toJSONBytes brings a raw document into JSON form so merge patches
// compose regardless of the input format.
func toJSONBytes(raw []byte, fmat format.Format) ([]byte, error) {
	if fmat.IsJSON() {
		return raw, nil
	}
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	node, err := doc.FromAny(v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
