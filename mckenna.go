// Package mckenna ties the configuration toolchain together: loading
// documents, reporting numeric parameters, evaluating derived values
// and validating against the burner schema.
package mckenna

import (
	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/eval"
)

type Tool struct {
	// Env supplies extra bindings to expression evaluation, on top
	// of the document's own top-level numeric fields.
	Env eval.Env
}

func DefaultTool() *Tool {
	return &Tool{
		Env: eval.Env{},
	}
}

// DefaultKeys are the parameters the bootstrap schema reports when no
// keys are configured.
var DefaultKeys = []string{"hello", "test"}

// Param is a reported numeric parameter.
type Param struct {
	Key   string
	Value float64
}

// Load reads and parses a configuration file.
func (t *Tool) Load(path string, opts ...config.LoadOption) (*config.Document, error) {
	return config.Load(path, opts...)
}

// Params looks up keys at the top level of a document and reports
// those present with a numeric value, in key order. Absent and
// non-numeric keys are skipped, not errors.
func (t *Tool) Params(root *doc.Node, keys []string) []Param {
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	var res []Param
	for _, key := range keys {
		v := doc.Get(root, key)
		f, ok := v.Float()
		if !ok {
			continue
		}
		res = append(res, Param{Key: key, Value: f})
	}
	return res
}

// Eval evaluates the "="-prefixed expressions in a document against
// the document's top-level numeric fields merged with the tool's Env.
func (t *Tool) Eval(root *doc.Node) (*doc.Node, error) {
	env := eval.DocEnv(root)
	for k, v := range t.Env {
		env[k] = v
	}
	return eval.Eval(root, env)
}

// Validate checks a document against the McKenna schema.
func (t *Tool) Validate(d *config.Document) error {
	return config.Validate(d)
}
