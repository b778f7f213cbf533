// Package eval computes derived configuration parameters. String
// values beginning with "=" hold expressions which are evaluated
// against the document's own top-level numeric fields plus any
// caller-supplied bindings, and replaced by their results.
package eval

import (
	"fmt"
	"strings"

	"github.com/a-gargiulo/McKenna/debug"
	"github.com/a-gargiulo/McKenna/doc"

	"github.com/expr-lang/expr"
)

// Env binds names visible to expressions.
type Env map[string]any

// DocEnv builds an Env from the top-level numeric fields of a
// document. Non-numeric fields are not bound.
func DocEnv(root *doc.Node) Env {
	env := Env{}
	if root == nil || root.Type != doc.ObjectType {
		return env
	}
	for i, field := range root.Fields {
		f, ok := root.Values[i].Float()
		if !ok {
			continue
		}
		env[field.String] = f
	}
	return env
}

// Eval walks a document and evaluates every "="-prefixed string
// value, replacing it in place. The input node is returned for
// chaining. Evaluation order is document order, so later expressions
// do not see earlier results unless they are bound in env.
func Eval(root *doc.Node, env Env) (*doc.Node, error) {
	if env == nil {
		env = DocEnv(root)
	}
	if err := evalNode(root, env); err != nil {
		return nil, err
	}
	return root, nil
}

func evalNode(node *doc.Node, env Env) error {
	if node == nil {
		return nil
	}
	switch node.Type {
	case doc.ObjectType, doc.ArrayType:
		for i, v := range node.Values {
			if code, ok := exprString(v); ok {
				res, err := run(v, code, env)
				if err != nil {
					return err
				}
				res.Parent = node
				res.ParentIndex = i
				res.ParentField = v.ParentField
				node.Values[i] = res
				continue
			}
			if err := evalNode(v, env); err != nil {
				return err
			}
		}
	}
	return nil
}

func exprString(node *doc.Node) (string, bool) {
	if node == nil || node.Type != doc.StringType {
		return "", false
	}
	code, ok := strings.CutPrefix(node.String, "=")
	return code, ok
}

func run(node *doc.Node, code string, env Env) (*doc.Node, error) {
	if debug.Eval() {
		debug.Logf("eval %s: %q\n", node.Path(), code)
	}
	prg, err := expr.Compile(code, exprOpts(node)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", node.Path(), err)
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", node.Path(), err)
	}
	if resNode, ok := res.(*doc.Node); ok {
		if resNode == nil {
			return doc.Null(), nil
		}
		return resNode.Clone(), nil
	}
	return doc.FromAny(res)
}
