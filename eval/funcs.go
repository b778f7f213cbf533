package eval

import (
	"os"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/doc"

	"github.com/expr-lang/expr"
)

func exprOpts(node *doc.Node) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return node.Path(), nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := node.Root().GetPath(path)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
			new(func(string) *doc.Node)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("slpm_to_ndot", func(params ...any) (any, error) {
			return config.SlpmToNdot(params[0].(float64)), nil
		},
			new(func(float64) float64)),
	}
}
