package eval

import (
	"fmt"

	"github.com/signadot/jtree/dpath"
	"github.com/signadot/jtree/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node, vals *values, opts []dpath.Option) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			path := params[0].(string)
			if len(params) == 1 {
				return vals.toAny(dpath.Get(doc, path, nil, opts...)), nil
			}
			def, err := vals.fromAny(params[1])
			if err != nil {
				return nil, fmt.Errorf("get %q: default: %w", path, err)
			}
			return vals.toAny(dpath.Get(doc, path, def, opts...)), nil
		},
			new(func(string) any),
			new(func(string, any) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			return dpath.Exists(doc, params[0].(string), opts...), nil
		},
			new(func(string) bool)),
		expr.Function("doc", func(params ...any) (any, error) {
			return vals.toAny(doc), nil
		},
			new(func() any)),
		expr.Function("truth", func(params ...any) (any, error) {
			node, err := vals.fromAny(params[0])
			if err != nil {
				return nil, err
			}
			return ir.Truth(node), nil
		},
			new(func(any) bool)),
	}
}
