package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/jtree/debug"
	"github.com/signadot/jtree/dpath"
	"github.com/signadot/jtree/ir"

	"github.com/expr-lang/expr"
)

var ErrEval = errors.New("eval error")

// Env is the variable environment an expression runs against.
type Env map[string]any

// NewEnv returns the variables of doc: its fields when doc is an object,
// nothing otherwise.
func NewEnv(doc *ir.Node) Env {
	return newEnv(doc, newValues())
}

func newEnv(doc *ir.Node, vals *values) Env {
	env := Env{}
	if doc == nil || doc.Type != ir.ObjectType {
		return env
	}
	for i, f := range doc.Fields {
		env[f.String] = vals.toAny(doc.Values[i])
	}
	return env
}

// Eval runs the expr-lang expression code against doc and returns its
// result as a tree. doc is not modified. Objects taken unchanged from doc
// keep their field order; objects built by the expression have sorted
// keys.
func Eval(doc *ir.Node, code string, opts ...dpath.Option) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", code, debug.JSON{Node: doc})
	}
	vals := newValues()
	prg, err := expr.Compile(code, exprOpts(doc, vals, opts)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, map[string]any(newEnv(doc, vals)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	node, err := vals.fromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrEval, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %s\n", code, debug.JSON{Node: node})
	}
	return node, nil
}
