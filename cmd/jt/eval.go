package main

import (
	"fmt"

	"github.com/signadot/jtree/eval"

	"github.com/scott-cotton/cli"
)

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	doc, err := loadMerged(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	res, err := eval.Eval(doc, args[0], pathOpts(cfg.Delim)...)
	if err != nil {
		return err
	}
	return output(cfg.MainConfig, cc.Out, res)
}
