package main

import (
	"fmt"

	"github.com/signadot/jtree/dpath"

	"github.com/scott-cotton/cli"
)

func exists(cfg *ExistsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Exists.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: exists requires one argument, a path", cli.ErrUsage)
	}
	doc, err := loadMerged(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	ok := dpath.Exists(doc, args[0], pathOpts(cfg.Delim)...)
	fmt.Fprintln(cc.Out, ok)
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}
