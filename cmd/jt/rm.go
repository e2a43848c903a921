package main

import (
	"fmt"

	"github.com/signadot/jtree/dpath"

	"github.com/scott-cotton/cli"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires one argument, a path", cli.ErrUsage)
	}
	doc, err := loadOne(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	removed := dpath.Remove(doc, args[0], pathOpts(cfg.Delim)...)
	if err := output(cfg.MainConfig, cc.Out, doc); err != nil {
		return err
	}
	if !removed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
