package main

import (
	"fmt"

	"github.com/signadot/jtree/dpath"
	"github.com/signadot/jtree/load"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	path := args[0]
	value, err := load.LoadString(args[1], cfg.loadOpts()...)
	if err != nil {
		return fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, args[1], err)
	}
	doc, err := loadOne(cfg.MainConfig, cc.In, args[2:])
	if err != nil {
		return err
	}
	if err := dpath.Set(doc, path, value, pathOpts(cfg.Delim)...); err != nil {
		return err
	}
	return output(cfg.MainConfig, cc.Out, doc)
}
