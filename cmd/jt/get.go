package main

import (
	"fmt"

	"github.com/signadot/jtree/dpath"
	"github.com/signadot/jtree/ir"
	"github.com/signadot/jtree/load"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	def := ir.Null()
	if cfg.Default != "" {
		def, err = load.LoadString(cfg.Default, cfg.loadOpts()...)
		if err != nil {
			return fmt.Errorf("%w: bad default: %w", cli.ErrUsage, err)
		}
	}
	doc, err := loadMerged(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	return output(cfg.MainConfig, cc.Out, dpath.Get(doc, path, def, pathOpts(cfg.Delim)...))
}
