package main

import (
	"github.com/signadot/jtree/libdiff"
	"github.com/signadot/jtree/merge"

	"github.com/scott-cotton/cli"
)

func mergeDocs(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := loadDocs(cfg.MainConfig, cc.In, args)
	if err != nil {
		return err
	}
	res := merge.Merge(docs...)
	if !cfg.Diff {
		return output(cfg.MainConfig, cc.Out, res)
	}
	diffs, err := libdiff.Nodes(docs[0], res, cfg.outFormat())
	if err != nil {
		return err
	}
	return libdiff.Write(cc.Out, diffs, cfg.useColor(cc.Out))
}
