package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jt").
		WithSynopsis("jt [opts] command [opts]").
		WithDescription("jt merges JSON and YAML documents and reads and writes values at delimited paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jtMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			GetCommand(cfg),
			ExistsCommand(cfg),
			SetCommand(cfg),
			RmCommand(cfg),
			EvalCommand(cfg))
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [-diff] [files]").
		WithDescription(mergeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeDocs(cfg, cc, args)
		})
}

const mergeDescription = `merge combines documents left to right.

Objects are merged key by key, arrays are concatenated and any other value
in a later document replaces the earlier one. Documents which are not
objects are ignored.

With -diff, merge prints the changes merging made to the first document
instead of the result, and nothing when there were none.`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-d delim] [-default value] <path> [files]").
		WithDescription("get the value at a path of the merged documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ExistsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExistsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Exists, "exists").
		WithAliases("x").
		WithSynopsis("exists [-d delim] <path> [files]").
		WithDescription("print whether a path exists, exiting 1 when it does not").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exists(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-d delim] <path> <value> [file]").
		WithDescription("set the value at a path, creating objects along the way, and print the document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rm, "rm").
		WithAliases("remove").
		WithSynopsis("rm [-d delim] <path> [file]").
		WithDescription("remove the value at a path and print the document, exiting 1 when there was none").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-d delim] <expr> [files]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalExpr(cfg, cc, args)
		})
}

const evalDescription = `eval evaluates an expr-lang expression against the merged documents.

Top level keys are variables. The functions get(path), get(path, default),
exists(path), doc() and truth(value) are also available.`
