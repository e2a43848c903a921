package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jtree/dpath"
	"github.com/signadot/jtree/encode"
	"github.com/signadot/jtree/format"
	"github.com/signadot/jtree/load"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=p aliases=pretty desc='indent json output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// loadOpts gives a format only when one was asked for, so that files
// are otherwise read according to their suffix.
func (cfg *MainConfig) loadOpts() []load.LoadOption {
	switch {
	case cfg.InFormat != nil:
		return []load.LoadOption{load.LoadFormat(*cfg.InFormat)}
	case cfg.Y:
		return []load.LoadOption{load.LoadFormat(format.YAMLFormat)}
	case cfg.J:
		return []load.LoadOption{load.LoadFormat(format.JSONFormat)}
	}
	return nil
}

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	if cfg.Y {
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Pretty {
		res = append(res, encode.EncodeIndent("  "))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.colorSet() {
		return res
	}
	if cfg.isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// useColor is encOpts' color decision for output which is not encoded
// trees.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorSet() {
		return false
	}
	return cfg.isTerminal(w)
}

func pathOpts(delim string) []dpath.Option {
	return []dpath.Option{dpath.Delimiter(delim)}
}

type MergeConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show the changes merging made to the first file'"`

	Merge *cli.Command
}

type GetConfig struct {
	*MainConfig
	Delim   string `cli:"name=d aliases=delim desc='path segment delimiter (default .)'"`
	Default string `cli:"name=default desc='value to print when the path does not exist'"`

	Get *cli.Command
}

type ExistsConfig struct {
	*MainConfig
	Delim string `cli:"name=d aliases=delim desc='path segment delimiter (default .)'"`

	Exists *cli.Command
}

type SetConfig struct {
	*MainConfig
	Delim string `cli:"name=d aliases=delim desc='path segment delimiter (default .)'"`

	Set *cli.Command
}

type RmConfig struct {
	*MainConfig
	Delim string `cli:"name=d aliases=delim desc='path segment delimiter (default .)'"`

	Rm *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Delim string `cli:"name=d aliases=delim desc='path segment delimiter for get and exists'"`

	Eval *cli.Command
}
