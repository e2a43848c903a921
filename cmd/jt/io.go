package main

import (
	"fmt"
	"io"

	"github.com/signadot/jtree/encode"
	"github.com/signadot/jtree/ir"
	"github.com/signadot/jtree/load"
	"github.com/signadot/jtree/merge"

	"github.com/scott-cotton/cli"
)

// loadDocs loads each file, reading r for "-" or when there are no files.
func loadDocs(cfg *MainConfig, r io.Reader, files []string) ([]*ir.Node, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	stdin := 0
	for _, file := range files {
		if file == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("%w: standard input (-) given more than once", cli.ErrUsage)
	}
	res := make([]*ir.Node, 0, len(files))
	for _, file := range files {
		var (
			doc *ir.Node
			err error
		)
		if file == "-" {
			doc, err = load.LoadReader(r, cfg.loadOpts()...)
		} else {
			doc, err = load.LoadFile(file, cfg.loadOpts()...)
		}
		if err != nil {
			return nil, fmt.Errorf("error processing %s: %w", file, err)
		}
		res = append(res, doc)
	}
	return res, nil
}

// loadMerged loads files and merges them. A single document is returned
// as is, whatever its type.
func loadMerged(cfg *MainConfig, r io.Reader, files []string) (*ir.Node, error) {
	docs, err := loadDocs(cfg, r, files)
	if err != nil {
		return nil, err
	}
	if len(docs) == 1 {
		return docs[0], nil
	}
	return merge.Merge(docs...), nil
}

// loadOne loads the single document a modifying command works on.
func loadOne(cfg *MainConfig, r io.Reader, files []string) (*ir.Node, error) {
	if len(files) > 1 {
		return nil, fmt.Errorf("%w: expected at most one file, got %d", cli.ErrUsage, len(files))
	}
	docs, err := loadDocs(cfg, r, files)
	if err != nil {
		return nil, err
	}
	return docs[0], nil
}

func output(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}
