package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jtree/encode"
	"github.com/signadot/jtree/format"
	"github.com/signadot/jtree/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines computes a line oriented diff from from to to. Each diff's Text
// holds whole lines, each ending in a newline.
func Lines(from, to string) []diffpatch.Diff {
	from, to = terminate(from), terminate(to)
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Nodes diffs the encodings of from and to in format f. JSON is indented
// so that the diff has one value per line. Equal trees give no diffs.
func Nodes(from, to *ir.Node, f format.Format) ([]diffpatch.Diff, error) {
	if ir.Equal(from, to) {
		return nil, nil
	}
	a, err := render(from, f)
	if err != nil {
		return nil, err
	}
	b, err := render(to, f)
	if err != nil {
		return nil, err
	}
	return Lines(a, b), nil
}

func render(node *ir.Node, f format.Format) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(f), encode.EncodeIndent("  ")); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Equal reports whether diffs contains no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Write prints diffs to w one line at a time, prefixed with "-" for
// deletions, "+" for insertions and " " for unchanged lines.
func Write(w io.Writer, diffs []diffpatch.Diff, colors bool) error {
	del, ins := fmt.Sprintf, fmt.Sprintf
	if colors {
		del = color.New(color.FgRed).Sprintf
		ins = color.New(color.FgGreen).Sprintf
	}
	for i := range diffs {
		diff := &diffs[i]
		pre, paint := " ", fmt.Sprintf
		switch diff.Type {
		case diffpatch.DiffDelete:
			pre, paint = "-", del
		case diffpatch.DiffInsert:
			pre, paint = "+", ins
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			if _, err := fmt.Fprintln(w, paint("%s%s", pre, line)); err != nil {
				return err
			}
		}
	}
	return nil
}
