package load

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jtree/debug"
	"github.com/signadot/jtree/format"
	"github.com/signadot/jtree/ir"
)

var (
	ErrDecode   = errors.New("decode error")
	ErrNotAFile = errors.New("not a regular file")
)

// MaxDepth is the default limit on nesting of decoded documents.
const MaxDepth = 10000

type loadConfig struct {
	format    format.Format
	formatSet bool
	maxDepth  int
}

type LoadOption func(*loadConfig)

func LoadFormat(f format.Format) LoadOption {
	return func(c *loadConfig) {
		c.format = f
		c.formatSet = true
	}
}

func LoadMaxDepth(n int) LoadOption {
	return func(c *loadConfig) { c.maxDepth = n }
}

func newConfig(opts []LoadOption) *loadConfig {
	cfg := &loadConfig{format: format.JSONFormat, maxDepth: MaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func LoadString(s string, opts ...LoadOption) (*ir.Node, error) {
	return LoadBytes([]byte(s), opts...)
}

func LoadBytes(d []byte, opts ...LoadOption) (*ir.Node, error) {
	return decode(d, newConfig(opts))
}

func LoadReader(r io.Reader, opts ...LoadOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return LoadBytes(d, opts...)
}

// LoadFile decodes the regular file at p. Unless a format is given, files
// ending in .yaml or .yml are read as YAML and everything else as JSON.
func LoadFile(p string, opts ...LoadOption) (*ir.Node, error) {
	cfg := newConfig(opts)
	if !cfg.formatSet {
		cfg.format, _ = format.FromPath(p)
	}
	fi, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAFile, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, p)
	}
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAFile, err)
	}
	node, err := decode(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", p, err)
	}
	return node, nil
}

func decode(d []byte, cfg *loadConfig) (*ir.Node, error) {
	var (
		node *ir.Node
		err  error
	)
	switch cfg.format {
	case format.JSONFormat:
		node, err = decodeJSON(d, cfg.maxDepth)
	case format.YAMLFormat:
		node, err = decodeYAML(d, cfg.maxDepth)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, cfg.format)
	}
	if err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("loaded %d bytes of %s as %s\n", len(d), cfg.format, node.Type)
	}
	return node, nil
}
