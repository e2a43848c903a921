package load

import (
	"fmt"

	"github.com/signadot/jtree/ir"

	"github.com/goccy/go-yaml"
)

func decodeYAML(d []byte, maxDepth int) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := checkDepth(node, maxDepth); err != nil {
		return nil, err
	}
	return node, nil
}

func checkDepth(node *ir.Node, maxDepth int) error {
	depth := 0
	return node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			if !y.Type.IsLeaf() {
				depth--
			}
			return false, nil
		}
		if y.Type.IsLeaf() {
			return false, nil
		}
		if depth >= maxDepth {
			return false, fmt.Errorf("%w: nesting exceeds %d", ErrDecode, maxDepth)
		}
		depth++
		return true, nil
	})
}
