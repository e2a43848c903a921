package eval

import (
	"reflect"

	"github.com/signadot/jtree/ir"
)

// values converts trees to the plain values expressions work on. It
// remembers the node each map and slice came from so that results which
// are unchanged parts of the document convert back with their field order.
type values struct {
	maps   map[uintptr]*ir.Node
	slices map[sliceKey]*ir.Node
	// keep holds every tracked value so that no address is reused while
	// the expression runs.
	keep []any
}

type sliceKey struct {
	p uintptr
	n int
}

func newValues() *values {
	return &values{
		maps:   map[uintptr]*ir.Node{},
		slices: map[sliceKey]*ir.Node{},
	}
}

func (v *values) toAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		m := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			m[f.String] = v.toAny(node.Values[i])
		}
		v.maps[reflect.ValueOf(m).Pointer()] = node
		v.keep = append(v.keep, m)
		return m
	case ir.ArrayType:
		s := make([]any, len(node.Values))
		for i, elt := range node.Values {
			s[i] = v.toAny(elt)
		}
		if len(s) != 0 {
			v.slices[sliceKey{p: reflect.ValueOf(s).Pointer(), n: len(s)}] = node
			v.keep = append(v.keep, s)
		}
		return s
	default:
		return ir.ToAny(node)
	}
}

func (v *values) fromAny(x any) (*ir.Node, error) {
	switch y := x.(type) {
	case map[string]any:
		if node, ok := v.maps[reflect.ValueOf(y).Pointer()]; ok {
			return node.Clone(), nil
		}
		res := make(map[string]*ir.Node, len(y))
		for k, elt := range y {
			node, err := v.fromAny(elt)
			if err != nil {
				return nil, err
			}
			res[k] = node
		}
		return ir.FromMap(res), nil
	case []any:
		if len(y) != 0 {
			key := sliceKey{p: reflect.ValueOf(y).Pointer(), n: len(y)}
			if node, ok := v.slices[key]; ok {
				return node.Clone(), nil
			}
		}
		res := ir.NewArray()
		for _, elt := range y {
			node, err := v.fromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, node)
		}
		return res, nil
	default:
		return ir.FromAny(x)
	}
}
