package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
)

// FromAny converts a plain Go value, as produced by encoding/json or
// goccy/go-yaml, into a Node. Maps with unordered keys produce objects with
// sorted keys; yaml.MapSlice keeps its order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []*Node:
		res := NewArray()
		for _, elt := range x {
			res.Values = append(res.Values, elt.Clone())
		}
		return res, nil
	case []any:
		res := NewArray()
		for i, elt := range x {
			node, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Values = append(res.Values, node)
		}
		return res, nil
	case []string:
		res := NewArray()
		for _, elt := range x {
			res.Values = append(res.Values, FromString(elt))
		}
		return res, nil
	case map[string]*Node:
		res := make(map[string]*Node, len(x))
		for k, elt := range x {
			res[k] = elt.Clone()
		}
		return FromMap(res), nil
	case map[string]any:
		res := make(map[string]*Node, len(x))
		for k, elt := range x {
			node, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res[k] = node
		}
		return FromMap(res), nil
	case map[any]any:
		res := make(map[string]*Node, len(x))
		for k, elt := range x {
			key := fmt.Sprint(k)
			node, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			res[key] = node
		}
		return FromMap(res), nil
	case yaml.MapSlice:
		res := NewObject()
		for _, item := range x {
			key := fmt.Sprint(item.Key)
			node, err := FromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			res.Set(key, node)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return FromNumber(strconv.FormatUint(u, 10))
	}
	return FromInt(int64(u))
}

// ToAny converts node into plain Go values: map[string]any, []any, int,
// float64, json.Number, string, bool and nil.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// ToMapSlice is like ToAny but objects become yaml.MapSlice so that key
// order survives.
func ToMapSlice(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: ToMapSlice(node.Values[i]),
			}
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToMapSlice(elt)
		}
		return res
	default:
		return ToAny(node)
	}
}
