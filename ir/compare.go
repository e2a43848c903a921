package ir

import (
	"cmp"
	"strings"
)

// typeOrder ranks values of different types: null, bool, number, string,
// array, object.
var typeOrder = map[Type]int{
	NullType:   0,
	BoolType:   1,
	NumberType: 2,
	StringType: 3,
	ArrayType:  4,
	ObjectType: 5,
}

// Compare orders a and b, returning -1, 0 or +1. Values of different
// types order by type. Objects compare field by field in their own order,
// so the same fields in another order are a different object. nil sorts
// first.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(typeOrder[a.Type], typeOrder[b.Type]); c != 0 {
		return c
	}
	switch a.Type {
	case BoolType:
		return cmp.Compare(boolRank(a.Bool), boolRank(b.Bool))
	case NumberType:
		return compareNumber(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType, ObjectType:
		return compareElements(a, b)
	default:
		return 0
	}
}

// Equal reports whether a and b hold the same value with object fields in
// the same order. An integer and a float are never equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// numberKind orders representations: Int64, then Float64, then literal
// text.
func numberKind(n *Node) int {
	switch {
	case n.Int64 != nil:
		return 0
	case n.Float64 != nil:
		return 1
	default:
		return 2
	}
}

func compareNumber(a, b *Node) int {
	ka, kb := numberKind(a), numberKind(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch ka {
	case 0:
		return cmp.Compare(*a.Int64, *b.Int64)
	case 1:
		return cmp.Compare(*a.Float64, *b.Float64)
	default:
		return strings.Compare(a.Number, b.Number)
	}
}

// compareElements walks two arrays or two objects in step; object keys
// are compared before their values.
func compareElements(a, b *Node) int {
	for i := range min(len(a.Values), len(b.Values)) {
		if a.Type == ObjectType {
			if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
				return c
			}
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}
