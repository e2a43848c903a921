package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

// Reset turns y into an empty value of type t in place, so that every
// reference to y observes the change.
func (y *Node) Reset(t Type) *Node {
	*y = Node{Type: t}
	switch t {
	case ObjectType:
		y.Fields = []*Node{}
		y.Values = []*Node{}
	case ArrayType:
		y.Values = []*Node{}
	}
	return y
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return (&Node{}).Reset(ObjectType)
}

func NewArray() *Node {
	return (&Node{}).Reset(ArrayType)
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber creates a number node from its literal text. Integers which fit
// in 64 bits become Int64, other finite values Float64, and anything else is
// kept verbatim in Number.
func FromNumber(v string) *Node {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := NewArray()
	res.Values = append(res.Values, ySlice...)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs. A repeated key
// replaces the earlier value at the earlier position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with its keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(key, yMap[key])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// Index returns the position of key in the object y, or -1.
func (y *Node) Index(key string) int {
	if y.Type != ObjectType {
		return -1
	}
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

func (y *Node) Get(key string) (*Node, bool) {
	i := y.Index(key)
	if i == -1 {
		return nil, false
	}
	return y.Values[i], true
}

// Set binds key to v in the object y. An existing key keeps its position.
func (y *Node) Set(key string, v *Node) {
	if y.Type != ObjectType {
		panic(fmt.Sprintf("ir: Set on %s", y.Type))
	}
	if i := y.Index(key); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
}

func (y *Node) Delete(key string) bool {
	i := y.Index(key)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Len is the number of elements of an array or fields of an object.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

