// Package ir provides the tree representation of decoded JSON documents.
//
// # Overview
//
// A document is a tree of *Node values. Every node carries a Type and keeps
// its value in the fields matching that type, so the Node works as a
// recursive tagged union:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Int64 if it is an integer fitting in 64 bits, Float64 for
//     other numbers, Number holding the literal text if neither can
//     represent it
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields and Values, where Fields[i] is a StringType node
//     naming the key of Values[i]
//
// # Objects
//
// Object keys are unique. Set replaces the value of an existing key without
// moving it, and appends new keys, so fields stay in first-insertion order:
//
//	obj := ir.NewObject()
//	obj.Set("a", ir.FromInt(1))
//	obj.Set("b", ir.FromString("x"))
//	obj.Set("a", ir.FromBool(true)) // "a" is still first
//
// FromMap sorts its keys since Go maps carry no order; use FromKeyVals to
// give an order explicitly.
//
// # Ownership
//
// Nodes have no parent links and may be moved between trees freely, but a
// node must not be reachable from two places in the same tree or from two
// trees which are mutated independently. Clone makes a deep copy.
//
// # Conversions
//
// FromAny and ToAny convert between nodes and the plain values produced by
// encoding/json and goccy/go-yaml.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation.
package ir
