package merge

import (
	"github.com/signadot/jtree/debug"
	"github.com/signadot/jtree/ir"
)

// Combine merges each of srcs, left to right, into dst and returns dst.
//
// For every key of a source, in the source's order:
//   - if dst holds an array there and the source value is an array, the
//     source elements are appended to the destination array;
//   - else if the source value is an object, it is combined recursively
//     into the destination value, which is first replaced by an empty object
//     if it is absent or not an object;
//   - otherwise the source value replaces the destination value.
//
// Values taken from sources are copied; sources are never modified. A nil
// dst yields a new object and a dst which is not an object is reset to an
// empty object in place. Sources which are nil or not objects contribute
// nothing.
func Combine(dst *ir.Node, srcs ...*ir.Node) *ir.Node {
	if dst == nil {
		dst = ir.NewObject()
	} else if dst.Type != ir.ObjectType {
		if debug.Merge() {
			debug.Logf("combine: resetting %s destination to object\n", dst.Type)
		}
		dst.Reset(ir.ObjectType)
	}
	for i, src := range srcs {
		if src == nil || src.Type != ir.ObjectType {
			if debug.Merge() {
				debug.Logf("combine: skipping source %d, not an object\n", i)
			}
			continue
		}
		// src may contain dst or be dst, so fold a private copy.
		combineObject(dst, src.Clone(), "")
	}
	return dst
}

// Merge combines srcs into a new empty object.
func Merge(srcs ...*ir.Node) *ir.Node {
	return Combine(ir.NewObject(), srcs...)
}

// combineObject moves the values of src into dst; src must not be used
// afterwards.
func combineObject(dst, src *ir.Node, at string) {
	for i, field := range src.Fields {
		key := field.String
		val := src.Values[i]
		cur, present := dst.Get(key)
		switch {
		case present && cur.Type == ir.ArrayType && val.Type == ir.ArrayType:
			if debug.Merge() {
				debug.Logf("combine: %s%s append %d to %d elements\n", at, key, len(val.Values), len(cur.Values))
			}
			cur.Values = append(cur.Values, val.Values...)

		case val.Type == ir.ObjectType:
			if !present || cur.Type != ir.ObjectType {
				if debug.Merge() && present {
					debug.Logf("combine: %s%s replace %s with object\n", at, key, cur.Type)
				}
				cur = ir.NewObject()
				dst.Set(key, cur)
			}
			combineObject(cur, val, at+key+".")

		default:
			if debug.Merge() {
				debug.Logf("combine: %s%s set %s\n", at, key, debug.JSON{Node: val})
			}
			dst.Set(key, val)
		}
	}
}
