package dpath

import (
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/jtree/debug"
	"github.com/signadot/jtree/ir"
)

// Split returns the non-empty segments of path. An empty result addresses
// the root.
func Split(path string, opts ...Option) []string {
	return split(path, newConfig(opts))
}

func split(path string, cfg *config) []string {
	parts := strings.Split(path, cfg.delim)
	res := parts[:0]
	for _, p := range parts {
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// index parses seg as an index into an array of length n.
func index(seg string, n int) (int, bool) {
	u, err := strconv.ParseUint(seg, 10, 0)
	if err != nil || u >= uint64(n) {
		return 0, false
	}
	return int(u), true
}

// child returns the value at seg in node, if node is a container holding it.
func child(node *ir.Node, seg string) (*ir.Node, bool) {
	if node == nil {
		return nil, false
	}
	switch node.Type {
	case ir.ObjectType:
		return node.Get(seg)
	case ir.ArrayType:
		i, ok := index(seg, len(node.Values))
		if !ok {
			return nil, false
		}
		return node.Values[i], true
	default:
		return nil, false
	}
}

func walk(src *ir.Node, segs []string) (*ir.Node, bool) {
	cur := src
	for _, seg := range segs {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Get returns the value addressed by path in src, or def if any segment
// does not resolve. Objects are addressed by key and arrays by decimal
// index. The result is the node within src, not a copy.
func Get(src *ir.Node, path string, def *ir.Node, opts ...Option) *ir.Node {
	cfg := newConfig(opts)
	res, ok := walk(src, split(path, cfg))
	if debug.Path() {
		debug.Logf("get %q found=%t\n", path, ok)
	}
	if !ok {
		return def
	}
	return res
}

// Exists reports whether every segment of path resolves in src. A null
// value counts as present.
func Exists(src *ir.Node, path string, opts ...Option) bool {
	_, ok := walk(src, Split(path, opts...))
	return ok
}

// Set stores value at path in src, creating empty objects for missing
// object keys along the way. Arrays are never extended: indexes must be in
// range. Writing into or through anything other than an object or array,
// and writing to an empty path, fail with an error wrapping ErrAddress.
// Objects created before a failing segment are left in place.
//
// value is stored as is; it must not also be reachable from elsewhere in
// src. A nil value stores null.
func Set(src *ir.Node, path string, value *ir.Node, opts ...Option) error {
	cfg := newConfig(opts)
	segs := split(path, cfg)
	if debug.Path() {
		debug.Logf("set %q to %s\n", path, debug.JSON{Node: value})
	}
	if src == nil {
		return &AddressError{Path: path, Pos: -1, Reason: "nil tree"}
	}
	if value == nil {
		value = ir.Null()
	}
	if len(segs) == 0 {
		return &AddressError{Path: path, Pos: -1, Type: src.Type, Reason: "empty path"}
	}
	cur := src
	last := len(segs) - 1
	for i, seg := range segs[:last] {
		switch cur.Type {
		case ir.ObjectType:
			next, ok := cur.Get(seg)
			if !ok {
				next = ir.NewObject()
				cur.Set(seg, next)
			}
			cur = next
		case ir.ArrayType:
			j, ok := index(seg, len(cur.Values))
			if !ok {
				return addrErr(segs, i, cur, cfg.delim, "array index out of range")
			}
			cur = cur.Values[j]
		default:
			return addrErr(segs, i, cur, cfg.delim, "cannot write through a scalar")
		}
	}
	seg := segs[last]
	switch cur.Type {
	case ir.ObjectType:
		cur.Set(seg, value)
	case ir.ArrayType:
		j, ok := index(seg, len(cur.Values))
		if !ok {
			return addrErr(segs, last, cur, cfg.delim, "array index out of range")
		}
		cur.Values[j] = value
	default:
		return addrErr(segs, last, cur, cfg.delim, "cannot write into a scalar")
	}
	return nil
}

// Remove deletes the value at path from its parent object or array,
// shifting later array elements down. It reports whether anything was
// removed.
func Remove(src *ir.Node, path string, opts ...Option) bool {
	cfg := newConfig(opts)
	segs := split(path, cfg)
	if len(segs) == 0 {
		return false
	}
	last := len(segs) - 1
	parent, ok := walk(src, segs[:last])
	if !ok || parent == nil {
		return false
	}
	seg := segs[last]
	removed := false
	switch parent.Type {
	case ir.ObjectType:
		removed = parent.Delete(seg)
	case ir.ArrayType:
		if j, ok := index(seg, len(parent.Values)); ok {
			parent.Values = slices.Delete(parent.Values, j, j+1)
			removed = true
		}
	}
	if debug.Path() {
		debug.Logf("remove %q removed=%t\n", path, removed)
	}
	return removed
}
