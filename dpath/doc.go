// Package dpath addresses values inside ir.Node trees with delimited paths
// such as "servers.0.host".
//
// A path is split on its delimiter ("." unless Delimiter says otherwise)
// and empty segments are dropped, so "a..b" is the same as "a.b" and ""
// addresses the root. A segment selects an object field by key or, when
// applied to an array, an element by its decimal index.
//
// Get, Exists and Remove report misses through their results. Set is the
// only operation that fails, with an error wrapping ErrAddress.
package dpath
