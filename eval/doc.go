// Package eval evaluates expr-lang expressions against a tree.
//
// The fields of an object document are available as variables. Paths into
// the document are read with the functions
//
//	get(path)           the value at path, or nil
//	get(path, default)  the value at path, or default
//	exists(path)        whether path resolves
//	doc()               the whole document
//	truth(v)            whether v is a non-empty, non-zero, non-null value
//
// Paths use the dpath delimiter given to Eval.
package eval
