// Package load decodes JSON or YAML text into ir.Node trees.
//
// Malformed input yields an error wrapping ErrDecode. LoadFile reports
// paths which do not name a readable regular file with ErrNotAFile.
//
// JSON objects keep their field order; a key repeated within one object
// re-assigns the value at the position of its first occurrence. Integers
// which fit in 64 bits decode to Int64 and other numbers to Float64.
package load
