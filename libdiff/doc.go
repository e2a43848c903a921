// Package libdiff produces line diffs between trees, as printed by
// jt merge -diff.
package libdiff
