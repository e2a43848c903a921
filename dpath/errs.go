package dpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/jtree/ir"
)

// ErrAddress is returned by Set when a path cannot be written.
var ErrAddress = errors.New("address error")

// AddressError describes where and why a path could not be written.
type AddressError struct {
	Path    string
	Segment string
	// Pos is the index of Segment among the path's segments, -1 for an
	// empty path.
	Pos int
	// Type is the type of the value Segment was applied to.
	Type   ir.Type
	Reason string
}

func (e *AddressError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: %s", ErrAddress, e.Reason)
	}
	return fmt.Sprintf("%s: %s at %q in %q (%s)", ErrAddress, e.Reason, e.Segment, e.Path, e.Type)
}

func (e *AddressError) Unwrap() error {
	return ErrAddress
}

func addrErr(segs []string, pos int, on *ir.Node, delim, reason string) error {
	return &AddressError{
		Path:    strings.Join(segs, delim),
		Segment: segs[pos],
		Pos:     pos,
		Type:    on.Type,
		Reason:  reason,
	}
}
