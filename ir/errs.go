package ir

import "errors"

var (
	ErrUnsupported = errors.New("unsupported value")
)
