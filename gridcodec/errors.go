package gridcodec

import "errors"

var (
	// ErrInvalidEdge indicates a vertex pair that is not in the legal edge table.
	ErrInvalidEdge = errors.New("gridcodec: pair is not a legal edge")
	// ErrOutOfRange indicates a value outside [0, MaxHash].
	ErrOutOfRange = errors.New("gridcodec: value out of range")
)
