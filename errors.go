package dropoff

import "errors"

var (
	ErrUnknownLocation   = errors.New("unknown location")
	ErrDuplicateLocation = errors.New("duplicate location")
	ErrShapeMismatch     = errors.New("adjacency matrix shape mismatch")
	ErrDisconnected      = errors.New("locations not connected")
	ErrSubtour           = errors.New("tour edges not reachable from the start")
	ErrInvalidVar        = errors.New("invalid variable name")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidSolution   = errors.New("invalid solution")
)
