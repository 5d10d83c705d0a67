package heatmap

import "errors"

var (
	// ErrInvalidGeometry is returned when the bounds or cell size cannot
	// produce a grid with at least one row and one column.
	ErrInvalidGeometry = errors.New("invalid grid geometry")

	// ErrInvalidRoot is returned for a contrast root that is not a positive finite number.
	ErrInvalidRoot = errors.New("invalid contrast root")

	// ErrInvalidSigma is returned when blurring with a non-positive sigma.
	ErrInvalidSigma = errors.New("invalid blur sigma")

	// ErrLengthMismatch is returned when the x and y sequences differ in length.
	ErrLengthMismatch = errors.New("coordinate sequences differ in length")
)
