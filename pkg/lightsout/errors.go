package lightsout

import "errors"

var (
	// ErrInvalidDimension is returned when a board would have fewer than one
	// row or column, or when explicit rows are ragged.
	ErrInvalidDimension = errors.New("invalid board dimension")
	// ErrInvalidProbability is returned when the lit-start chance is outside [0, 1].
	ErrInvalidProbability = errors.New("invalid lit-start probability")
	// ErrOutOfRange is returned by single-cell reads addressing an off-board cell.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidCoord is returned when coordinate text cannot be parsed.
	ErrInvalidCoord = errors.New("invalid coordinate")
	// ErrInvalidGrid is returned when grid text contains unknown cell symbols.
	ErrInvalidGrid = errors.New("invalid grid text")
)
