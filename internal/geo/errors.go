package geo

import "errors"

// Validation failures returned by the constructors. They are wrapped with the
// index of the offending element; test with errors.Is.
var (
	ErrEmpty             = errors.New("fewer than one element")
	ErrTooFewPoints      = errors.New("line must have at least 2 points")
	ErrNoRings           = errors.New("polygon must have at least one linear ring")
	ErrRingNotClosed     = errors.New("ring not closed")
	ErrRingTooShort      = errors.New("ring must have at least 4 points")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
