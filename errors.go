package koch

import "errors"

var (
	// ErrInvalidGeometry is returned when a segment has a NaN or infinite
	// coordinate.
	ErrInvalidGeometry = errors.New("koch: invalid geometry")

	// ErrEmptySeed is returned by [New] when [WithSeed] is given no segments.
	ErrEmptySeed = errors.New("koch: empty seed")
)
