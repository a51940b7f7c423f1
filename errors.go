package bezier

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by the constructors for a dimension below
	// one, a grade outside [0, MaxGrade] or a negative vertex count.
	ErrInvalidConfig = errors.New("bezier: invalid curve configuration")

	// ErrIndexOutOfRange is returned when a point index does not address a
	// stored control point.
	ErrIndexOutOfRange = errors.New("bezier: point index out of range")

	// ErrDimensionMismatch is matched by every [DimensionError].
	ErrDimensionMismatch = errors.New("bezier: dimension mismatch")

	// ErrOutOfDomain is returned when evaluating at a parameter outside
	// [0, 1], including NaN.
	ErrOutOfDomain = errors.New("bezier: parameter outside [0, 1]")

	// ErrTooFewVertices is returned when evaluating a curve that doesn't
	// have a single segment yet.
	ErrTooFewVertices = errors.New("bezier: curve needs at least two vertices")

	// ErrAllocation is returned when the coordinate buffer would exceed the
	// largest size that can be allocated.
	ErrAllocation = errors.New("bezier: coordinate buffer too large")
)

// DimensionError reports a number of coordinates that doesn't match the
// curve's dimension.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("bezier: got %d coordinates, want %d", e.Got, e.Want)
}

// Is reports whether target is [ErrDimensionMismatch].
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
