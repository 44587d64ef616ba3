package geom

import "errors"

var (
	// ErrDimensionMismatch is returned when a coordinate sequence does not
	// have exactly as many values as the point has dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDivisionByZero is returned when dividing a point by exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDegenerateLine is returned when a line is defined by two equal points.
	ErrDegenerateLine = errors.New("degenerate line")

	// ErrDegeneratePlane is returned when a plane has a zero normal vector.
	ErrDegeneratePlane = errors.New("degenerate plane")

	// ErrZeroVector is returned by operations that need a direction
	// but got the zero vector.
	ErrZeroVector = errors.New("zero vector")

	// ErrUnsupportedDimension is returned by Reflect for points that are neither 2D nor 3D.
	ErrUnsupportedDimension = errors.New("unsupported dimension")

	// ErrIndexOutOfRange is wrapped into the value At and Set panic with for an invalid index.
	ErrIndexOutOfRange = errors.New("index out of range")
)
