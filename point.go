package geom

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Point is a location or vector in N-dimensional euclidean space, where N
// is the length of the coordinate array C. The zero value is the origin.
//
// Points are plain values: copying a Point copies its coordinates.
type Point[S Scalar, C Coords[S]] struct {
	coords C
}

type Point2D[S Scalar] = Point[S, [2]S]
type Point3D[S Scalar] = Point[S, [3]S]

type Point2 = Point2D[float64]
type Point3 = Point3D[float64]

// New returns a point with the given coordinates. The dimension is
// inferred from the array, so only the scalar type needs to be given:
//
//	p := geom.New[float64]([3]float64{1, 2, 3})
func New[S Scalar, C Coords[S]](coords C) Point[S, C] {
	return Point[S, C]{coords: coords}
}

func Pt2[S Scalar](x, y S) Point2D[S] {
	return Point2D[S]{coords: [2]S{x, y}}
}

func Pt3[S Scalar](x, y, z S) Point3D[S] {
	return Point3D[S]{coords: [3]S{x, y, z}}
}

// FromSlice builds a point from a slice of coordinates. It fails with
// ErrDimensionMismatch if the slice does not hold exactly N values.
func FromSlice[S Scalar, C Coords[S]](coords []S) (Point[S, C], error) {
	var p Point[S, C]
	if len(coords) != p.Dim() {
		return p, fmt.Errorf("%w: got %d coordinates, want %d", ErrDimensionMismatch, len(coords), p.Dim())
	}

	for i, value := range coords {
		p.coords[i] = value
	}

	return p, nil
}

// Dim returns the number of coordinates.
func (p Point[S, C]) Dim() int {
	return len(p.coords)
}

// At returns the coordinate at index i. It panics if i is out of range.
func (p Point[S, C]) At(i int) S {
	p.checkIndex(i)
	return p.coords[i]
}

// Set replaces the coordinate at index i. It panics if i is out of range.
func (p *Point[S, C]) Set(i int, value S) {
	p.checkIndex(i)
	p.coords[i] = value
}

func (p Point[S, C]) checkIndex(i int) {
	if i < 0 || i >= p.Dim() {
		panic(fmt.Errorf("%w: index %d in point of dimension %d", ErrIndexOutOfRange, i, p.Dim()))
	}
}

// Coords returns a copy of the coordinates.
func (p Point[S, C]) Coords() C {
	return p.coords
}

// All returns a sequence over the coordinates in index order.
func (p Point[S, C]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for i := range p.Dim() {
			if !yield(p.coords[i]) {
				return
			}
		}
	}
}

// Indexed is like All, but also yields the index of each coordinate.
func (p Point[S, C]) Indexed() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		for i := range p.Dim() {
			if !yield(i, p.coords[i]) {
				return
			}
		}
	}
}

func (p Point[S, C]) Add(other Point[S, C]) Point[S, C] {
	for i := range p.Dim() {
		p.coords[i] += other.coords[i]
	}
	return p
}

func (p Point[S, C]) Sub(other Point[S, C]) Point[S, C] {
	for i := range p.Dim() {
		p.coords[i] -= other.coords[i]
	}
	return p
}

// Mul returns a copy of the point with every coordinate multiplied by factor.
// Use Scale to modify the point in place.
func (p Point[S, C]) Mul(factor S) Point[S, C] {
	for i := range p.Dim() {
		p.coords[i] *= factor
	}
	return p
}

func (p Point[S, C]) Neg() Point[S, C] {
	for i := range p.Dim() {
		p.coords[i] = -p.coords[i]
	}
	return p
}

// Div divides every coordinate by divisor. A divisor of exactly zero is
// reported as ErrDivisionByZero.
func (p Point[S, C]) Div(divisor S) (Point[S, C], error) {
	if divisor == 0 {
		return Point[S, C]{}, fmt.Errorf("%w: divide %s by zero", ErrDivisionByZero, p)
	}

	for i := range p.Dim() {
		p.coords[i] /= divisor
	}

	return p, nil
}

// Scale multiplies every coordinate by factor in place.
func (p *Point[S, C]) Scale(factor S) {
	for i := range p.Dim() {
		p.coords[i] *= factor
	}
}

// Equal reports whether both points have exactly the same coordinates.
// This is the same as comparing the points using ==.
func (p Point[S, C]) Equal(other Point[S, C]) bool {
	for i := range p.Dim() {
		if p.coords[i] != other.coords[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every coordinate differs by at most DefaultEpsilon.
func (p Point[S, C]) ApproxEqual(other Point[S, C]) bool {
	return p.ApproxEqualTol(other, DefaultEpsilon)
}

// ApproxEqualTol reports whether every coordinate differs by at most tolerance.
// The tolerance is absolute. Points with coordinates of a large magnitude
// need a larger tolerance. A NaN coordinate is never approximately equal.
func (p Point[S, C]) ApproxEqualTol(other Point[S, C], tolerance float64) bool {
	for i := range p.Dim() {
		if !(math.Abs(float64(p.coords[i])-float64(other.coords[i])) <= tolerance) {
			return false
		}
	}
	return true
}

func (p Point[S, C]) Dot(other Point[S, C]) S {
	var sum S
	for i := range p.Dim() {
		sum += p.coords[i] * other.coords[i]
	}
	return sum
}

func (p Point[S, C]) MagnitudeSqr() S {
	return p.Dot(p)
}

// Magnitude returns the euclidean length of the vector from the origin to p.
func (p Point[S, C]) Magnitude() float64 {
	return math.Sqrt(float64(p.Dot(p)))
}

func (p Point[S, C]) DistanceSqr(other Point[S, C]) S {
	return p.Sub(other).MagnitudeSqr()
}

// Distance returns the euclidean distance between both points.
func (p Point[S, C]) Distance(other Point[S, C]) float64 {
	return p.Sub(other).Magnitude()
}

// Normalized returns the unit vector pointing in the same direction as p.
func (p Point[S, C]) Normalized() (Point[S, C], error) {
	length := p.Magnitude()
	if length == 0 {
		return Point[S, C]{}, fmt.Errorf("%w: normalize %s", ErrZeroVector, p)
	}

	for i := range p.Dim() {
		p.coords[i] = S(float64(p.coords[i]) / length)
	}

	return p, nil
}

func (p Point[S, C]) String() string {
	values := make([]string, 0, p.Dim())
	for value := range p.All() {
		values = append(values, fmt.Sprint(value))
	}

	return "point(" + strings.Join(values, ", ") + ")"
}
