package geom

import (
	"fmt"
	"math"
)

// Rad is an angle in radian. Angles between vectors are returned as Rad.
type Rad float64

func DegToRad(deg float64) Rad {
	return Rad(deg * math.Pi / 180)
}

func (r Rad) Radians() float64 {
	return float64(r)
}

func (r Rad) Degrees() float64 {
	return float64(r) * 180 / math.Pi
}

// Normalized wraps the angle into [-π, π).
func (r Rad) Normalized() Rad {
	wrapped := math.Mod(float64(r)+math.Pi, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}

	return Rad(wrapped - math.Pi)
}

// Heading returns the direction of the 2D vector p, measured counterclockwise
// from the positive x axis, in the range [-π, π].
func Heading[S Scalar](p Point2D[S]) (Rad, error) {
	if p.MagnitudeSqr() == 0 {
		return 0, fmt.Errorf("%w: heading of %s", ErrZeroVector, p)
	}

	return Rad(math.Atan2(float64(p.coords[1]), float64(p.coords[0]))), nil
}

// AngleTo returns the signed angle that rotates the 2D vector a onto b.
// Positive values turn counterclockwise. The result is in [-π, π).
func AngleTo[S Scalar](a, b Point2D[S]) (Rad, error) {
	from, err := Heading(a)
	if err != nil {
		return 0, err
	}

	to, err := Heading(b)
	if err != nil {
		return 0, err
	}

	return (to - from).Normalized(), nil
}

// AngleBetween returns the unsigned angle between the vectors a and b,
// in the range [0, π]. It works in every dimension.
func AngleBetween[S Scalar, C Coords[S]](a, b Point[S, C]) (Rad, error) {
	la, lb := a.Magnitude(), b.Magnitude()
	if la == 0 || lb == 0 {
		return 0, fmt.Errorf("%w: angle between %s and %s", ErrZeroVector, a, b)
	}

	cos := float64(a.Dot(b)) / (la * lb)

	// rounding can push the value slightly out of the domain of acos
	cos = max(-1, min(1, cos))

	return Rad(math.Acos(cos)), nil
}
