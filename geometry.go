package geom

import (
	"fmt"
	"math"
)

// Collinear reports whether the three points lie on a common line,
// using DefaultEpsilon as tolerance.
func Collinear[S Scalar, C Coords[S]](p1, p2, p3 Point[S, C]) bool {
	return CollinearTol(p1, p2, p3, DefaultEpsilon)
}

// CollinearTol reports whether the three points lie on a common line.
//
// The displacements u = p2-p1 and v = p3-p1 are parallel if every 2x2 minor
// u[i]*v[j] - u[j]*v[i] is zero. In 2D this is the scalar cross product, in
// 3D these are the components of the cross product.
//
// The tolerance is absolute and applies to products of two displacements,
// so it gets stricter quadratically as the points move further apart.
// Widely spread points need a larger tolerance. Points with NaN coordinates
// are never collinear.
func CollinearTol[S Scalar, C Coords[S]](p1, p2, p3 Point[S, C], tolerance float64) bool {
	u := p2.Sub(p1)
	v := p3.Sub(p1)

	n := u.Dim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			minor := float64(u.coords[i])*float64(v.coords[j]) - float64(u.coords[j])*float64(v.coords[i])
			if !(math.Abs(minor) <= tolerance) {
				return false
			}
		}
	}

	return true
}

// Lerp does a linear interpolation between p1 and p2 using the factor t.
// A value of 0 returns p1, a value of 1 returns p2. The factor is not
// clamped, values outside of [0, 1] extrapolate along the line.
func Lerp[S Scalar, C Coords[S]](p1, p2 Point[S, C], t float64) Point[S, C] {
	var r Point[S, C]
	for i := range r.Dim() {
		// same as p1 + t*(p2-p1), but exact at both ends
		r.coords[i] = S((1-t)*float64(p1.coords[i]) + t*float64(p2.coords[i]))
	}
	return r
}

func Midpoint[S Scalar, C Coords[S]](p1, p2 Point[S, C]) Point[S, C] {
	return Lerp(p1, p2, 0.5)
}

// ProjectOntoLine returns the orthogonal projection of p onto the infinite
// line through a and b. It fails with ErrDegenerateLine if a equals b.
func (p Point[S, C]) ProjectOntoLine(a, b Point[S, C]) (Point[S, C], error) {
	t, ok := projectionFactor(p, a, a, b)
	if !ok {
		return Point[S, C]{}, fmt.Errorf("%w: line through %s and %s", ErrDegenerateLine, a, b)
	}

	for i := range a.Dim() {
		a.coords[i] += S(t * (float64(b.coords[i]) - float64(a.coords[i])))
	}

	return a, nil
}

// projectionFactor returns (p-origin)·d / d·d with d = to-from, computed in
// float64. Both vectors are divided by the largest component of d first, so
// the squares neither overflow nor wrap around for integer scalars.
// It returns false if d is the zero vector.
func projectionFactor[S Scalar, C Coords[S]](p, origin, from, to Point[S, C]) (float64, bool) {
	var scale float64
	for i := range p.Dim() {
		scale = max(scale, math.Abs(float64(to.coords[i])-float64(from.coords[i])))
	}

	if scale == 0 {
		return 0, false
	}

	var num, denom float64
	for i := range p.Dim() {
		d := (float64(to.coords[i]) - float64(from.coords[i])) / scale
		w := (float64(p.coords[i]) - float64(origin.coords[i])) / scale
		num += w * d
		denom += d * d
	}

	return num / denom, true
}

// ReflectAcrossLine mirrors p at the line through a and b. In 2D this is the
// usual reflection across a line. It fails with ErrDegenerateLine if a equals b.
func (p Point[S, C]) ReflectAcrossLine(a, b Point[S, C]) (Point[S, C], error) {
	proj, err := p.ProjectOntoLine(a, b)
	if err != nil {
		return Point[S, C]{}, err
	}

	for i := range p.Dim() {
		proj.coords[i] = 2*proj.coords[i] - p.coords[i]
	}

	return proj, nil
}

// ReflectAcrossPlane mirrors p at the plane that contains the point pt and
// is orthogonal to normal. The normal does not need to be normalized, but
// must not be the zero vector.
func (p Point[S, C]) ReflectAcrossPlane(pt, normal Point[S, C]) (Point[S, C], error) {
	var origin Point[S, C]

	f, ok := projectionFactor(p, pt, origin, normal)
	if !ok {
		return Point[S, C]{}, fmt.Errorf("%w: normal %s", ErrDegeneratePlane, normal)
	}

	for i := range p.Dim() {
		p.coords[i] -= S(2 * f * float64(normal.coords[i]))
	}

	return p, nil
}

// Reflect picks the reflection by dimension. For 2D points, a and b are two
// points on the line to reflect across. For 3D points, a is a point on the
// plane and b is its normal. Other dimensions return ErrUnsupportedDimension,
// use ReflectAcrossLine or ReflectAcrossPlane there.
func (p Point[S, C]) Reflect(a, b Point[S, C]) (Point[S, C], error) {
	switch p.Dim() {
	case 2:
		return p.ReflectAcrossLine(a, b)
	case 3:
		return p.ReflectAcrossPlane(a, b)
	default:
		return Point[S, C]{}, fmt.Errorf("%w: reflect in %d dimensions", ErrUnsupportedDimension, p.Dim())
	}
}
