package geom

import "math/rand/v2"

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomPoint returns a point uniformly sampled from within the unit ball.
func RandomPoint[S Scalar, C Coords[S]]() Point[S, C] {
	for {
		var p Point[S, C]
		for i := range p.Dim() {
			p.coords[i] = RandomIn[S](-1, 1)
		}

		if p.MagnitudeSqr() <= 1 {
			return p
		}
	}
}
