// Package cpgeom converts between 2D points and the vectors of the
// chipmunk2d physics engine.
package cpgeom

import (
	"github.com/geomkit/geom"
	"github.com/jakecoffman/cp/v2"
)

// ToVector converts a 2D point into a cp.Vector.
func ToVector[S geom.Scalar](p geom.Point2D[S]) cp.Vector {
	return cp.Vector{
		X: float64(p.At(0)),
		Y: float64(p.At(1)),
	}
}

// FromVector converts a cp.Vector into a 2D point with scalar type S.
// Integer scalar types truncate the coordinates.
func FromVector[S geom.Scalar](v cp.Vector) geom.Point2D[S] {
	return geom.Pt2(S(v.X), S(v.Y))
}

// ToVectors converts a polyline or polygon, e.g. to build a cp.PolyShape.
func ToVectors[S geom.Scalar](points []geom.Point2D[S]) []cp.Vector {
	vectors := make([]cp.Vector, len(points))
	for idx := range points {
		vectors[idx] = ToVector(points[idx])
	}

	return vectors
}

func FromVectors[S geom.Scalar](vectors []cp.Vector) []geom.Point2D[S] {
	points := make([]geom.Point2D[S], len(vectors))
	for idx := range vectors {
		points[idx] = FromVector[S](vectors[idx])
	}

	return points
}

// Similar reports whether p and v are closer than tolerance to each other.
func Similar[S geom.Scalar](p geom.Point2D[S], v cp.Vector, tolerance float64) bool {
	return ToVector(p).Distance(v) < tolerance
}
