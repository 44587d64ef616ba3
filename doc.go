// Package geom provides a fixed-dimension point type for geometry math.
//
// A Point is generic over its scalar kind and its coordinate array, so the
// dimension is part of the type: Point2D[float64] and Point3D[float64] can
// never be mixed in one operation. Most operations return a new value, only
// Scale and Set modify the receiver.
//
// Operations that have no well-defined result, like dividing by zero or
// projecting onto a line defined by two equal points, return one of the
// sentinel errors of this package instead of a point holding NaN or Inf values.
//
// There is also a type named Rad to represent angle values in radian.
package geom
