package geom

// Scalar is the set of numeric kinds a Point can hold. Integer kinds work for
// the exact operations. Division, Magnitude and everything derived from a
// square root compute in float64 and truncate when stored back as integers.
type Scalar interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Coords is the set of coordinate arrays, one per supported dimension.
// Type parameters can not be integer constants, so every dimension needs
// its own array type in this union. It covers dimensions 1 to 8.
type Coords[S Scalar] interface {
	[1]S | [2]S | [3]S | [4]S | [5]S | [6]S | [7]S | [8]S
}

// DefaultEpsilon is the absolute tolerance used by ApproxEqual and Collinear.
const DefaultEpsilon = 1e-9
