// Package coords provides interchangeable 2D coordinate representations and
// linear transforms over them.
//
// Three representations are supported:
//   - CartesianPoint: the canonical (x, y) form. Every conversion routes through it.
//   - PolarPoint: radius and angle in radians.
//   - PairPoint: a bare [2]float64 read as (x, y).
//
// # Conversions
//
// Every representation implements Coordinates (ToCartesian) and the generic
// Point constraint (FromCartesian). The Polar conversion from Cartesian uses the
// single-argument arctangent of y/x, so angles are only recovered for points with
// x > 0. Points in the second and third quadrants come back rotated by π with
// the same radius. Use ArctanQuadrant when the full angle is required.
//
// # Linear Transforms
//
// LinearTransform adds Transform (apply a 2×2 Matrix) and Rotate. The default
// implementations live in DefaultTransform and DefaultRotate; types override them
// where a shorter path exists:
//   - CartesianPoint.Transform applies the matrix directly.
//   - PolarPoint.Rotate adds to the stored angle without leaving polar form.
//
// # Error Handling
//
// Nothing in this package returns an error or panics. Degenerate inputs follow
// IEEE 754 semantics: the Polar form of (0, y) has theta ±π/2 because y/0 is ±Inf,
// and the origin yields a NaN angle.
package coords
