package coords

// Coordinates is implemented by every point representation.
type Coordinates interface {
	// ToCartesian returns the point in canonical Cartesian form.
	ToCartesian() CartesianPoint
}

// Point is the constraint for representations that can be rebuilt from
// Cartesian form. The receiver of FromCartesian is ignored, so the zero value
// of T acts as its constructor.
type Point[T any] interface {
	Coordinates
	FromCartesian(c CartesianPoint) T
}

// LinearTransform is implemented by representations that support 2×2 linear maps.
type LinearTransform[T any] interface {
	Point[T]
	Transform(m Matrix) T
	Rotate(theta float64) T
}

// FromCartesian builds a T from a Cartesian point.
func FromCartesian[T Point[T]](c CartesianPoint) T {
	var zero T
	return zero.FromCartesian(c)
}

// Convert re-expresses p in the representation T.
func Convert[T Point[T]](p Coordinates) T {
	return FromCartesian[T](p.ToCartesian())
}

// DefaultTransform converts p to Cartesian form, applies m and converts back.
func DefaultTransform[T Point[T]](p T, m Matrix) T {
	return FromCartesian[T](m.Apply(p.ToCartesian()))
}

// DefaultRotate rotates p by theta radians through the type's own Transform.
func DefaultRotate[T LinearTransform[T]](p T, theta float64) T {
	return p.Transform(RotationMatrix(theta))
}

// Transform applies m to p using the type's Transform.
func Transform[T LinearTransform[T]](p T, m Matrix) T {
	return p.Transform(m)
}

// Rotate rotates p by theta radians using the type's Rotate.
func Rotate[T LinearTransform[T]](p T, theta float64) T {
	return p.Rotate(theta)
}
