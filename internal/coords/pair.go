package coords

// PairPoint is an ordered pair read as (x, y). It carries the same data as
// CartesianPoint but is a separate type.
type PairPoint [2]float64

// Pair is a convenience constructor.
func Pair(x, y float64) PairPoint {
	return PairPoint{x, y}
}

// ToCartesian reads the pair as (x, y).
func (p PairPoint) ToCartesian() CartesianPoint {
	return CartesianPoint{X: p[0], Y: p[1]}
}

// FromCartesian stores c as the pair (x, y).
func (PairPoint) FromCartesian(c CartesianPoint) PairPoint {
	return PairPoint{c.X, c.Y}
}

// Transform applies m through the Cartesian form.
func (p PairPoint) Transform(m Matrix) PairPoint {
	return DefaultTransform(p, m)
}

// Rotate turns p by theta radians about the origin.
func (p PairPoint) Rotate(theta float64) PairPoint {
	return DefaultRotate(p, theta)
}

// String formats the pair in Cartesian form.
func (p PairPoint) String() string {
	return p.ToCartesian().String()
}
