package coords

import "math"

// PolarPoint is a point given by its distance from the origin and its angle,
// in radians, from the positive x axis.
type PolarPoint struct {
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
}

// Polar is a convenience constructor.
func Polar(r, theta float64) PolarPoint {
	return PolarPoint{R: r, Theta: theta}
}

// ToCartesian returns (r cos θ, r sin θ).
func (p PolarPoint) ToCartesian() CartesianPoint {
	return CartesianPoint{
		X: p.R * math.Cos(p.Theta),
		Y: p.R * math.Sin(p.Theta),
	}
}

// FromCartesian uses the single-argument arctangent of y/x. The angle is only
// correct for x > 0; see ArctanQuadrant for the full-circle conversion.
func (PolarPoint) FromCartesian(c CartesianPoint) PolarPoint {
	return ArctanSingle.Polar(c)
}

// Transform applies m through the Cartesian form and converts back with FromCartesian.
func (p PolarPoint) Transform(m Matrix) PolarPoint {
	return DefaultTransform(p, m)
}

// Rotate adds theta to the stored angle. It never leaves polar form, so it is
// exact and keeps quadrant information the Cartesian round-trip would lose.
func (p PolarPoint) Rotate(theta float64) PolarPoint {
	p.Theta += theta
	return p
}

// String formats the point as "r = <r> θ = <theta>".
func (p PolarPoint) String() string {
	return "r = " + formatFloat(p.R) + " θ = " + formatFloat(p.Theta)
}
