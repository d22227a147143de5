package coords

import "strconv"

// CartesianPoint is a point given by its x and y displacement from the origin.
type CartesianPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Cartesian is a convenience constructor.
func Cartesian(x, y float64) CartesianPoint {
	return CartesianPoint{X: x, Y: y}
}

// ToCartesian returns c unchanged.
func (c CartesianPoint) ToCartesian() CartesianPoint {
	return c
}

// FromCartesian returns c unchanged.
func (CartesianPoint) FromCartesian(c CartesianPoint) CartesianPoint {
	return c
}

// Transform applies m directly to (x, y).
func (c CartesianPoint) Transform(m Matrix) CartesianPoint {
	x, y := c.X, c.Y
	c.X = m[0][0]*x + m[0][1]*y
	c.Y = m[1][0]*x + m[1][1]*y
	return c
}

// Rotate turns c by theta radians about the origin.
func (c CartesianPoint) Rotate(theta float64) CartesianPoint {
	return DefaultRotate(c, theta)
}

// String formats the point as "x = <x>, y = <y>".
func (c CartesianPoint) String() string {
	return "x = " + formatFloat(c.X) + ", y = " + formatFloat(c.Y)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
