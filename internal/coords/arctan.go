package coords

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownArctan is returned by ParseArctan for unrecognised mode names.
var ErrUnknownArctan = errors.New("unknown arctan mode")

// Arctan selects how the polar angle is recovered from Cartesian form.
type Arctan int

const (
	// ArctanSingle uses atan(y/x). The angle always falls in [-π/2, π/2], so
	// points with x < 0 come back rotated by π. This is what
	// PolarPoint.FromCartesian does.
	ArctanSingle Arctan = iota

	// ArctanQuadrant uses atan2(y, x) and recovers angles in (-π, π].
	ArctanQuadrant
)

// ParseArctan maps "atan" (or "") and "atan2" to their modes.
func ParseArctan(s string) (Arctan, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "atan", "single":
		return ArctanSingle, nil
	case "atan2", "quadrant":
		return ArctanQuadrant, nil
	default:
		return ArctanSingle, fmt.Errorf("%w: %q", ErrUnknownArctan, s)
	}
}

func (a Arctan) String() string {
	switch a {
	case ArctanSingle:
		return "atan"
	case ArctanQuadrant:
		return "atan2"
	default:
		return fmt.Sprintf("Arctan(%d)", int(a))
	}
}

// Polar converts c to polar form using the selected arctangent.
func (a Arctan) Polar(c CartesianPoint) PolarPoint {
	p := PolarPoint{R: math.Sqrt(c.X*c.X + c.Y*c.Y)}
	if a == ArctanQuadrant {
		p.Theta = math.Atan2(c.Y, c.X)
	} else {
		p.Theta = math.Atan(c.Y / c.X)
	}
	return p
}

// TransformPolar is the default transform path for polar points with the
// selected arctangent used on the way back.
func (a Arctan) TransformPolar(p PolarPoint, m Matrix) PolarPoint {
	return a.Polar(m.Apply(p.ToCartesian()))
}

// RotatePolar rotates p by theta through the rotation matrix rather than by
// adding to the angle.
func (a Arctan) RotatePolar(p PolarPoint, theta float64) PolarPoint {
	return a.TransformPolar(p, RotationMatrix(theta))
}
