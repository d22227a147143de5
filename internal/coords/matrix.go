package coords

import "math"

// Matrix is a row-major 2×2 linear map: m[0] is the first row.
type Matrix [2][2]float64

// Identity returns the identity map.
func Identity() Matrix {
	return Matrix{{1, 0}, {0, 1}}
}

// RotationMatrix returns the counter-clockwise rotation by theta radians:
//
//	cos(theta)  -sin(theta)
//	sin(theta)   cos(theta)
func RotationMatrix(theta float64) Matrix {
	sin, cos := math.Sin(theta), math.Cos(theta)
	return Matrix{
		{cos, -sin},
		{sin, cos},
	}
}

// ScaleMatrix scales x by sx and y by sy.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{{sx, 0}, {0, sy}}
}

// ShearMatrix shears x by kx·y and y by ky·x.
func ShearMatrix(kx, ky float64) Matrix {
	return Matrix{{1, kx}, {ky, 1}}
}

// Apply maps c through m.
func (m Matrix) Apply(c CartesianPoint) CartesianPoint {
	return CartesianPoint{
		X: m[0][0]*c.X + m[0][1]*c.Y,
		Y: m[1][0]*c.X + m[1][1]*c.Y,
	}
}

// Mul returns the product m·n. Applying the result is the same as applying n
// and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j]
		}
	}
	return out
}

// Det returns the determinant.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
