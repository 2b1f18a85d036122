// Package affine has 2D affine transforms to map page coordinates
// into an output frame.
package affine

// Matrix is an affine transform in the PDF layout:
//
//  A  C  E
//  B  D  F
//  0  0  1
//
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//
func Translation(dx, dy float64) Matrix {
	return Matrix{A: 1, D: 1, E: dx, F: dy}
}

// Scaling Matrix:
//
//  sx  0   0
//  0   sy  0
//
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Then returns the transform that applies m first and n second.
func (m Matrix) Then(n Matrix) Matrix {
	return n.Mul(m)
}

// Mul combines two transforms, the result applies o first and m second.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// Apply transforms the given x,y point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	tx := m.A*x + m.C*y + m.E
	ty := m.B*x + m.D*y + m.F
	return tx, ty
}
