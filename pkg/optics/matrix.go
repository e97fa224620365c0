package optics

// Mat2 is a 2x2 ABCD matrix, row-major. It encodes the linear part of a
// paraxial element's action on a ray vector and marshals to JSON as
// [[A,B],[C,D]].
type Mat2 [2][2]float64

// Vec2 is a 2-vector over (height, angle). Used both for ray state and for
// the affine offset an element contributes.
type Vec2 [2]float64

// Identity returns the 2x2 identity matrix.
func Identity() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// Mul returns the matrix product m*other.
func (m Mat2) Mul(other Mat2) Mat2 {
	return Mat2{
		{m[0][0]*other[0][0] + m[0][1]*other[1][0], m[0][0]*other[0][1] + m[0][1]*other[1][1]},
		{m[1][0]*other[0][0] + m[1][1]*other[1][0], m[1][0]*other[0][1] + m[1][1]*other[1][1]},
	}
}

// Apply returns the matrix-vector product m*v.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v[0] + other[0], v[1] + other[1]}
}
