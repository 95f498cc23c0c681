package pendulum

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 homogeneous transform. It acts on column vectors
// (x, y, z, 1), so applying m to p computes m * p.
//
// The zero value is not a valid transform; start from Identity.
type Matrix struct {
	m mgl64.Mat4
}

// Vec4 is a homogeneous point or direction.
type Vec4 = mgl64.Vec4

// Point returns the homogeneous point (x, y, z, 1).
func Point(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

// Origin is the homogeneous origin (0, 0, 0, 1).
var Origin = Point(0, 0, 0)

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{mgl64.Ident4()}
}

// Translate returns a transform that moves points by (dx, dy, dz).
func Translate(dx, dy, dz float64) Matrix {
	return Matrix{mgl64.Translate3D(dx, dy, dz)}
}

// RotateX returns a rotation of angle radians about the x axis.
func RotateX(angle float64) Matrix {
	return Matrix{mgl64.HomogRotate3DX(angle)}
}

// RotateY returns a rotation of angle radians about the y axis.
func RotateY(angle float64) Matrix {
	return Matrix{mgl64.HomogRotate3DY(angle)}
}

// RotateZ returns a counter-clockwise rotation of angle radians about the
// z axis, i.e. in the xy plane.
func RotateZ(angle float64) Matrix {
	return Matrix{mgl64.HomogRotate3DZ(angle)}
}

// Scale returns a transform scaling each axis independently.
func Scale(sx, sy, sz float64) Matrix {
	return Matrix{mgl64.Scale3D(sx, sy, sz)}
}

// ShearX returns a shear that offsets y and z proportionally to x.
func ShearX(shearY, shearZ float64) Matrix {
	return Matrix{mgl64.ShearX3D(shearY, shearZ)}
}

// ShearY returns a shear that offsets x and z proportionally to y.
func ShearY(shearX, shearZ float64) Matrix {
	return Matrix{mgl64.ShearY3D(shearX, shearZ)}
}

// ShearZ returns a shear that offsets x and y proportionally to z.
func ShearZ(shearX, shearY float64) Matrix {
	return Matrix{mgl64.ShearZ3D(shearX, shearY)}
}

// FromRows builds a matrix from row-major values, which reads naturally in
// source code.
func FromRows(rows [4][4]float64) Matrix {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, rows[r][c])
		}
	}
	return Matrix{m}
}

// Concatenate returns the transform that applies a first and then b:
//
//	Apply(Concatenate(a, b), p) == Apply(b, Apply(a, p))
func Concatenate(a, b Matrix) Matrix {
	return Matrix{b.m.Mul4(a.m)}
}

// Then is the method form of Concatenate: m.Then(next) applies m, then next.
func (m Matrix) Then(next Matrix) Matrix {
	return Concatenate(m, next)
}

// Apply transforms the homogeneous vector p.
func Apply(m Matrix, p Vec4) Vec4 {
	return m.m.Mul4x1(p)
}

// Apply transforms the homogeneous vector p.
func (m Matrix) Apply(p Vec4) Vec4 {
	return Apply(m, p)
}

// At returns the element at the given row and column.
func (m Matrix) At(row, col int) float64 {
	return m.m.At(row, col)
}

// Mat4 exposes the underlying column-major mgl64 matrix.
func (m Matrix) Mat4() mgl64.Mat4 {
	return m.m
}

// ApproxEqual reports whether every element of m and other differs by at
// most eps.
func (m Matrix) ApproxEqual(other Matrix, eps float64) bool {
	// mgl64's ApproxEqualThreshold is relative, which is too strict near
	// zero for rotation terms.
	for i := range m.m {
		if math.Abs(m.m[i]-other.m[i]) > eps {
			return false
		}
	}
	return true
}

// String formats the matrix row by row.
func (m Matrix) String() string {
	return m.m.String()
}

// segmentTransform returns the transform that carries a node's local
// origin to its tip: out along +x by length, rotated by angle radians, then
// anchored at the parent's position.
func segmentTransform(parentX, parentY, angle, length float64) Matrix {
	return Translate(length, 0, 0).
		Then(RotateZ(angle)).
		Then(Translate(parentX, parentY, 0))
}
