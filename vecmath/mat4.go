package vecmath

import (
	math "github.com/chewxy/math32"
)

// Mat4 is a row-major 4x4 matrix: M[row][col].
type Mat4 struct {
	M [4][4]float32
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	m.M[0][0] = 1
	m.M[1][1] = 1
	m.M[2][2] = 1
	m.M[3][3] = 1
	return m
}

// Mul4 returns a * b (standard dense matrix product).
func Mul4(a, b Mat4) Mat4 {
	var res Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.M[r][k] * b.M[k][c]
			}
			res.M[r][c] = sum
		}
	}
	return res
}

// MulVec4 returns m * v (row-by-column product).
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z + m.M[0][3]*v.W,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z + m.M[1][3]*v.W,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z + m.M[2][3]*v.W,
		W: m.M[3][0]*v.X + m.M[3][1]*v.Y + m.M[3][2]*v.Z + m.M[3][3]*v.W,
	}
}

// TranslationMat4 builds a translation matrix for (x, y, z).
func TranslationMat4(x, y, z float32) Mat4 {
	m := Identity4()
	m.M[0][3] = x
	m.M[1][3] = y
	m.M[2][3] = z
	return m
}

// ScaleMat4 builds a scale matrix for (x, y, z).
func ScaleMat4(x, y, z float32) Mat4 {
	m := Identity4()
	m.M[0][0] = x
	m.M[1][1] = y
	m.M[2][2] = z
	return m
}

// RotationMat4 builds a rotation matrix for angleDeg degrees around axis,
// using the standard Rodrigues axis-angle formula.
func RotationMat4(angleDeg float32, axis Vec3) Mat4 {
	rad := angleDeg * math.Pi / 180
	c := math.Cos(rad)
	s := math.Sin(rad)
	a := Normalize3(axis)

	m := Identity4()
	m.M[0][0] = a.X*a.X*(1-c) + c
	m.M[0][1] = a.X*a.Y*(1-c) - a.Z*s
	m.M[0][2] = a.X*a.Z*(1-c) + a.Y*s

	m.M[1][0] = a.Y*a.X*(1-c) + a.Z*s
	m.M[1][1] = a.Y*a.Y*(1-c) + c
	m.M[1][2] = a.Y*a.Z*(1-c) - a.X*s

	m.M[2][0] = a.Z*a.X*(1-c) - a.Y*s
	m.M[2][1] = a.Z*a.Y*(1-c) + a.X*s
	m.M[2][2] = a.Z*a.Z*(1-c) + c

	return m
}

// LookAtMat4 builds a right-handed view matrix from eye looking toward
// center, with up as the approximate up direction.
func LookAtMat4(eye, center, up Vec3) Mat4 {
	f := Normalize3(Sub3(center, eye))
	u := Normalize3(up)
	s := Normalize3(Cross(f, u))
	newU := Cross(s, f)

	m := Identity4()
	m.M[0][0], m.M[0][1], m.M[0][2] = s.X, s.Y, s.Z
	m.M[1][0], m.M[1][1], m.M[1][2] = newU.X, newU.Y, newU.Z
	m.M[2][0], m.M[2][1], m.M[2][2] = -f.X, -f.Y, -f.Z

	m.M[0][3] = -Dot3(s, eye)
	m.M[1][3] = -Dot3(newU, eye)
	m.M[2][3] = Dot3(f, eye)

	return m
}

// PerspectiveMat4 builds a right-handed OpenGL-style perspective projection
// matrix that maps depths between near and far to NDC-z in [-1, 1]. The
// viewport step in DrawTriangles does not remap z, and the rasterizer drops
// fragments whose interpolated z lies outside [0, 1].
func PerspectiveMat4(fovDeg, aspect, near, far float32) Mat4 {
	f := 1 / math.Tan((fovDeg*0.5)*math.Pi/180)

	var m Mat4
	m.M[0][0] = f / aspect
	m.M[1][1] = f
	m.M[2][2] = (far + near) / (near - far)
	m.M[2][3] = (2 * far * near) / (near - far)
	m.M[3][2] = -1
	m.M[3][3] = 0
	return m
}
