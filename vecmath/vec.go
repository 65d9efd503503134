// Package vecmath provides the 2D/3D/4D vector and 4x4 matrix primitives
// used by the rasterizer's transform front end.
package vecmath

import (
	math "github.com/chewxy/math32"
)

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D vector, used for positions, normals, and colors.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4D vector, used for clip-space positions and RGBA colors.
type Vec4 struct {
	X, Y, Z, W float32
}

// V3 returns the xyz components of v as a Vec3, dropping W.
func (v Vec4) V3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// V4 extends v to a Vec4 with the given w.
func (v Vec3) V4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Add3 returns p + q.
func Add3(p, q Vec3) Vec3 {
	return Vec3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub3 returns p - q.
func Sub3(p, q Vec3) Vec3 {
	return Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale3 returns v scaled by s.
func Scale3(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot3 returns the dot product of a and b.
func Dot3(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length3 returns the Euclidean length of v.
func Length3(v Vec3) float32 {
	return math.Sqrt(Dot3(v, v))
}

// Normalize3 returns v scaled to unit length. Returns v unchanged if its
// length is zero.
func Normalize3(v Vec3) Vec3 {
	l := Length3(v)
	if l == 0 {
		return v
	}
	return Scale3(v, 1/l)
}

// Lerp3 linearly interpolates between a and b by t.
func Lerp3(a, b Vec3, t float32) Vec3 {
	return Add3(Scale3(a, 1-t), Scale3(b, t))
}

// Lerp4 linearly interpolates between a and b by t.
func Lerp4(a, b Vec4, t float32) Vec4 {
	return Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}
