package swrast

import "github.com/gogpu/swrast/vecmath"

// MatrixMode selects which transform stack subsequent Push, Pop, Load,
// Translate, Scale, Rotate, LookAt, and Perspective calls operate on.
func (c *Context) MatrixMode(mode vecmath.MatrixMode) {
	if c == nil {
		return
	}
	c.stacks.Mode = mode
}

// Push duplicates the active stack's top matrix, clamping (no-op) rather
// than erroring if the stack is already at capacity.
func (c *Context) Push() {
	if c == nil {
		return
	}
	c.stacks.Active().Push()
}

// Pop discards the active stack's top matrix, clamping (no-op) rather than
// erroring if only one matrix remains.
func (c *Context) Pop() {
	if c == nil {
		return
	}
	c.stacks.Active().Pop()
}

// LoadIdentity replaces the active stack's top matrix with the identity.
func (c *Context) LoadIdentity() {
	if c == nil {
		return
	}
	c.stacks.Active().SetTop(vecmath.Identity4())
}

// Load replaces the active stack's top matrix with m.
func (c *Context) Load(m vecmath.Mat4) {
	if c == nil {
		return
	}
	c.stacks.Active().SetTop(m)
}

// Translate post-multiplies a translation matrix onto the active stack's
// top: top <- top * translate(x, y, z).
func (c *Context) Translate(x, y, z float32) {
	if c == nil {
		return
	}
	c.stacks.Active().Multiply(vecmath.TranslationMat4(x, y, z))
}

// Scale post-multiplies a scale matrix onto the active stack's top.
func (c *Context) Scale(x, y, z float32) {
	if c == nil {
		return
	}
	c.stacks.Active().Multiply(vecmath.ScaleMat4(x, y, z))
}

// Rotate post-multiplies a rotation matrix (angleDeg about axis) onto the
// active stack's top.
func (c *Context) Rotate(angleDeg float32, axis vecmath.Vec3) {
	if c == nil {
		return
	}
	c.stacks.Active().Multiply(vecmath.RotationMat4(angleDeg, axis))
}

// LookAt post-multiplies a right-handed view matrix onto the active stack's
// top.
func (c *Context) LookAt(eye, center, up vecmath.Vec3) {
	if c == nil {
		return
	}
	c.stacks.Active().Multiply(vecmath.LookAtMat4(eye, center, up))
}

// Perspective post-multiplies a right-handed perspective projection matrix
// onto the active stack's top.
func (c *Context) Perspective(fovDeg, aspect, near, far float32) {
	if c == nil {
		return
	}
	c.stacks.Active().Multiply(vecmath.PerspectiveMat4(fovDeg, aspect, near, far))
}

// GetModelViewMatrix returns the modelview stack's current top matrix.
func (c *Context) GetModelViewMatrix() vecmath.Mat4 {
	if c == nil {
		return vecmath.Identity4()
	}
	return c.stacks.ModelView.Top()
}

// GetProjectionMatrix returns the projection stack's current top matrix.
func (c *Context) GetProjectionMatrix() vecmath.Mat4 {
	if c == nil {
		return vecmath.Identity4()
	}
	return c.stacks.Projection.Top()
}
