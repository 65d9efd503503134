package swrast

import "github.com/gogpu/swrast/vecmath"

const resolveCullThreshold = 0.999

// Resolve composites every pixel's A-buffer fragment list, front-to-back,
// over the background color set by the last Clear and writes the result into
// the color buffer. Pixels with an empty list are left untouched. Alpha is
// always 255 after resolve.
//
// Resolve is idempotent: calling it again without an intervening Clear or
// DrawTriangles reproduces the same output, since it only reads the
// A-buffer and overwrites (never accumulates onto) the color buffer.
func (c *Context) Resolve() {
	if c == nil {
		return
	}
	for pixel := range c.color {
		if c.abuf.IsEmpty(pixel) {
			continue
		}

		bgR, bgG, bgB, _ := vecmath.UnpackRGBA(c.clearBG)
		bg := [3]float32{float32(bgR) / 255, float32(bgG) / 255, float32(bgB) / 255}

		var accColor, accOpacity [3]float32
		c.abuf.Walk(pixel, func(_ float32, color, opacity vecmath.Vec3) {
			col := [3]float32{color.X, color.Y, color.Z}
			op := [3]float32{opacity.X, opacity.Y, opacity.Z}
			for i := 0; i < 3; i++ {
				accColor[i] += (1 - accOpacity[i]) * col[i]
				accOpacity[i] += (1 - accOpacity[i]) * op[i]
			}
		})

		var final [3]float32
		for i := 0; i < 3; i++ {
			final[i] = accColor[i] + bg[i]*(1-accOpacity[i])
		}

		c.color[pixel] = vecmath.PackRGBA(
			vecmath.ClampByte(final[0]),
			vecmath.ClampByte(final[1]),
			vecmath.ClampByte(final[2]),
			255,
		)
	}
}
