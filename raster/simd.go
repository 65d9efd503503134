package raster

import "github.com/gogpu/swrast/shader"

// lane4 holds one edge function's value at four consecutive pixels.
type lane4 = [4]float32

func broadcast4(v float32) lane4 {
	return lane4{v, v, v, v}
}

func add4(a, b lane4) lane4 {
	return lane4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// RasterizeSIMD4 rasterizes tri the same way RasterizeScalar does, but steps
// four pixels at a time using [4]float32 lanes the compiler can
// autovectorize. Coverage is tested across all four lanes before any lane is
// shaded, and shading itself reuses the same per-pixel math as the scalar
// path so the two variants produce bit-identical A-buffer contents. The row
// tail (pixels past the last multiple of 4) is handled by the scalar
// per-pixel loop, seeded from the same row edge state rather than
// recomputed from the triangle's vertices, so it can't drift from the SIMD
// lanes that preceded it.
func RasterizeSIMD4(tri Triangle, width, height int, cullBackface bool, fs shader.FragmentShader, uniforms any, sink Sink) {
	v0, v1, v2 := tri.V[0].Position, tri.V[1].Position, tri.V[2].Position

	signedArea := newEdgeFunction(v0.X, v0.Y, v1.X, v1.Y).evaluate(v2.X, v2.Y)

	if cullBackface && signedArea < 0 {
		return
	}
	if abs32(signedArea) < degenerateAreaEpsilon {
		return
	}

	minX, minY, maxX, maxY, ok := boundingBox(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y, width, height)
	if !ok {
		return
	}

	te := newTriangleEdges(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)

	startX := float32(minX) + 0.5
	startY := float32(minY) + 0.5

	rowW0 := te.edges[0].evaluate(startX, startY)
	rowW1 := te.edges[1].evaluate(startX, startY)
	rowW2 := te.edges[2].evaluate(startX, startY)

	stepX0, stepY0 := te.edges[0].A, te.edges[0].B
	stepX1, stepY1 := te.edges[1].A, te.edges[1].B
	stepX2, stepY2 := te.edges[2].A, te.edges[2].B

	stepX0x4 := stepX0 * 4
	stepX1x4 := stepX1 * 4
	stepX2x4 := stepX2 * 4

	off0 := lane4{0, stepX0, stepX0 * 2, stepX0 * 3}
	off1 := lane4{0, stepX1, stepX1 * 2, stepX1 * 3}
	off2 := lane4{0, stepX2, stepX2 * 2, stepX2 * 3}

	span := maxX - minX + 1
	simdCols := span &^ 3 // largest multiple of 4 <= span

	for py := minY; py <= maxY; py++ {
		w0 := add4(broadcast4(rowW0), off0)
		w1 := add4(broadcast4(rowW1), off1)
		w2 := add4(broadcast4(rowW2), off2)

		px := minX
		simdEnd := minX + simdCols
		for ; px < simdEnd; px += 4 {
			for i := 0; i < 4; i++ {
				if w0[i] >= 0 && w1[i] >= 0 && w2[i] >= 0 {
					shadePixel(&tri, px+i, py, w0[i], w1[i], w2[i], te.invArea, width, fs, uniforms, sink)
				}
			}
			w0 = add4(w0, broadcast4(stepX0x4))
			w1 = add4(w1, broadcast4(stepX1x4))
			w2 = add4(w2, broadcast4(stepX2x4))
		}

		// Tail: reseed scalar edge values from the row state at px rather
		// than from the SIMD lane, which has already stepped one group of
		// four beyond the tail's starting column once the loop above exits.
		offset := float32(px - minX)
		tw0 := rowW0 + offset*stepX0
		tw1 := rowW1 + offset*stepX1
		tw2 := rowW2 + offset*stepX2

		for ; px <= maxX; px++ {
			if tw0 >= 0 && tw1 >= 0 && tw2 >= 0 {
				shadePixel(&tri, px, py, tw0, tw1, tw2, te.invArea, width, fs, uniforms, sink)
			}
			tw0 += stepX0
			tw1 += stepX1
			tw2 += stepX2
		}

		rowW0 += stepY0
		rowW1 += stepY1
		rowW2 += stepY2
	}
}
