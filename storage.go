package bezier

import "math"

// chunkCoords is the allocation granularity of coordinate buffers, one 4 KiB
// chunk of float64 values.
const chunkCoords = 4096 / 8

// maxCoords is the largest coordinate buffer we're willing to allocate. It is
// a multiple of chunkCoords, so rounding up to whole chunks can't overflow.
const maxCoords = (math.MaxInt / 8) / chunkCoords * chunkCoords

// Coordinates are stored segment by segment. Each segment occupies a block of
// (grade+1)*dim values: its control points in order, and for each control
// point its coordinates in order. The end anchor of one segment and the start
// anchor of the next are stored separately.
//
// Point index n refers to control point n%(grade+1) of segment n/(grade+1),
// which puts its first coordinate at n*dim.

// offset returns the position of coordinate d of control point k in segment
// seg. Every access to the buffer goes through offset.
func (c *Curve) offset(seg, k, d int) int {
	return (seg*(c.grade+1)+k)*c.dim + d
}

// pointOffset returns the position of the first coordinate of the control
// point with index n.
func (c *Curve) pointOffset(n int) int {
	return c.offset(n/(c.grade+1), n%(c.grade+1), 0)
}

// storedPoints returns the number of control points stored for a curve with
// the given grade and number of vertices. A curve with a single vertex stores
// just that anchor.
func storedPoints(grade, vertices int) (int, bool) {
	switch vertices {
	case 0:
		return 0, true
	case 1:
		return 1, true
	default:
		return mulCoords(vertices-1, grade+1)
	}
}

// requiredCoords returns the number of coordinates needed to store a curve.
// It reports false if that number exceeds maxCoords.
func requiredCoords(dim, grade, vertices int) (int, bool) {
	n, ok := storedPoints(grade, vertices)
	if !ok {
		return 0, false
	}
	return mulCoords(n, dim)
}

func mulCoords(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > maxCoords/b {
		return 0, false
	}
	return a * b, true
}

// roundChunks rounds n up to a whole, non-zero number of chunks.
func roundChunks(n int) int {
	if n == 0 {
		return chunkCoords
	}
	return (n + chunkCoords - 1) / chunkCoords * chunkCoords
}

// grow makes sure the buffer can hold required coordinates, which must not
// exceed maxCoords. The buffer is replaced, never resized in place, so any
// slice of the old buffer stops observing the curve.
func (c *Curve) grow(required int) {
	if required <= len(c.buf) {
		return
	}
	buf := make([]float64, roundChunks(required))
	copy(buf, c.buf)
	Logger().Debug("bezier: grew coordinate buffer", "from", len(c.buf), "to", len(buf))
	c.buf = buf
}
