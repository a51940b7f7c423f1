package bezier

import (
	"fmt"
	"iter"
)

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// segment returns the index of the segment that covers t.
func (c *Curve) segment(t float64) (int, error) {
	if c.vertices < 2 {
		return 0, fmt.Errorf("%w: curve has %d", ErrTooFewVertices, c.vertices)
	}
	if !(t >= 0 && t <= 1) {
		return 0, fmt.Errorf("%w: t = %g", ErrOutOfDomain, t)
	}
	seg := int(t * float64(c.vertices-1))
	if seg == c.vertices-1 {
		// t == 1 lands one past the last segment.
		seg--
	}
	return seg, nil
}

// evalDim evaluates dimension d of segment seg at t using de Casteljau's
// algorithm. scratch must have a length of grade+1.
func (c *Curve) evalDim(seg, d int, t float64, scratch []float64) float64 {
	for k := range scratch {
		scratch[k] = c.buf[c.offset(seg, k, d)]
	}
	for i := 1; i <= c.grade; i++ {
		for j := 0; j <= c.grade-i; j++ {
			scratch[j] = lerp(scratch[j], scratch[j+1], t)
		}
	}
	return scratch[0]
}

// EvalInto evaluates the curve at t ∈ [0, 1] and stores the resulting point
// in dst, which must have a length of [Curve.Dimension].
//
// The segment is selected by scaling t to the number of segments, with t = 1
// belonging to the last segment. t itself is used as the parameter within the
// segment, so a curve of n segments passes through its first anchor at t = 0
// and its last anchor at t = 1, and its segments are shaped by where their
// control points are placed.
//
// Evaluation doesn't modify the curve, and evaluating the same t twice yields
// the same point.
func (c *Curve) EvalInto(t float64, dst []float64) error {
	if err := c.checkDim(len(dst)); err != nil {
		return err
	}
	seg, err := c.segment(t)
	if err != nil {
		return err
	}
	scratch := make([]float64, c.grade+1)
	for d := range dst {
		dst[d] = c.evalDim(seg, d, t, scratch)
	}
	return nil
}

// Eval is like [Curve.EvalInto] but returns the point in a new slice.
func (c *Curve) Eval(t float64) ([]float64, error) {
	if _, err := c.segment(t); err != nil {
		return nil, err
	}
	out := make([]float64, c.dim)
	if err := c.EvalInto(t, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Eval2 is like [Curve.Eval] for two-dimensional curves.
func (c *Curve) Eval2(t float64) (Point, error) {
	var out [2]float64
	if err := c.EvalInto(t, out[:]); err != nil {
		return Point{}, err
	}
	return Pt(out[0], out[1]), nil
}

// Eval3 is like [Curve.Eval] for three-dimensional curves.
func (c *Curve) Eval3(t float64) (Point3, error) {
	var out [3]float64
	if err := c.EvalInto(t, out[:]); err != nil {
		return Point3{}, err
	}
	return Pt3(out[0], out[1], out[2]), nil
}

// Samples returns an iterator that evaluates the curve at n+1 evenly spaced
// parameters from 0 to 1, yielding each parameter and the point at it. This
// is suitable for approximating the curve with a polyline.
//
// The iterator yields nothing if n < 1 or if the curve has fewer than two
// vertices.
func (c *Curve) Samples(n int) iter.Seq2[float64, []float64] {
	return func(yield func(float64, []float64) bool) {
		if n < 1 || c.vertices < 2 {
			return
		}
		for i := range n + 1 {
			t := float64(i) / float64(n)
			pt, err := c.Eval(t)
			if err != nil {
				panic("unreachable")
			}
			if !yield(t, pt) {
				return
			}
		}
	}
}
