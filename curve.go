package bezier

import (
	"fmt"
	"iter"
	"slices"
)

// DefaultGrade is the grade used when a curve is created with grade 0. It
// makes every segment a cubic Bézier.
const DefaultGrade = 3

// MaxGrade is the largest supported grade. It is the largest grade whose
// binomial coefficients all fit in a uint64.
const MaxGrade = 67

// Curve is a chain of Bézier segments in a space of fixed dimension.
//
// A curve with n vertices consists of n-1 segments, each of which is defined
// by grade+1 control points. The first and last control points of a segment
// are its anchors, the points in between are handles.
//
// Control points are addressed by index. Control point k of segment s has
// index s*(grade+1)+k; in particular, the end anchor of segment s (index
// s*(grade+1)+grade) and the start anchor of segment s+1 are separate control
// points. [Curve.AppendPoint] keeps them equal, [Curve.SetPoint] does not.
//
// A Curve must not be used concurrently.
type Curve struct {
	dim      int
	grade    int
	vertices int

	// buf holds all control points. Its length is the allocated capacity,
	// which is always a whole number of chunks.
	buf       []float64
	binomials []uint64
}

// New returns a curve in a space with dim dimensions, whose segments have
// grade+1 control points each. A grade of 0 selects [DefaultGrade].
//
// The curve starts out with the given number of vertices, all of whose
// control points are at the origin.
func New(dim, grade, vertices int) (*Curve, error) {
	if dim < 1 || dim > maxCoords {
		return nil, fmt.Errorf("%w: dimension is %d, must be in [1, %d]", ErrInvalidConfig, dim, maxCoords)
	}
	if grade == 0 {
		grade = DefaultGrade
	}
	if grade < 0 || grade > MaxGrade {
		return nil, fmt.Errorf("%w: grade is %d, must be in [0, %d]", ErrInvalidConfig, grade, MaxGrade)
	}
	if vertices < 0 {
		return nil, fmt.Errorf("%w: vertex count is %d, must not be negative", ErrInvalidConfig, vertices)
	}
	required, ok := requiredCoords(dim, grade, vertices)
	if !ok {
		return nil, fmt.Errorf("%w: %d vertices of grade %d in %d dimensions", ErrAllocation, vertices, grade, dim)
	}

	c := &Curve{
		dim:       dim,
		grade:     grade,
		vertices:  vertices,
		buf:       make([]float64, roundChunks(required)),
		binomials: binomialRow(grade),
	}
	Logger().Debug("bezier: created curve",
		"dimension", dim,
		"grade", grade,
		"vertices", vertices,
		"capacity", len(c.buf))
	return c, nil
}

// New2 returns a two-dimensional curve. See [New].
func New2(grade, vertices int) (*Curve, error) {
	return New(2, grade, vertices)
}

// New3 returns a three-dimensional curve. See [New].
func New3(grade, vertices int) (*Curve, error) {
	return New(3, grade, vertices)
}

// NewStandard returns an empty two-dimensional curve made of cubic segments.
func NewStandard() *Curve {
	c, err := New(2, DefaultGrade, 0)
	if err != nil {
		panic("unreachable")
	}
	return c
}

// Dimension returns the number of coordinates per point.
func (c *Curve) Dimension() int { return c.dim }

// Grade returns the number of control points per segment, minus one.
func (c *Curve) Grade() int { return c.grade }

// Vertices returns the number of vertices, which is one more than the number
// of segments for non-empty curves.
func (c *Curve) Vertices() int { return c.vertices }

// Segments returns the number of segments.
func (c *Curve) Segments() int { return max(c.vertices-1, 0) }

// Len returns the number of stored control points. Valid point indices are
// in [0, Len()).
func (c *Curve) Len() int {
	n, _ := storedPoints(c.grade, c.vertices)
	return n
}

// Cap returns the number of coordinates the curve can hold before it has to
// grow.
func (c *Curve) Cap() int { return len(c.buf) }

// Binomials returns the binomial coefficients C(grade, 0) through
// C(grade, grade), the weights of the Bernstein form of a segment.
func (c *Curve) Binomials() []uint64 {
	return slices.Clone(c.binomials)
}

func (c *Curve) String() string {
	return fmt.Sprintf("Curve{dim: %d, grade: %d, vertices: %d}", c.dim, c.grade, c.vertices)
}

func (c *Curve) checkDim(got int) error {
	if got != c.dim {
		return &DimensionError{Got: got, Want: c.dim}
	}
	return nil
}

func (c *Curve) checkIndex(n int) error {
	if l := c.Len(); n < 0 || n >= l {
		return fmt.Errorf("%w: index %d, curve has %d control points", ErrIndexOutOfRange, n, l)
	}
	return nil
}

// SetPoint sets the coordinates of the control point with index n. It
// accepts exactly [Curve.Dimension] coordinates, either as separate arguments
// or as a slice:
//
//	c.SetPoint(0, 1, 2)
//	c.SetPoint(0, coords...)
//
// The curve is left unmodified if an error is returned.
func (c *Curve) SetPoint(n int, coords ...float64) error {
	if err := c.checkDim(len(coords)); err != nil {
		return err
	}
	if err := c.checkIndex(n); err != nil {
		return err
	}
	off := c.pointOffset(n)
	copy(c.buf[off:off+c.dim], coords)
	return nil
}

// SetPoint2 is like [Curve.SetPoint] for two-dimensional curves.
func (c *Curve) SetPoint2(n int, x, y float64) error {
	return c.SetPoint(n, x, y)
}

// SetPoint3 is like [Curve.SetPoint] for three-dimensional curves.
func (c *Curve) SetPoint3(n int, x, y, z float64) error {
	return c.SetPoint(n, x, y, z)
}

// AppendPoint adds a vertex to the end of the curve and returns the index of
// its control point.
//
// Appending to a non-empty curve adds a segment. The segment starts at the
// previous last anchor and ends at the new point, and its handles are spaced
// evenly on the line between the two, making the segment straight until
// the handles are moved with [Curve.SetPoint].
//
// The curve is left unmodified if an error is returned.
func (c *Curve) AppendPoint(coords ...float64) (int, error) {
	if err := c.checkDim(len(coords)); err != nil {
		return 0, err
	}
	required, ok := requiredCoords(c.dim, c.grade, c.vertices+1)
	if !ok {
		return 0, fmt.Errorf("%w: cannot append vertex %d", ErrAllocation, c.vertices+1)
	}
	c.grow(required)

	if c.vertices == 0 {
		copy(c.buf[:c.dim], coords)
		c.vertices = 1
		return 0, nil
	}

	seg := c.vertices - 1
	prev := c.pointOffset(c.Len() - 1)
	for k := 0; k <= c.grade; k++ {
		off := c.offset(seg, k, 0)
		switch k {
		case 0:
			copy(c.buf[off:off+c.dim], c.buf[prev:prev+c.dim])
		case c.grade:
			copy(c.buf[off:off+c.dim], coords)
		default:
			f := float64(k) / float64(c.grade)
			for d, v := range coords {
				c.buf[off+d] = lerp(c.buf[prev+d], v, f)
			}
		}
	}
	c.vertices++
	return c.Len() - 1, nil
}

// AppendPoint2 is like [Curve.AppendPoint] for two-dimensional curves.
func (c *Curve) AppendPoint2(x, y float64) (int, error) {
	return c.AppendPoint(x, y)
}

// AppendPoint3 is like [Curve.AppendPoint] for three-dimensional curves.
func (c *Curve) AppendPoint3(x, y, z float64) (int, error) {
	return c.AppendPoint(x, y, z)
}

// ReadPoint copies the coordinates of the control point with index n into
// dst, which must have a length of [Curve.Dimension]. This looks up a stored
// point, it doesn't evaluate the curve.
func (c *Curve) ReadPoint(n int, dst []float64) error {
	if err := c.checkDim(len(dst)); err != nil {
		return err
	}
	if err := c.checkIndex(n); err != nil {
		return err
	}
	off := c.pointOffset(n)
	copy(dst, c.buf[off:off+c.dim])
	return nil
}

// Point returns the coordinates of the control point with index n in a new
// slice. See [Curve.ReadPoint].
func (c *Curve) Point(n int) ([]float64, error) {
	if err := c.checkIndex(n); err != nil {
		return nil, err
	}
	out := make([]float64, c.dim)
	if err := c.ReadPoint(n, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Point2 is like [Curve.Point] for two-dimensional curves.
func (c *Curve) Point2(n int) (Point, error) {
	var out [2]float64
	if err := c.ReadPoint(n, out[:]); err != nil {
		return Point{}, err
	}
	return Pt(out[0], out[1]), nil
}

// Point3 is like [Curve.Point] for three-dimensional curves.
func (c *Curve) Point3(n int) (Point3, error) {
	var out [3]float64
	if err := c.ReadPoint(n, out[:]); err != nil {
		return Point3{}, err
	}
	return Pt3(out[0], out[1], out[2]), nil
}

// Anchors returns an iterator over the anchors of the curve, yielding each
// anchor's point index and coordinates. For every segment it yields the
// start anchor, followed by the end anchor of the last segment.
func (c *Curve) Anchors() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		if c.vertices == 0 {
			return
		}
		indices := make([]int, 0, c.vertices)
		for s := range c.Segments() {
			indices = append(indices, s*(c.grade+1))
		}
		indices = append(indices, c.Len()-1)
		for _, n := range indices {
			// Curves never shrink, so n stays valid even if the curve is
			// appended to during iteration.
			pt, err := c.Point(n)
			if err != nil {
				panic("unreachable")
			}
			if !yield(n, pt) {
				return
			}
		}
	}
}
