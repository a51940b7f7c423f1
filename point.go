package bezier

import "fmt"

// Point is a point in two dimensions, as used by the accessors of
// two-dimensional curves.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: lerp(pt.X, o.X, t),
		Y: lerp(pt.Y, o.Y, t),
	}
}

// Point3 is a point in three dimensions, as used by the accessors of
// three-dimensional curves.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return Point3{
		X: lerp(pt.X, o.X, t),
		Y: lerp(pt.Y, o.Y, t),
		Z: lerp(pt.Z, o.Z, t),
	}
}
