// Package bezier implements piecewise Bézier curves in spaces of arbitrary,
// fixed dimension.
//
// A [Curve] is a chain of segments, each of which is a Bézier curve with
// grade+1 control points. The grade and the dimension are chosen when the
// curve is created and never change. Grade 1 makes every segment a line,
// grade 2 a quadratic and grade 3, the default, a cubic Bézier.
//
// # Building curves
//
// Curves are populated by setting control points by index ([Curve.SetPoint])
// or by appending anchors ([Curve.AppendPoint]). Appending places the handles
// of the new segment on the line between its anchors, so that callers only
// need to move the handles they care about.
//
// Every accessor comes in three forms: one accepting any number of
// coordinates, which also accepts slices, and two with fixed arity for two-
// and three-dimensional curves, using [Point] and [Point3]. All forms read
// and write the same storage.
//
// # Evaluation
//
// [Curve.Eval] and its variants evaluate the curve at a parameter t ∈ [0, 1]
// using de Casteljau's algorithm, and [Curve.Samples] evaluates the curve at
// evenly spaced parameters for drawing it as a polyline. The curve starts at
// its first control point at t = 0 and ends at its last control point at
// t = 1.
//
// # Storage
//
// Control points are stored in a single buffer of float64 values that grows
// in chunks of 4 KiB, so that the buffer is reallocated at most once per
// chunk of appended coordinates. See [Curve] for how control points are
// indexed.
//
// # Errors and logging
//
// Invalid arguments are reported with errors that match the sentinel errors
// of this package under [errors.Is], such as [ErrIndexOutOfRange]. A method
// that returns an error leaves the curve unmodified.
//
// The package logs buffer allocations at debug level to the logger set with
// [SetLogger]. Nothing is logged by default.
package bezier
