package ordering

// Ordering places an opaque value type on a discrete integer axis. It is
// the only capability a range needs from its element type: a total order,
// a projection of a value onto an integer coordinate, and stepping a value
// up or down the axis by a number of minimum increments.
//
// Implementations must be stateless and side-effect free. Int64Value must
// be monotonic and consistent with Compare, and Add(Subtract(v, n), n)
// must return v whenever the result stays representable in E.
type Ordering[E any] interface {
	// Compare returns -1 if a sorts before b, +1 if a sorts after b and
	// 0 when they are equal.
	Compare(a, b E) int
	// IntValue returns the int coordinate of val.
	IntValue(val E) int
	// Int64Value returns the int64 coordinate of val.
	Int64Value(val E) int64
	// Add returns val shifted up by the given number of steps.
	Add(val E, steps int64) E
	// Subtract returns val shifted down by the given number of steps.
	Subtract(val E, steps int64) E
}
