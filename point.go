package vqonsole

// Point is the canonical two-dimensional coordinate used by selection
// and history addressing: a single `{Y, X}` pair compared
// lexicographically, with arithmetic that carries column overflow and
// underflow into the row.
type Point struct {
	Y, X int
}

// Less reports whether p sorts strictly before o in (Y, X) lexicographic order.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// LessEqual reports p <= o lexicographically.
func (p Point) LessEqual(o Point) bool {
	return p == o || p.Less(o)
}

// addPoints adds a column delta to p, carrying into Y when X over/underflows
// the [0, columns) range. columns must be > 0.
func addPoints(p Point, dx, columns int) Point {
	total := p.Y*columns + p.X + dx
	y := total / columns
	x := total % columns
	if x < 0 {
		x += columns
		y--
	}
	return Point{Y: y, X: x}
}

// subPoints returns the column distance from b to a (i.e. a - b) in a
// flattened `columns`-wide coordinate space: positive when a is after
// b, negative when before. Working in the flattened space throughout
// keeps underflow and overflow distinct, so the sign is always
// meaningful.
func subPoints(a, b Point, columns int) int {
	return (a.Y*columns + a.X) - (b.Y*columns + b.X)
}
