package primitive

// Ordering is the result of a partial comparison.
type Ordering int8

const (
	// Incomparable means neither value dominates the other on both axes.
	Incomparable Ordering = iota
	Less
	Equal
	Greater
)

// String returns the ordering name.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Incomparable"
	}
}

// compare2 orders (ax, ay) against (bx, by) componentwise.
func compare2[T int | float64](ax, ay, bx, by T) Ordering {
	switch {
	case ax == bx && ay == by:
		return Equal
	case ax <= bx && ay <= by:
		return Less
	case ax >= bx && ay >= by:
		return Greater
	default:
		return Incomparable
	}
}
