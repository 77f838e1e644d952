package linestyle

// Line is one classified output unit: the line text after rule-driven
// stripping, the style of the rule that produced it, and the original
// numeric value of an ordered-list marker when one was normalized away.
type Line struct {
	Content string
	Style   Style

	// OrderedNumber holds the list item's numeric value as written in
	// the source (before marker normalization rewrote it to "1"). Nil
	// for lines that did not start with an ordered-list marker.
	OrderedNumber *int
}

// Equal reports whether two lines carry the same content and ordered
// number. Style is deliberately excluded: the processor may rewrite a
// line's style after the fact (previous-line overrides) without
// changing its identity.
func (l Line) Equal(other Line) bool {
	if l.Content != other.Content {
		return false
	}
	if (l.OrderedNumber == nil) != (other.OrderedNumber == nil) {
		return false
	}
	if l.OrderedNumber != nil && *l.OrderedNumber != *other.OrderedNumber {
		return false
	}
	return true
}
