package linestyle

// Style identifies the classification assigned to a line.
//
// Styles form a closed set per configuration: every rule carries one, and
// the processor assigns the default style to lines no rule matches. The
// two capabilities let downstream consumers decide whether to run inline
// tokenization on the line, and let the processor detect signal lines
// that restyle the previous output line (setext-style underlines).
type Style interface {
	// ShouldTokenize reports whether inline markup tokenization applies
	// to lines carrying this style. Raw blocks (code) return false.
	ShouldTokenize() bool

	// OverridePrevious returns the style that should replace the
	// previous output line's style when a line classifies as this
	// style, or nil if this style has no such effect.
	OverridePrevious() Style
}

// Tag is a basic named Style for callers that do not need their own
// style type. A Tag with a non-nil Previous acts as a signal style: the
// processor restyles the preceding output line with Previous instead of
// emitting the signal line itself.
type Tag struct {
	Name     string
	Tokenize bool
	Previous Style // non-nil = this tag restyles the previous line
}

// ShouldTokenize reports whether inline tokenization applies.
func (t *Tag) ShouldTokenize() bool { return t.Tokenize }

// OverridePrevious returns the replacement style for the previous line,
// or nil.
func (t *Tag) OverridePrevious() Style { return t.Previous }

// String returns the tag name.
func (t *Tag) String() string { return t.Name }
