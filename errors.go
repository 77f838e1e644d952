package linestyle

import "errors"

// Sentinel errors for library operations.
var (
	// ErrUnterminatedFrontMatter is returned when a front-matter open
	// tag is found but the input ends before the matching close tag.
	ErrUnterminatedFrontMatter = errors.New("unterminated front matter block")
)
