package linestyle

import (
	"regexp"

	"github.com/rs/zerolog"
)

// markerRewrite pairs an ordered-list marker pattern with its canonical
// replacement. The patterns cover a plain marker plus the common
// indentation variants; each preserves its indentation and rewrites the
// digit run to the literal "1".
type markerRewrite struct {
	pattern     string
	replacement string
}

// Fixed rewrite order. Later patterns see the already-rewritten text, so
// a line may legitimately be rewritten more than once; the result is
// stable (rewriting normalized text again is a no-op).
var markerRewrites = []markerRewrite{
	{`^([0-9]+)\. `, "1. "},
	{`^(   )([0-9]+)\. `, "${1}1. "},
	{`^(      )([0-9]+)\. `, "${1}1. "},
	{`^(\t)([0-9]+)\. `, "${1}1. "},
	{`^(\t\t)([0-9]+)\. `, "${1}1. "},
}

// listMarkerNormalizer rewrites leading ordered-list markers to the
// canonical "1. " so token rules match uniformly regardless of the
// item's actual number.
type listMarkerNormalizer struct {
	rewrites []*regexp.Regexp
	repls    []string
}

// newListMarkerNormalizer compiles the fixed rewrite patterns. A pattern
// that fails to compile is logged and skipped rather than surfaced to
// the caller; the corresponding rewrite simply never applies.
func newListMarkerNormalizer(log zerolog.Logger) *listMarkerNormalizer {
	n := &listMarkerNormalizer{}
	for _, r := range markerRewrites {
		re, err := regexp.Compile(r.pattern)
		if err != nil {
			log.Warn().Err(err).Str("pattern", r.pattern).Msg("skipping list marker rewrite")
			continue
		}
		n.rewrites = append(n.rewrites, re)
		n.repls = append(n.repls, r.replacement)
	}
	return n
}

// normalize applies each rewrite in order to line and returns the
// result. Non-matching lines pass through unchanged.
func (n *listMarkerNormalizer) normalize(line string) string {
	for i, re := range n.rewrites {
		line = re.ReplaceAllString(line, n.repls[i])
	}
	return line
}
