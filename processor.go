package linestyle

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// crlfOrCR normalizes \r\n and \r line endings to \n before splitting.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Processor converts raw multi-line text into an ordered sequence of
// classified lines according to its rule set.
//
// A Processor is stateful: the until-close block toggle and the
// front-matter attribute map live on the instance, and attributes
// accumulate across Process calls until ResetAttributes. It is not safe
// for concurrent use; callers running multiple goroutines need their
// own instances or external locking.
type Processor struct {
	rules          []Rule
	frontMatter    []FrontMatterRule
	defaultStyle   Style
	emptyLineStyle Style

	closeToken  *string
	attributes  map[string]string
	swallowed   int
	hasListRule bool

	norm *listMarkerNormalizer
	log  zerolog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithFrontMatter configures metadata block rules checked against the
// first line of each document.
func WithFrontMatter(rules ...FrontMatterRule) Option {
	return func(p *Processor) {
		p.frontMatter = append(p.frontMatter, rules...)
	}
}

// WithEmptyLineStyle preserves blank lines in the output with the given
// style. Without it blank lines are dropped.
func WithEmptyLineStyle(s Style) Option {
	return func(p *Processor) {
		p.emptyLineStyle = s
	}
}

// WithLogger sets the logger used for normalization and block
// diagnostics. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Processor) {
		p.log = log
	}
}

// New creates a Processor with the given ordered rule set and default
// style. Rules are evaluated in the order given; the first rule whose
// token is present and whose removal changes the line wins.
// Panics if defaultStyle is nil (programmer error).
func New(rules []Rule, defaultStyle Style, opts ...Option) *Processor {
	if defaultStyle == nil {
		panic("linestyle: New requires a non-nil default style")
	}

	p := &Processor{
		rules:        rules,
		defaultStyle: defaultStyle,
		attributes:   make(map[string]string),
		log:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.norm = newListMarkerNormalizer(p.log)
	for _, r := range rules {
		if strings.Contains(r.Token, ". ") {
			p.hasListRule = true
			break
		}
	}

	return p
}

// Process splits text into lines, consumes an optional leading
// front-matter block, and classifies each remaining line in order.
// Signal lines (styles that override the previous line) are merged into
// the preceding output line instead of being emitted.
//
// The only error condition is a front-matter block that never closes.
func (p *Processor) Process(text string) ([]Line, error) {
	lines := strings.Split(crlfOrCR.ReplaceAllString(text, "\n"), "\n")

	lines, err := p.extractFrontMatter(lines)
	if err != nil {
		return nil, err
	}

	out := make([]Line, 0, len(lines))
	for _, raw := range lines {
		if raw == "" && p.emptyLineStyle == nil {
			continue
		}
		ln := p.classify(raw)
		if ln == nil {
			continue
		}
		if ln.Style != nil {
			if alt := ln.Style.OverridePrevious(); alt != nil && len(out) > 0 {
				out[len(out)-1].Style = alt
				continue
			}
		}
		out = append(out, *ln)
	}
	return out, nil
}

// Attributes returns a copy of the accumulated front-matter key/value
// map. The map grows across Process calls on the same instance.
func (p *Processor) Attributes() map[string]string {
	attrs := make(map[string]string, len(p.attributes))
	for k, v := range p.attributes {
		attrs[k] = v
	}
	return attrs
}

// ResetAttributes clears the accumulated front-matter map for reuse
// across unrelated documents.
func (p *Processor) ResetAttributes() {
	p.attributes = make(map[string]string)
}

// Swallowed reports how many lines were dropped inside until-close
// blocks, including blocks that never closed before end of input. An
// unclosed block silently drops everything after its opening delimiter;
// this counter is the caller-visible signal that it happened.
func (p *Processor) Swallowed() int {
	return p.swallowed
}
