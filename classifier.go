package linestyle

import (
	"regexp"
	"strconv"
	"strings"
)

// orderedMarker extracts the numeric value of a leading ordered-list
// marker from an unnormalized line, tolerating leading indentation.
var orderedMarker = regexp.MustCompile(`^[ \t]*([0-9]+)\. `)

// classify applies the configured rules to one raw line. It returns nil
// when the line produces no output: delimiter lines of an until-close
// block, and lines swallowed inside an open block.
func (p *Processor) classify(raw string) *Line {
	if raw == "" && p.emptyLineStyle != nil {
		return &Line{Content: "", Style: p.emptyLineStyle}
	}

	text := p.norm.normalize(raw)
	number := p.orderedNumber(raw)

	for _, r := range p.rules {
		if r.Token == "" || r.AppliesTo == AppliesPrevious {
			continue
		}

		candidate := text
		if r.Trim {
			candidate = strings.TrimSpace(candidate)
		}

		// Inside an open block every line is swallowed until the close
		// token shows up on its own.
		if p.closeToken != nil && candidate != *p.closeToken {
			p.swallowed++
			p.log.Debug().Str("line", raw).Msg("line swallowed inside unclosed block")
			return nil
		}

		if !strings.Contains(candidate, r.Token) {
			continue
		}

		stripped := stripToken(candidate, r)
		if stripped == candidate {
			// Token present but not positioned per the rule's scope.
			continue
		}

		if r.AppliesTo == AppliesUntilClose {
			p.toggleBlock(r.Token)
			return nil
		}

		if r.Trim {
			stripped = strings.TrimSpace(stripped)
		}
		return &Line{Content: stripped, Style: r.Style, OrderedNumber: number}
	}

	// Signal lines: entirely composed of a previous-rule token's
	// characters (character set, not literal match).
	trimmed := strings.TrimSpace(text)
	for _, r := range p.rules {
		if r.Token == "" || r.AppliesTo != AppliesPrevious {
			continue
		}
		if strings.Trim(trimmed, r.Token) == "" {
			return &Line{Content: "", Style: r.Style, OrderedNumber: number}
		}
	}

	// Normalization only drives rule matching; a line no rule claimed
	// keeps its original text.
	return &Line{Content: strings.TrimSpace(raw), Style: p.defaultStyle, OrderedNumber: number}
}

// toggleBlock opens an until-close block with token, or closes the
// currently open one. The toggle is global to the processor, so nested
// blocks are unsupported.
func (p *Processor) toggleBlock(token string) {
	if p.closeToken == nil {
		p.closeToken = &token
		return
	}
	p.closeToken = nil
}

// orderedNumber re-scans the unnormalized raw line for an ordered-list
// marker and parses its numeric value. Only attempted when some active
// rule token looks like a list marker; a failed parse leaves the number
// unset.
func (p *Processor) orderedNumber(raw string) *int {
	if !p.hasListRule {
		return nil
	}
	m := orderedMarker.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// stripToken removes r.Token from line according to r.Scope. Callers
// compare the result against the input: an unchanged line means the
// rule did not actually match the line's structure.
func stripToken(line string, r Rule) string {
	switch r.Scope {
	case ScopeLeading:
		return stripLeading(line, r.Token)
	case ScopeTrailing:
		return stripTrailing(line, r.Token)
	case ScopeBoth:
		return stripTrailing(stripLeading(line, r.Token), r.Token)
	case ScopeEntireLine:
		if strings.ReplaceAll(line, r.Token, "") == "" {
			return ""
		}
		return line
	default:
		return line
	}
}

// stripLeading removes token when it is an exact prefix of line.
func stripLeading(line, token string) string {
	if strings.HasPrefix(line, token) {
		return line[len(token):]
	}
	return line
}

// stripTrailing removes the whitespace-trimmed token when it is an
// exact suffix of line.
func stripTrailing(line, token string) string {
	token = strings.TrimSpace(token)
	if token != "" && strings.HasSuffix(line, token) {
		return line[:len(line)-len(token)]
	}
	return line
}
