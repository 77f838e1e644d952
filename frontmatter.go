package linestyle

import (
	"fmt"
	"strings"
)

// extractFrontMatter consumes a leading metadata block when the first
// line matches a configured open tag, storing key/value pairs into the
// processor's attribute map. It returns the lines remaining after the
// block (and any blank lines immediately following it). Keys are stored
// exactly as written; values are whitespace-trimmed. A block that never
// closes is an error.
func (p *Processor) extractFrontMatter(lines []string) ([]string, error) {
	if len(lines) == 0 || len(p.frontMatter) == 0 {
		return lines, nil
	}

	first := strings.TrimSpace(lines[0])
	var rule *FrontMatterRule
	for i := range p.frontMatter {
		if first == p.frontMatter[i].Open {
			rule = &p.frontMatter[i]
			break
		}
	}
	if rule == nil {
		return lines, nil
	}

	// Pairs are committed only once the close tag is seen, so an
	// unterminated block leaves the attribute map untouched.
	rest := lines[1:]
	pending := make(map[string]string)
	for {
		if len(rest) == 0 {
			return nil, fmt.Errorf("%w: missing closing %q", ErrUnterminatedFrontMatter, rule.Close)
		}
		line := rest[0]
		rest = rest[1:]
		if line == rule.Close {
			break
		}
		key, value, found := strings.Cut(line, string(rule.Separator))
		if !found {
			continue
		}
		pending[key] = strings.TrimSpace(value)
	}
	for k, v := range pending {
		p.attributes[k] = v
	}

	// Blank padding after the block is not content.
	for len(rest) > 0 && rest[0] == "" {
		rest = rest[1:]
	}
	return rest, nil
}
