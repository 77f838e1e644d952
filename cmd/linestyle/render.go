package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	linestyle "github.com/alnah/go-linestyle"
)

// renderFunc writes one processed document.
type renderFunc func(lines []linestyle.Line, attrs map[string]string) error

// newRenderer returns the renderer for the configured output format.
func newRenderer(f outputFlags, w io.Writer) (renderFunc, error) {
	switch f.format {
	case "text":
		return textRenderer(w, f), nil
	case "json":
		return jsonRenderer(w, f), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be text or json)", ErrUnknownFormat, f.format)
	}
}

// Terminal styles per Markdown style name. Unknown names fall back to
// the default style.
var (
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(16)
	contentStyle = lipgloss.NewStyle()

	styledContent = map[string]lipgloss.Style{
		"h1":             lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		"h2":             lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		"h3":             lipgloss.NewStyle().Bold(true),
		"h4":             lipgloss.NewStyle().Bold(true),
		"h5":             lipgloss.NewStyle().Bold(true),
		"h6":             lipgloss.NewStyle().Bold(true),
		"blockquote":     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		"code-block":     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"unordered-list": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"ordered-list":   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
)

// styleName renders a Style as text, preferring fmt.Stringer.
func styleName(s linestyle.Style) string {
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", s)
}

func textRenderer(w io.Writer, f outputFlags) renderFunc {
	return func(lines []linestyle.Line, attrs map[string]string) error {
		for _, ln := range lines {
			name := styleName(ln.Style)
			content := ln.Content
			if ln.OrderedNumber != nil {
				content = fmt.Sprintf("%d. %s", *ln.OrderedNumber, content)
			}
			if !f.noColor {
				if cs, ok := styledContent[name]; ok {
					content = cs.Render(content)
				} else {
					content = contentStyle.Render(content)
				}
				name = labelStyle.Render(name)
			}
			if _, err := fmt.Fprintf(w, "%s %s\n", name, content); err != nil {
				return err
			}
		}
		if f.meta && len(attrs) > 0 {
			keys := make([]string, 0, len(attrs))
			for k := range attrs {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			if _, err := fmt.Fprintln(w, "---"); err != nil {
				return err
			}
			for _, k := range keys {
				if _, err := fmt.Fprintf(w, "%s = %s\n", k, attrs[k]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// jsonLine is the JSON shape of one classified line.
type jsonLine struct {
	Style   string `json:"style"`
	Content string `json:"content"`
	Number  *int   `json:"number,omitempty"`
}

// jsonDocument is the JSON shape of one processed document.
type jsonDocument struct {
	Lines      []jsonLine        `json:"lines"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func jsonRenderer(w io.Writer, f outputFlags) renderFunc {
	return func(lines []linestyle.Line, attrs map[string]string) error {
		doc := jsonDocument{Lines: make([]jsonLine, 0, len(lines))}
		for _, ln := range lines {
			doc.Lines = append(doc.Lines, jsonLine{
				Style:   styleName(ln.Style),
				Content: ln.Content,
				Number:  ln.OrderedNumber,
			})
		}
		if f.meta {
			doc.Attributes = attrs
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
}
