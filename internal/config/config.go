// Package config loads rule-set definitions for the linestyle CLI from
// YAML files and compiles them into linestyle rules.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	linestyle "github.com/alnah/go-linestyle"
	"github.com/alnah/go-linestyle/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrNoDefault      = errors.New("config must name a default style")
	ErrNoStyleName    = errors.New("style entry missing name")
	ErrDuplicateStyle = errors.New("duplicate style name")
	ErrUnknownStyle   = errors.New("unknown style name")
	ErrUnknownScope   = errors.New("unknown removal scope")
	ErrUnknownApplies = errors.New("unknown applies value")
	ErrBadSeparator   = errors.New("separator must be a single character")
)

// RuleSet is the YAML schema for a rule-set file.
type RuleSet struct {
	Default     string           `yaml:"default"`
	BlankLine   string           `yaml:"blankLine"`
	Styles      []StyleDef       `yaml:"styles"`
	Rules       []RuleDef        `yaml:"rules"`
	FrontMatter []FrontMatterDef `yaml:"frontMatter"`
}

// StyleDef declares a named style. Tokenize defaults to true. A
// non-empty Previous makes the style a signal: lines carrying it
// restyle the previous output line with the named style.
type StyleDef struct {
	Name     string `yaml:"name"`
	Tokenize *bool  `yaml:"tokenize"`
	Previous string `yaml:"previous"`
}

// RuleDef declares one line rule. Scope is one of none, leading,
// trailing, both, entire-line (default leading). Applies is one of
// current, previous, until-close (default current). Trim defaults to
// true.
type RuleDef struct {
	Token   string `yaml:"token"`
	Scope   string `yaml:"scope"`
	Style   string `yaml:"style"`
	Trim    *bool  `yaml:"trim"`
	Applies string `yaml:"applies"`
}

// FrontMatterDef declares a front-matter block rule.
type FrontMatterDef struct {
	Open      string `yaml:"open"`
	Close     string `yaml:"close"`
	Separator string `yaml:"separator"`
}

// Compiled is a rule set resolved into linestyle values.
type Compiled struct {
	Rules       []linestyle.Rule
	FrontMatter []linestyle.FrontMatterRule
	Default     linestyle.Style
	BlankLine   linestyle.Style // nil when the config names none

	styles map[string]*linestyle.Tag
}

// Style looks up a compiled style by name.
func (c *Compiled) Style(name string) (linestyle.Style, bool) {
	s, ok := c.styles[name]
	if !ok {
		return nil, false
	}
	return s, true
}

// Load reads and compiles a rule-set file.
func Load(path string) (*Compiled, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles a rule-set document.
func Parse(data []byte) (*Compiled, error) {
	var rs RuleSet
	if err := yamlutil.UnmarshalStrict(data, &rs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return rs.Compile()
}

// Compile resolves the rule set into linestyle values, validating style
// references, scopes, and separators.
func (rs *RuleSet) Compile() (*Compiled, error) {
	if rs.Default == "" {
		return nil, ErrNoDefault
	}

	styles, err := compileStyles(rs.Styles)
	if err != nil {
		return nil, err
	}

	c := &Compiled{styles: styles}

	var ok bool
	if c.Default, ok = styles[rs.Default]; !ok {
		return nil, fmt.Errorf("%w: default %q", ErrUnknownStyle, rs.Default)
	}
	if rs.BlankLine != "" {
		if c.BlankLine, ok = styles[rs.BlankLine]; !ok {
			return nil, fmt.Errorf("%w: blankLine %q", ErrUnknownStyle, rs.BlankLine)
		}
	}

	for i, rd := range rs.Rules {
		rule, err := rd.compile(styles)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		c.Rules = append(c.Rules, rule)
	}

	for i, fm := range rs.FrontMatter {
		sep, n := utf8.DecodeRuneInString(fm.Separator)
		if sep == utf8.RuneError || n != len(fm.Separator) {
			return nil, fmt.Errorf("frontMatter %d: %w: %q", i, ErrBadSeparator, fm.Separator)
		}
		c.FrontMatter = append(c.FrontMatter, linestyle.FrontMatterRule{
			Open:      fm.Open,
			Close:     fm.Close,
			Separator: sep,
		})
	}

	return c, nil
}

// compileStyles builds the named style table. Two passes: Previous
// references may point at styles declared later in the file.
func compileStyles(defs []StyleDef) (map[string]*linestyle.Tag, error) {
	styles := make(map[string]*linestyle.Tag, len(defs))
	for _, d := range defs {
		if d.Name == "" {
			return nil, ErrNoStyleName
		}
		if _, exists := styles[d.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStyle, d.Name)
		}
		tokenize := true
		if d.Tokenize != nil {
			tokenize = *d.Tokenize
		}
		styles[d.Name] = &linestyle.Tag{Name: d.Name, Tokenize: tokenize}
	}
	for _, d := range defs {
		if d.Previous == "" {
			continue
		}
		prev, ok := styles[d.Previous]
		if !ok {
			return nil, fmt.Errorf("%w: previous %q of style %q", ErrUnknownStyle, d.Previous, d.Name)
		}
		styles[d.Name].Previous = prev
	}
	return styles, nil
}

func (rd RuleDef) compile(styles map[string]*linestyle.Tag) (linestyle.Rule, error) {
	style, ok := styles[rd.Style]
	if !ok {
		return linestyle.Rule{}, fmt.Errorf("%w: %q", ErrUnknownStyle, rd.Style)
	}

	scope := linestyle.ScopeLeading
	switch rd.Scope {
	case "", "leading":
	case "none":
		scope = linestyle.ScopeNone
	case "trailing":
		scope = linestyle.ScopeTrailing
	case "both":
		scope = linestyle.ScopeBoth
	case "entire-line":
		scope = linestyle.ScopeEntireLine
	default:
		return linestyle.Rule{}, fmt.Errorf("%w: %q", ErrUnknownScope, rd.Scope)
	}

	applies := linestyle.AppliesCurrent
	switch rd.Applies {
	case "", "current":
	case "previous":
		applies = linestyle.AppliesPrevious
	case "until-close":
		applies = linestyle.AppliesUntilClose
	default:
		return linestyle.Rule{}, fmt.Errorf("%w: %q", ErrUnknownApplies, rd.Applies)
	}

	trim := true
	if rd.Trim != nil {
		trim = *rd.Trim
	}

	return linestyle.Rule{
		Token:     rd.Token,
		Scope:     scope,
		Style:     style,
		Trim:      trim,
		AppliesTo: applies,
	}, nil
}
