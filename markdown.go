package linestyle

// MarkdownStyle is the built-in style set for line-oriented Markdown
// classification. It covers ATX and setext headings, blockquotes,
// lists, and fenced code blocks; inline markup is left to consumers.
type MarkdownStyle int

// Markdown line styles.
const (
	MarkdownBody MarkdownStyle = iota
	MarkdownH1
	MarkdownH2
	MarkdownH3
	MarkdownH4
	MarkdownH5
	MarkdownH6
	MarkdownSetextH1
	MarkdownSetextH2
	MarkdownBlockquote
	MarkdownUnorderedList
	MarkdownOrderedList
	MarkdownCodeBlock
	MarkdownBlank
)

var markdownStyleNames = map[MarkdownStyle]string{
	MarkdownBody:          "body",
	MarkdownH1:            "h1",
	MarkdownH2:            "h2",
	MarkdownH3:            "h3",
	MarkdownH4:            "h4",
	MarkdownH5:            "h5",
	MarkdownH6:            "h6",
	MarkdownSetextH1:      "setext-h1",
	MarkdownSetextH2:      "setext-h2",
	MarkdownBlockquote:    "blockquote",
	MarkdownUnorderedList: "unordered-list",
	MarkdownOrderedList:   "ordered-list",
	MarkdownCodeBlock:     "code-block",
	MarkdownBlank:         "blank",
}

// ShouldTokenize reports whether inline tokenization applies: raw
// blocks and blank lines are excluded.
func (s MarkdownStyle) ShouldTokenize() bool {
	switch s {
	case MarkdownCodeBlock, MarkdownBlank:
		return false
	}
	return true
}

// OverridePrevious maps setext underline signals to the heading style
// they apply to the previous line.
func (s MarkdownStyle) OverridePrevious() Style {
	switch s {
	case MarkdownSetextH1:
		return MarkdownH1
	case MarkdownSetextH2:
		return MarkdownH2
	}
	return nil
}

// String returns the style's name.
func (s MarkdownStyle) String() string {
	if name, ok := markdownStyleNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarkdownRules returns the canonical ordered rule set for Markdown
// line classification. List rules rely on marker normalization: any
// "<digits>. " marker is rewritten to "1. " before matching, so a
// single ordered-list token covers every item number.
func MarkdownRules() []Rule {
	return []Rule{
		{Token: "- ", Scope: ScopeLeading, Style: MarkdownUnorderedList, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "* ", Scope: ScopeLeading, Style: MarkdownUnorderedList, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "1. ", Scope: ScopeLeading, Style: MarkdownOrderedList, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "```", Scope: ScopeEntireLine, Style: MarkdownCodeBlock, Trim: true, AppliesTo: AppliesUntilClose},
		{Token: "> ", Scope: ScopeLeading, Style: MarkdownBlockquote, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "###### ", Scope: ScopeBoth, Style: MarkdownH6, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "##### ", Scope: ScopeBoth, Style: MarkdownH5, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "#### ", Scope: ScopeBoth, Style: MarkdownH4, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "### ", Scope: ScopeBoth, Style: MarkdownH3, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "## ", Scope: ScopeBoth, Style: MarkdownH2, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "# ", Scope: ScopeBoth, Style: MarkdownH1, Trim: true, AppliesTo: AppliesCurrent},
		{Token: "=", Scope: ScopeEntireLine, Style: MarkdownSetextH1, Trim: true, AppliesTo: AppliesPrevious},
		{Token: "-", Scope: ScopeEntireLine, Style: MarkdownSetextH2, Trim: true, AppliesTo: AppliesPrevious},
	}
}

// MarkdownFrontMatter returns the conventional YAML-style front-matter
// rule: a block delimited by "---" lines with ":"-separated pairs.
func MarkdownFrontMatter() []FrontMatterRule {
	return []FrontMatterRule{
		{Open: "---", Close: "---", Separator: ':'},
	}
}
