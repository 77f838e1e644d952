package linestyle

// Scope selects which part of a line a rule's token is removed from.
type Scope int

// Removal scopes.
const (
	// ScopeNone leaves the line untouched; the rule still assigns its
	// style when the token is present.
	ScopeNone Scope = iota
	// ScopeLeading removes the token when it is an exact prefix.
	ScopeLeading
	// ScopeTrailing removes the whitespace-trimmed token when it is an
	// exact suffix.
	ScopeTrailing
	// ScopeBoth applies leading then trailing removal.
	ScopeBoth
	// ScopeEntireLine removes every occurrence of the token, but only
	// if doing so leaves the line completely empty; otherwise the line
	// is left untouched and the rule does not match.
	ScopeEntireLine
)

// Applies selects which line a rule's style affects.
type Applies int

// Rule targets.
const (
	// AppliesCurrent styles the line the token was found on.
	AppliesCurrent Applies = iota
	// AppliesPrevious marks a signal line: a line consisting entirely
	// of characters from the token restyles the previous output line.
	AppliesPrevious
	// AppliesUntilClose makes the token a block delimiter: the first
	// match opens a block whose lines are swallowed until a line
	// matching the same token closes it. Delimiter lines are never
	// emitted. At most one block may be open at a time.
	AppliesUntilClose
)

// Rule describes one token-matching line rule. Rules are evaluated in
// caller-supplied order; the first rule whose token is present in the
// line and whose removal actually changes the line wins. A Rule with an
// empty Token is inactive.
type Rule struct {
	Token     string
	Scope     Scope
	Style     Style
	Trim      bool
	AppliesTo Applies
}

// FrontMatterRule describes a metadata block at the start of a
// document: an opening tag on the first line, key/value lines split on
// Separator, and a closing tag line.
type FrontMatterRule struct {
	Open      string
	Close     string
	Separator rune
}
