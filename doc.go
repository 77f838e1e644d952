// Package linestyle classifies the lines of a text document against a
// configurable, ordered set of token-matching rules.
//
// # Quick Start
//
// Create a processor with a rule set and a default style, then process
// raw text:
//
//	p := linestyle.New(linestyle.MarkdownRules(), linestyle.MarkdownBody,
//	    linestyle.WithFrontMatter(linestyle.MarkdownFrontMatter()...),
//	)
//	lines, err := p.Process(text)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ln := range lines {
//	    fmt.Printf("%v: %s\n", ln.Style, ln.Content)
//	}
//
// Each output line carries its content (with rule tokens stripped), the
// style of the rule that matched, and, for ordered-list items, the
// item's original number before marker normalization.
//
// # Processing Pipeline
//
// Process runs these stages per document:
//
//  1. Line splitting (\r\n, \r, and \n all treated as line breaks)
//  2. Front-matter extraction into the processor's attribute map
//  3. Ordered-list marker normalization ("7. x" becomes "1. x")
//  4. Per-line rule matching, in configured rule order
//  5. Previous-line overrides (setext-style signal lines restyle the
//     preceding output line instead of being emitted)
//
// # Rules
//
// A Rule names a token, where to remove it from the line (Scope), the
// style to assign, and which line it affects. AppliesUntilClose rules
// delimit blocks: lines between two occurrences of the token are
// swallowed. AppliesPrevious rules match lines made up entirely of the
// token's characters and restyle the previous output line.
//
// Rule order is precedence: the first rule whose token is present and
// whose removal actually changes the line wins.
//
// # Front Matter
//
// With WithFrontMatter configured, a document whose first line equals a
// rule's open tag has its leading block consumed into a key/value map,
// readable via Attributes. The map accumulates across Process calls on
// the same instance; use ResetAttributes between unrelated documents.
//
// # Concurrency
//
// A Processor is not safe for concurrent use: the block toggle and the
// attribute map are unsynchronized instance state. Use one instance per
// goroutine or add external locking.
package linestyle
