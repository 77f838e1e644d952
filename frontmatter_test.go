package linestyle

import (
	"errors"
	"testing"
)

func newFrontMatterProcessor() *Processor {
	body := &Tag{Name: "body", Tokenize: true}
	return New(nil, body, WithFrontMatter(FrontMatterRule{
		Open:      "---",
		Close:     "---",
		Separator: ':',
	}))
}

func TestFrontMatterRoundTrip(t *testing.T) {
	p := newFrontMatterProcessor()

	lines, err := p.Process("---\na: 1\nb: 2\n---\nbody")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(lines) != 1 || lines[0].Content != "body" {
		t.Fatalf("remaining lines = %+v, want single %q line", lines, "body")
	}

	attrs := p.Attributes()
	if len(attrs) != 2 || attrs["a"] != "1" || attrs["b"] != "2" {
		t.Errorf("Attributes() = %v, want map[a:1 b:2]", attrs)
	}
}

func TestFrontMatterOnlyFirstLineOpens(t *testing.T) {
	p := newFrontMatterProcessor()

	lines, err := p.Process("body\n---\na: 1\n---")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if attrs := p.Attributes(); len(attrs) != 0 {
		t.Errorf("Attributes() = %v, want empty", attrs)
	}
	if len(lines) != 4 {
		t.Errorf("Process() returned %d lines, want 4 (no block consumed)", len(lines))
	}
}

func TestFrontMatterUnterminated(t *testing.T) {
	p := newFrontMatterProcessor()

	_, err := p.Process("---\na: 1\nb: 2")
	if !errors.Is(err, ErrUnterminatedFrontMatter) {
		t.Errorf("Process() error = %v, want ErrUnterminatedFrontMatter", err)
	}
}

func TestFrontMatterUnterminatedLeavesNoPartialAttributes(t *testing.T) {
	p := newFrontMatterProcessor()

	if _, err := p.Process("---\na: 1\nb: 2"); err == nil {
		t.Fatal("Process() error = nil, want unterminated error")
	}
	if attrs := p.Attributes(); len(attrs) != 0 {
		t.Errorf("Attributes() after failed extraction = %v, want empty", attrs)
	}

	// A later well-formed document still populates the map.
	if _, err := p.Process("---\na: 1\n---\nbody"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := p.Attributes()["a"]; got != "1" {
		t.Errorf("Attributes()[a] = %q, want %q", got, "1")
	}
}

func TestFrontMatterMalformedLinesIgnored(t *testing.T) {
	p := newFrontMatterProcessor()

	_, err := p.Process("---\nno separator here\na: 1\n---\nbody")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	attrs := p.Attributes()
	if len(attrs) != 1 || attrs["a"] != "1" {
		t.Errorf("Attributes() = %v, want map[a:1]", attrs)
	}
}

func TestFrontMatterLaterKeysOverwrite(t *testing.T) {
	p := newFrontMatterProcessor()

	if _, err := p.Process("---\na: 1\na: 2\n---\nbody"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := p.Attributes()["a"]; got != "2" {
		t.Errorf("Attributes()[a] = %q, want %q", got, "2")
	}
}

func TestFrontMatterKeysNotTrimmed(t *testing.T) {
	p := newFrontMatterProcessor()

	if _, err := p.Process("---\n  a: 1\n---\nbody"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	attrs := p.Attributes()
	if _, ok := attrs["a"]; ok {
		t.Errorf("key was trimmed: %v", attrs)
	}
	if attrs["  a"] != "1" {
		t.Errorf("Attributes() = %v, want untrimmed key %q", attrs, "  a")
	}
}

func TestFrontMatterValueKeepsLaterSeparators(t *testing.T) {
	p := newFrontMatterProcessor()

	if _, err := p.Process("---\nurl: http://example.com:8080\n---\nbody"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := p.Attributes()["url"]; got != "http://example.com:8080" {
		t.Errorf("Attributes()[url] = %q, want full value after first separator", got)
	}
}

func TestFrontMatterBlankLinesAfterCloseDropped(t *testing.T) {
	p := New(nil, &Tag{Name: "body", Tokenize: true},
		WithFrontMatter(FrontMatterRule{Open: "---", Close: "---", Separator: ':'}),
		WithEmptyLineStyle(&Tag{Name: "blank"}),
	)

	lines, err := p.Process("---\na: 1\n---\n\n\nbody")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(lines) != 1 || lines[0].Content != "body" {
		t.Errorf("blank padding after close leaked: %+v", lines)
	}
}

func TestFrontMatterAccumulatesAcrossDocuments(t *testing.T) {
	p := newFrontMatterProcessor()

	if _, err := p.Process("---\na: 1\n---\nbody"); err != nil {
		t.Fatalf("first Process() error = %v", err)
	}
	if _, err := p.Process("---\nb: 2\n---\nbody"); err != nil {
		t.Fatalf("second Process() error = %v", err)
	}

	attrs := p.Attributes()
	if attrs["a"] != "1" || attrs["b"] != "2" {
		t.Errorf("Attributes() = %v, want accumulation across calls", attrs)
	}

	p.ResetAttributes()
	if len(p.Attributes()) != 0 {
		t.Errorf("Attributes() after reset = %v, want empty", p.Attributes())
	}
}

func TestAttributesReturnsCopy(t *testing.T) {
	p := newFrontMatterProcessor()

	if _, err := p.Process("---\na: 1\n---\nbody"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	attrs := p.Attributes()
	attrs["a"] = "mutated"
	if got := p.Attributes()["a"]; got != "1" {
		t.Errorf("internal map mutated through copy: %q", got)
	}
}
