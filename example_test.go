package linestyle_test

import (
	"fmt"
	"log"

	linestyle "github.com/alnah/go-linestyle"
)

func ExampleProcessor_Process() {
	p := linestyle.New(linestyle.MarkdownRules(), linestyle.MarkdownBody,
		linestyle.WithFrontMatter(linestyle.MarkdownFrontMatter()...),
	)

	lines, err := p.Process("---\ntitle: Demo\n---\n# Hello\n\nSome *body* text\n")
	if err != nil {
		log.Fatal(err)
	}

	for _, ln := range lines {
		fmt.Printf("%v: %s\n", ln.Style, ln.Content)
	}
	fmt.Println("title =", p.Attributes()["title"])
	// Output:
	// h1: Hello
	// body: Some *body* text
	// title = Demo
}

func ExampleProcessor_Process_customRules() {
	note := &linestyle.Tag{Name: "note", Tokenize: true}
	body := &linestyle.Tag{Name: "body", Tokenize: true}

	p := linestyle.New([]linestyle.Rule{
		{Token: "NOTE: ", Scope: linestyle.ScopeLeading, Style: note, Trim: true},
	}, body)

	lines, err := p.Process("NOTE: remember this\nordinary line")
	if err != nil {
		log.Fatal(err)
	}
	for _, ln := range lines {
		fmt.Printf("%v: %s\n", ln.Style, ln.Content)
	}
	// Output:
	// note: remember this
	// body: ordinary line
}
