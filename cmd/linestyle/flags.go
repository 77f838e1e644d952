package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across output modes.
type commonFlags struct {
	rules   string
	quiet   bool
	verbose bool
}

// outputFlags holds output mode flags.
type outputFlags struct {
	format    string // "text" or "json"
	meta      bool   // print front-matter attributes after the lines
	keepBlank bool   // keep blank lines in the output
	noColor   bool   // disable terminal styling
}

// cliFlags holds all CLI flags.
type cliFlags struct {
	common commonFlags
	output outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.rules, "rules", "r", "", "rule-set YAML file (default: built-in Markdown rules)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show processing diagnostics")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, json")
	fs.BoolVarP(&f.meta, "meta", "m", false, "print front-matter attributes")
	fs.BoolVar(&f.keepBlank, "keep-blank", false, "keep blank lines in the output")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// parseFlags parses CLI flags and returns positional args (input files;
// none means stdin).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("linestyle", flag.ContinueOnError)
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the usage message.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: linestyle [flags] [file ...]\n\n")
	fmt.Fprintf(w, "Classify the lines of a text document against a token rule set.\n")
	fmt.Fprintf(w, "Reads from stdin when no files are given.\n\nFlags:\n")
	fmt.Fprint(w, fs.FlagUsages())
}
