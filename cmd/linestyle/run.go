package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	linestyle "github.com/alnah/go-linestyle"
	"github.com/alnah/go-linestyle/internal/config"
	"github.com/alnah/go-linestyle/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput     = errors.New("failed to read input")
	ErrUnknownFormat = errors.New("unknown output format")
)

// run builds a processor from the flags and processes each input in
// order, rendering results to stdout.
func run(flags *cliFlags, paths []string, stdin io.Reader, stdout io.Writer) error {
	proc, err := buildProcessor(flags)
	if err != nil {
		return err
	}

	render, err := newRenderer(flags.output, stdout)
	if err != nil {
		return err
	}

	inputs, err := readInputs(paths, stdin)
	if err != nil {
		return err
	}

	log := logging.Component("linestyle")
	for _, in := range inputs {
		lines, err := proc.Process(in.text)
		if err != nil {
			return fmt.Errorf("processing %s: %w", in.name, err)
		}
		if n := proc.Swallowed(); n > 0 {
			log.Debug().Str("input", in.name).Int("swallowed", n).
				Msg("lines dropped inside unclosed blocks")
		}
		if err := render(lines, proc.Attributes()); err != nil {
			return err
		}
	}
	return nil
}

// buildProcessor assembles a Processor from a rule-set file or the
// built-in Markdown preset.
func buildProcessor(flags *cliFlags) (*linestyle.Processor, error) {
	opts := []linestyle.Option{
		linestyle.WithLogger(logging.Component("processor")),
	}

	if flags.common.rules == "" {
		if flags.output.keepBlank {
			opts = append(opts, linestyle.WithEmptyLineStyle(linestyle.MarkdownBlank))
		}
		opts = append(opts, linestyle.WithFrontMatter(linestyle.MarkdownFrontMatter()...))
		return linestyle.New(linestyle.MarkdownRules(), linestyle.MarkdownBody, opts...), nil
	}

	cfg, err := config.Load(flags.common.rules)
	if err != nil {
		return nil, err
	}
	opts = append(opts, linestyle.WithFrontMatter(cfg.FrontMatter...))
	blank := cfg.BlankLine
	if blank == nil && flags.output.keepBlank {
		blank = cfg.Default
	}
	if blank != nil {
		opts = append(opts, linestyle.WithEmptyLineStyle(blank))
	}
	return linestyle.New(cfg.Rules, cfg.Default, opts...), nil
}

// namedInput pairs input text with a display name for error messages.
type namedInput struct {
	name string
	text string
}

// readInputs loads each path, or stdin when none are given.
func readInputs(paths []string, stdin io.Reader) ([]namedInput, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return []namedInput{{name: "stdin", text: string(data)}}, nil
	}

	inputs := make([]namedInput, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
		}
		inputs = append(inputs, namedInput{name: path, text: string(data)})
	}
	return inputs, nil
}
