package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	linestyle "github.com/alnah/go-linestyle"
	"github.com/alnah/go-linestyle/internal/config"
)

const sampleRuleSet = `
default: body
blankLine: blank
styles:
  - name: body
  - name: blank
    tokenize: false
  - name: h1
  - name: setext-h1
    tokenize: false
    previous: h1
  - name: quote
rules:
  - token: "# "
    scope: both
    style: h1
  - token: "> "
    style: quote
  - token: "="
    scope: entire-line
    style: setext-h1
    applies: previous
frontMatter:
  - open: "---"
    close: "---"
    separator: ":"
`

func TestParseCompilesRuleSet(t *testing.T) {
	cfg, err := config.Parse([]byte(sampleRuleSet))
	require.NoError(t, err)

	require.Len(t, cfg.Rules, 3)
	assert.Equal(t, "# ", cfg.Rules[0].Token)
	assert.Equal(t, linestyle.ScopeBoth, cfg.Rules[0].Scope)
	assert.Equal(t, linestyle.ScopeLeading, cfg.Rules[1].Scope, "scope defaults to leading")
	assert.True(t, cfg.Rules[1].Trim, "trim defaults to true")
	assert.Equal(t, linestyle.AppliesPrevious, cfg.Rules[2].AppliesTo)

	require.Len(t, cfg.FrontMatter, 1)
	assert.Equal(t, ':', int32(cfg.FrontMatter[0].Separator))

	require.NotNil(t, cfg.Default)
	require.NotNil(t, cfg.BlankLine)
	assert.False(t, cfg.BlankLine.ShouldTokenize())

	setext, ok := cfg.Style("setext-h1")
	require.True(t, ok)
	h1, _ := cfg.Style("h1")
	assert.Equal(t, h1, setext.OverridePrevious(), "previous reference resolved")
}

func TestParseCompiledRuleSetProcesses(t *testing.T) {
	cfg, err := config.Parse([]byte(sampleRuleSet))
	require.NoError(t, err)

	p := linestyle.New(cfg.Rules, cfg.Default,
		linestyle.WithFrontMatter(cfg.FrontMatter...))

	lines, err := p.Process("---\nauthor: someone\n---\nTitle\n=====\n> aside")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Title", lines[0].Content)
	h1, _ := cfg.Style("h1")
	assert.Equal(t, h1, lines[0].Style, "setext underline restyles the title")
	assert.Equal(t, "aside", lines[1].Content)
	assert.Equal(t, "someone", p.Attributes()["author"])
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "missing default",
			yaml:    "styles:\n  - name: body\n",
			wantErr: config.ErrNoDefault,
		},
		{
			name:    "unknown default style",
			yaml:    "default: ghost\nstyles:\n  - name: body\n",
			wantErr: config.ErrUnknownStyle,
		},
		{
			name:    "style without name",
			yaml:    "default: body\nstyles:\n  - name: body\n  - tokenize: false\n",
			wantErr: config.ErrNoStyleName,
		},
		{
			name:    "duplicate style",
			yaml:    "default: body\nstyles:\n  - name: body\n  - name: body\n",
			wantErr: config.ErrDuplicateStyle,
		},
		{
			name:    "rule with unknown style",
			yaml:    "default: body\nstyles:\n  - name: body\nrules:\n  - token: \"# \"\n    style: ghost\n",
			wantErr: config.ErrUnknownStyle,
		},
		{
			name:    "rule with unknown scope",
			yaml:    "default: body\nstyles:\n  - name: body\nrules:\n  - token: \"# \"\n    style: body\n    scope: sideways\n",
			wantErr: config.ErrUnknownScope,
		},
		{
			name:    "rule with unknown applies",
			yaml:    "default: body\nstyles:\n  - name: body\nrules:\n  - token: \"# \"\n    style: body\n    applies: eventually\n",
			wantErr: config.ErrUnknownApplies,
		},
		{
			name:    "multi character separator",
			yaml:    "default: body\nstyles:\n  - name: body\nfrontMatter:\n  - open: \"---\"\n    close: \"---\"\n    separator: \"::\"\n",
			wantErr: config.ErrBadSeparator,
		},
		{
			name:    "unknown previous reference",
			yaml:    "default: body\nstyles:\n  - name: body\n  - name: sig\n    previous: ghost\n",
			wantErr: config.ErrUnknownStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := config.Parse([]byte("default: body\nbogus: true\nstyles:\n  - name: body\n"))
	assert.ErrorIs(t, err, config.ErrConfigParse)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRuleSet), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Rules, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}
