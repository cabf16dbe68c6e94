package types

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenKinds(t *testing.T) {
	kinds := TokenKinds()
	require.Len(t, kinds, 28)
	require.Equal(t, StringLiteral, kinds[0])
	require.Equal(t, Eof, kinds[len(kinds)-1])

	for _, k := range kinds {
		require.True(t, k.Valid(), "kind %s", k)
	}

	require.False(t, TokenKind("JsxText").Valid())
	require.False(t, TokenKind("").Valid())

	// Mutating the returned slice does not affect the known set.
	kinds[0] = "Bogus"
	require.Equal(t, StringLiteral, TokenKinds()[0])
}

func TestValidateTokens(t *testing.T) {
	require.NoError(t, ValidateTokens(nil))
	require.NoError(t, ValidateTokens([]Token{
		{Kind: Identifier, Text: "x"},
		Synthetic(Newline, "\n"),
	}))

	err := ValidateTokens([]Token{
		{Kind: Identifier, Text: "x"},
		{Kind: "Keyword", Text: "let"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "token 1")
	require.Contains(t, err.Error(), `"Keyword"`)
}

func TestSource(t *testing.T) {
	tokens := []Token{
		{Kind: Identifier, Text: "let", Line: 0, Col: 0},
		{Kind: Whitespace, Text: " ", Line: 0, Col: 3},
		{Kind: Identifier, Text: "x", Line: 0, Col: 4},
		{Kind: Semicolon, Text: ";", Line: 0, Col: 5},
		{Kind: Newline, Text: "\n", Line: 0, Col: 6},
	}
	require.Equal(t, "let x;\n", Source(tokens))
	require.Equal(t, "", Source(nil))
}

func TestSynthetic(t *testing.T) {
	tok := Synthetic(LineComment, "// hi")
	require.Equal(t, Token{Kind: LineComment, Text: "// hi", Line: 0, Col: 0}, tok)
}

func TestTokenJSON(t *testing.T) {
	content, err := json.Marshal(Token{Kind: Identifier, Text: "x", Line: 1, Col: 1})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"Identifier","text":"x","line":1,"col":1}`, string(content))
}

func TestHooks(t *testing.T) {
	require.Equal(t, []Hook{BeforeAll, AfterNormalize, BeforeWhitespace, AfterAll}, Hooks())

	for i, h := range Hooks() {
		require.Equal(t, i, h.Index())
		require.True(t, h.Valid())
	}

	h, err := ParseHook("formatter.after_normalize")
	require.NoError(t, err)
	require.Equal(t, AfterNormalize, h)

	_, err = ParseHook("formatter.before_print")
	require.Error(t, err)
	require.Equal(t, -1, Hook("formatter.before_print").Index())
}

func TestOptions(t *testing.T) {
	var empty Options
	require.Equal(t, "fallback", empty.Get("banner_text", "fallback"))

	defaults := Options{"banner_text": "Generated", "style": "line"}
	merged := defaults.Merge(Options{"banner_text": "Custom"})
	require.Equal(t, Options{"banner_text": "Custom", "style": "line"}, merged)
	require.Equal(t, "Generated", defaults["banner_text"])

	require.Equal(t, Options{}, empty.Merge(nil))
}

func TestDefaultFormatConfig(t *testing.T) {
	conf := DefaultFormatConfig()
	require.Equal(t, 80, conf.PrintWidth)
	require.Equal(t, 2, conf.TabWidth)
	require.True(t, conf.Semi)
	require.True(t, conf.BracketSpacing)
	require.False(t, conf.UseTabs)
	require.False(t, conf.SingleQuote)
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(`
name: banner
version: 0.1.0
description: Prepends a banner comment
options:
  banner_text: Generated file - do not edit
`))
	require.NoError(t, err)
	require.Equal(t, "banner", m.Name)
	require.Equal(t, "0.1.0", m.Version)
	require.Equal(t, "Generated file - do not edit", m.Options["banner_text"])
	require.NoError(t, m.Validate())

	_, err = ParseManifest([]byte("name: [unterminated"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse manifest")
}

func TestManifestValidate(t *testing.T) {
	err := (&Manifest{}).Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "name is required")
	require.Contains(t, err.Error(), "version is required")
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: test\nversion: 1.0.0\n"), 0o600))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Equal(t, "test", m.Name)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read manifest")
}
