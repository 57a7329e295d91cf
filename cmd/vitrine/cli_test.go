package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/internal/outline"
	"github.com/vitrinehq/vitrine/internal/post"
	"github.com/vitrinehq/vitrine/internal/storefront"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestOpenCommand_ClassicTheme(t *testing.T) {
	out, err := executeCommand(t, "open", "--theme", "classic", "--no-color")
	require.NoError(t, err)

	require.Equal(t,
		"Playing typical store jingles.\n"+
			"Check out our bakery, 5 donuts for the price of 4\n"+
			"Welcome to our store during a normal time of the year!\n",
		out)
}

func TestOpenCommand_SwappingThemeSwapsOutput(t *testing.T) {
	classic, err := executeCommand(t, "open", "--theme", "classic", "--no-color")
	require.NoError(t, err)
	christmas, err := executeCommand(t, "open", "--theme", "christmas", "--no-color")
	require.NoError(t, err)

	require.NotEqual(t, classic, christmas)
	require.Contains(t, christmas, "Merry Christmas")
}

func TestOpenCommand_UnknownTheme(t *testing.T) {
	_, err := executeCommand(t, "open", "--theme", "solstice")

	var unknown *storefront.UnknownThemeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "solstice", unknown.Theme)
}

func writeComposeOutline(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "outline.yaml")
	content := `
version: "1.0"
name: launch-post
blocks:
  - kind: title
    text: T
  - kind: paragraph
    text: P
  - kind: list
    items:
      - a
      - b
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestComposeCommand_MarkdownToStdout(t *testing.T) {
	path := writeComposeOutline(t)

	out, err := executeCommand(t, "compose", "-f", path)
	require.NoError(t, err)
	require.Equal(t, "# T\nP\n\n* a\n* b\n\n", out)
}

func TestComposeCommand_HTMLToFile(t *testing.T) {
	path := writeComposeOutline(t)
	outPath := filepath.Join(t.TempDir(), "post.html")

	out, err := executeCommand(t, "compose", "-f", path, "--format", "html", "-o", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t,
		"<h1>T</h1>\n<p>P</p>\n<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>",
		string(data))
}

func TestComposeCommand_UnknownFormat(t *testing.T) {
	path := writeComposeOutline(t)

	_, err := executeCommand(t, "compose", "-f", path, "--format", "docx")

	var unknown *post.UnknownFormatError
	require.ErrorAs(t, err, &unknown)
}

func TestComposeCommand_PreviewRequiresMarkdown(t *testing.T) {
	path := writeComposeOutline(t)

	_, err := executeCommand(t, "compose", "-f", path, "--format", "html", "--preview")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--preview supports only")
}

func TestComposeCommand_InvalidOutline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\n"), 0o644))

	_, err := executeCommand(t, "compose", "-f", path)

	var validationErr *outline.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestListCommand_TableOutput(t *testing.T) {
	out, err := executeCommand(t, "list")
	require.NoError(t, err)

	require.Contains(t, out, "KIND")
	require.Contains(t, out, "theme")
	require.Contains(t, out, "classic")
	require.Contains(t, out, "christmas")
	require.Contains(t, out, "format")
	require.Contains(t, out, "markdown")
	require.Contains(t, out, "html")
}

func TestListCommand_JSONOutput(t *testing.T) {
	out, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var rows []registeredToken
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Contains(t, rows, registeredToken{Kind: "theme", Token: "classic"})
	require.Contains(t, rows, registeredToken{Kind: "theme", Token: "christmas"})
	require.Contains(t, rows, registeredToken{Kind: "format", Token: "markdown"})
	require.Contains(t, rows, registeredToken{Kind: "format", Token: "html"})
}

func TestVersionCommand(t *testing.T) {
	originalVersion := version
	t.Cleanup(func() { version = originalVersion })
	version = "1.2.3"

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "vitrine 1.2.3")
}

func TestThemeAmbience(t *testing.T) {
	out, err := themeAmbience("christmas")
	require.NoError(t, err)
	require.Contains(t, out, "Merry Christmas")

	_, err = themeAmbience("solstice")
	var unknown *storefront.UnknownThemeError
	require.ErrorAs(t, err, &unknown)
}
