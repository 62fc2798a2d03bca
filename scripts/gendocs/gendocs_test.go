package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lox/internal/cli"
)

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index := readDoc(t, filepath.Join(dir, "index.md"))
	assert.Contains(t, index, "# CLI Reference")
	assert.Contains(t, index, "`LOX_OUTPUT`")
	assert.Contains(t, index, "`65`")
	assert.Contains(t, index, "[`ast`](/cli/ast)")

	for _, name := range []string{"run", "repl", "tokens", "ast", "check", "lsp", "version", "completion"} {
		page := readDoc(t, filepath.Join(dir, name+".md"))
		assert.Contains(t, page, "# "+name, name)
		assert.Contains(t, page, "lox "+name, name)
	}

	ast := readDoc(t, filepath.Join(dir, "ast.md"))
	assert.Contains(t, ast, "`--format`")
	assert.Contains(t, ast, "## Global Options")
	assert.Contains(t, ast, "`-o`, `--output`")
	assert.Contains(t, ast, "`LOX_OUTPUT`")
	assert.Contains(t, ast, "## Exit Codes")
	assert.Contains(t, ast, "`65`")

	version := readDoc(t, filepath.Join(dir, "version.md"))
	assert.Contains(t, version, "## Exit Codes")
	assert.NotContains(t, version, "`65`")
}

func TestCommandExitCodes(t *testing.T) {
	for _, cmd := range visibleCommands(cli.NewRootCmd()) {
		codes, ok := commandExitCodes[cmd.Name()]
		require.True(t, ok, "no exit codes for %s", cmd.Name())
		for _, code := range codes {
			assert.NotEmpty(t, exitCodeMeanings[code], "%s: code %d", cmd.Name(), code)
		}
	}
}

func TestFlagEnvVars(t *testing.T) {
	vars := flagEnvVars()
	assert.Equal(t, "LOX_LOG_LEVEL", vars["log-level"])
	assert.Equal(t, "LOX_NO_COLOR", vars["no-color"])
	assert.NotContains(t, vars, "config")
}

func TestConfigFields(t *testing.T) {
	fields := configFields()
	require.NotEmpty(t, fields)

	byKey := map[string]ConfigField{}
	for _, f := range fields {
		byKey[f.Key] = f
		assert.NotEmpty(t, f.Description, "missing description for %s", f.Key)
	}

	assert.Equal(t, "auto", byKey["output"].Default)
	assert.Equal(t, "100ms", byKey["watch_debounce"].Default)
	assert.Equal(t, "LOX_LOG_LEVEL", byKey["log_level"].EnvVar())
	assert.Contains(t, byKey["ast_format"].Allowed, "tree")
}

func TestGenerateConfigDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigDocs(dir))

	doc := readDoc(t, filepath.Join(dir, "configuration.md"))
	assert.Contains(t, doc, "`watch_debounce`")
	assert.Contains(t, doc, "```yaml")
}

func TestGenerateGrammarDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateGrammarDocs(dir))

	doc := readDoc(t, filepath.Join(dir, "grammar.md"))
	assert.Contains(t, doc, "equality   → comparison")
	assert.Contains(t, doc, "`while`")
	assert.Contains(t, doc, "`LEFT_PAREN`")
	assert.Contains(t, doc, "end of input")
	assert.Equal(t, 1, strings.Count(doc, "```ebnf"))
}

func TestCleanExample(t *testing.T) {
	in := "  # comment\n  lox ast expr.lox\n\n    indented"
	assert.Equal(t, "# comment\nlox ast expr.lox\n\n  indented", cleanExample(in))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "Run a script", cleanDescription("Run   a\nscript."))
}
