package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/analyzer"
)

const typedPythonModule = `from pathlib import Path
from app.config import load


def read_notes(path: str) -> list:
    """Read notes from disk.

    Args:
        path: location of the vault.
    """
    return Path(path).read_text().splitlines()


def count_notes(path: str) -> int:
    return len(read_notes(path))


class VaultError(Exception):
    pass


def open_vault(path: str) -> None:
    try:
        read_notes(path)
    except OSError:
        raise VaultError("unreadable") from None
`

func TestPatternAnalyzer_PythonConventions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app/vault.py", typedPythonModule)

	result := analyzer.NewPatternAnalyzer().Analyze(scan(t, dir))

	require.NotNil(t, result.Patterns)
	f := result.Patterns
	assert.Equal(t, "snake_case", f.Naming)
	assert.Equal(t, "double", f.QuoteStyle)
	assert.Equal(t, "present", f.TypeHints)
	assert.Equal(t, "google", f.DocstringStyle)
	assert.Equal(t, "absolute", f.ImportStyle)
	assert.Equal(t, "pathlib", f.PathUsage)
	assert.Equal(t, "n/a", f.Semicolons)
	assert.Greater(t, f.ErrorHandling.TryExceptCount, 0)
	assert.True(t, f.ErrorHandling.CustomExceptions)

	assert.Contains(t, result.SectionContent, "## Coding Standards")
	assert.Contains(t, result.SectionContent, "- **Naming**: snake_case")
	assert.Contains(t, result.SectionContent, "- **Quote Style**: double quotes")
	assert.Contains(t, result.SectionContent, "Custom exception classes")
	assert.InDelta(t, 1.0/50.0, result.Confidence, 0.001)
}

func TestPatternAnalyzer_TypeScriptConventions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/app.ts", `const appName = 'indexer';
const startApp = () => {
  runIndex();
  flushIndex();
};

function runIndex() {
  openDb();
  writeRows();
}
`)

	result := analyzer.NewPatternAnalyzer().Analyze(scan(t, dir))

	f := result.Patterns
	require.NotNil(t, f)
	assert.Equal(t, "camelCase", f.Naming)
	assert.Equal(t, "single", f.QuoteStyle)
	assert.Equal(t, "required", f.Semicolons)
	assert.Equal(t, "n/a", f.TypeHints)
}

func TestPatternAnalyzer_NoSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.txt", "nothing to see\n")

	result := analyzer.NewPatternAnalyzer().Analyze(scan(t, dir))

	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.SectionContent)
	require.NotNil(t, result.Patterns)
	assert.Equal(t, "No source files found to analyze", result.Patterns.Note)
}

func TestPatternAnalyzer_LineLengthPercentile(t *testing.T) {
	dir := t.TempDir()
	content := ""
	for i := 0; i < 19; i++ {
		content += "x = 1\n"
	}
	content += "long_variable_name = some_function(argument_one, argument_two, argument_three)\n"
	writeFile(t, dir, "mod.py", content)

	result := analyzer.NewPatternAnalyzer().Analyze(scan(t, dir))
	assert.Equal(t, 78, result.Patterns.LineLengthP95)
}

func TestPatternAnalyzer_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", typedPythonModule)
	writeFile(t, dir, "b.py", "def tiny():\n    pass\n")

	first := analyzer.NewPatternAnalyzer().Analyze(scan(t, dir))
	second := analyzer.NewPatternAnalyzer().Analyze(scan(t, dir))
	assert.Equal(t, first.SectionContent, second.SectionContent)
	assert.Equal(t, first.Patterns, second.Patterns)
}
