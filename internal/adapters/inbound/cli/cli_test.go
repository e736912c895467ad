package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/inbound/cli"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func fixtureProject(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", `[project]
name = "notes"
dependencies = ["fastapi"]

[tool.ruff]
line-length = 100

[tool.pytest.ini_options]
testpaths = ["tests"]
`)
	writeFile(t, dir, "Makefile", "test:\n\tpytest tests/\n")
	writeFile(t, dir, "src/notes/vault.py", "class Vault:\n    def open_vault(self) -> None:\n        pass\n")
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "forge")
}

func TestScanCommand_JSON(t *testing.T) {
	dir := fixtureProject(t)
	out, err := execute(t, "scan", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"structure"`)
	assert.Contains(t, out, `"primary_language": "Python"`)
	assert.Contains(t, out, `"analyses"`)
}

func TestScanCommand_Default(t *testing.T) {
	dir := fixtureProject(t)
	out, err := execute(t, "scan", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Primary language: Python")
	assert.Contains(t, out, "language")
	assert.Contains(t, out, "commands")
}

func TestScanCommand_MissingPath(t *testing.T) {
	_, err := execute(t, "scan", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestGenerateCommand_DryRun(t *testing.T) {
	dir := fixtureProject(t)
	out, err := execute(t, "generate", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "# CLAUDE.md — "+filepath.Base(dir))
	assert.Contains(t, out, "## Common Commands")
	assert.NoFileExists(t, filepath.Join(dir, "CLAUDE.md"))
}

func TestGenerateCommand_WritesFile(t *testing.T) {
	dir := fixtureProject(t)
	out, err := execute(t, "generate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(filepath.Join(dir, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Tech Stack")
}

func TestGenerateCommand_RefusesOverwrite(t *testing.T) {
	dir := fixtureProject(t)
	writeFile(t, dir, "CLAUDE.md", "# existing\n")

	_, err := execute(t, "generate", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "generate", dir, "--force")
	assert.NoError(t, err)
}

func TestGenerateCommand_OutputFlag(t *testing.T) {
	dir := fixtureProject(t)
	target := filepath.Join(t.TempDir(), "context.md")

	_, err := execute(t, "generate", dir, "-o", target)
	require.NoError(t, err)
	assert.FileExists(t, target)
}

func TestAuditCommand_JSON(t *testing.T) {
	dir := fixtureProject(t)
	writeFile(t, dir, "CLAUDE.md", "# CLAUDE.md\n")

	out, err := execute(t, "audit", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"score"`)
	assert.Contains(t, out, `"findings"`)
}

func TestAuditCommand_CIFailsBelowMin(t *testing.T) {
	dir := fixtureProject(t)
	writeFile(t, dir, "CLAUDE.md", "# CLAUDE.md\n")

	_, err := execute(t, "audit", dir, "--ci", "--min", "100")
	assert.Error(t, err)
}

func TestAuditCommand_CIPassesAboveMin(t *testing.T) {
	dir := fixtureProject(t)
	writeFile(t, dir, "CLAUDE.md", "# CLAUDE.md\n")

	_, err := execute(t, "audit", dir, "--ci", "--min", "1")
	assert.NoError(t, err)
}

func TestAuditCommand_MissingDocument(t *testing.T) {
	dir := fixtureProject(t)
	_, err := execute(t, "audit", dir)
	assert.Error(t, err)
}

func TestAuditCommand_History(t *testing.T) {
	dir := fixtureProject(t)
	writeFile(t, dir, "CLAUDE.md", "# CLAUDE.md\n")

	_, err := execute(t, "audit", dir)
	require.NoError(t, err)

	out, err := execute(t, "audit", dir, "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Audit History")
}

func TestDiffCommand_FreshGenerationMatches(t *testing.T) {
	dir := fixtureProject(t)
	_, err := execute(t, "generate", dir)
	require.NoError(t, err)
	// Regenerate so the recorded file counts include CLAUDE.md itself.
	_, err = execute(t, "generate", dir, "--force")
	require.NoError(t, err)

	out, err := execute(t, "diff", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "matches a fresh generation")
}

func TestDiffCommand_ReportsDrift(t *testing.T) {
	dir := fixtureProject(t)
	writeFile(t, dir, "CLAUDE.md", "## Project Overview\n\nstale\n\n## Handwritten Notes\n\nkeep me\n")

	out, err := execute(t, "diff", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "missing  ## Tech Stack")
	assert.Contains(t, out, "extra    ## Handwritten Notes")
	assert.Contains(t, out, "changed  ## Project Overview")
}

func TestDiffCommand_MissingDocument(t *testing.T) {
	dir := fixtureProject(t)
	_, err := execute(t, "diff", dir)
	assert.Error(t, err)
}
