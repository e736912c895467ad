package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/analyzer"
	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

func TestCommandAnalyzer_MakefileTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Makefile", `.PHONY: test build

test:
	pytest tests/

build:
	python -m build
`)

	result := analyzer.NewCommandAnalyzer().Analyze(scan(t, dir))

	require.NotNil(t, result.Commands)
	assert.Equal(t, map[string]string{
		"test":  "pytest tests/",
		"build": "python -m build",
	}, result.Commands.MakefileTargets)
	assert.Contains(t, result.SectionContent, "```bash")
	assert.Contains(t, result.SectionContent, "make test")
	assert.Contains(t, result.SectionContent, "# build")
}

func TestCommandAnalyzer_NPMScripts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"scripts": {"dev": "vite", "test": "vitest"}}`)

	result := analyzer.NewCommandAnalyzer().Analyze(scan(t, dir))

	assert.Equal(t, map[string]string{"dev": "vite", "test": "vitest"}, result.Commands.NPMScripts)
	assert.Contains(t, result.SectionContent, "npm run dev")
	assert.Contains(t, result.SectionContent, "npm run test")
	assert.InDelta(t, 1.0/3.0, result.Confidence, 0.001)
}

func TestCommandAnalyzer_MalformedPackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"scripts": `)

	result := analyzer.NewCommandAnalyzer().Analyze(scan(t, dir))

	assert.Empty(t, result.Commands.NPMScripts)
	assert.InDelta(t, 0.1, result.Confidence, 0.001)
	assert.Empty(t, result.SectionContent)
}

func TestCommandAnalyzer_PyprojectCommands(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", `[tool.pytest.ini_options]
testpaths = ["tests"]

[tool.ruff]
line-length = 100

[tool.mypy]
strict = true

[project.scripts]
forge = "forge.cli:main"
`)

	result := analyzer.NewCommandAnalyzer().Analyze(scan(t, dir))

	cmds := result.Commands.PyprojectScripts
	assert.Equal(t, "pytest tests/ -v", cmds["test"])
	assert.Equal(t, "ruff check src/ tests/", cmds["lint"])
	assert.Equal(t, "ruff format src/ tests/", cmds["format"])
	assert.Equal(t, "mypy src/", cmds["type check"])
	assert.Equal(t, "forge.cli:main", cmds["forge"])
}

func TestCommandAnalyzer_BlackOverridesRuffFormat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[tool.ruff]\n\n[tool.black]\n")

	result := analyzer.NewCommandAnalyzer().Analyze(scan(t, dir))
	assert.Equal(t, "black src/ tests/", result.Commands.PyprojectScripts["format"])
}

func TestCommandAnalyzer_Justfile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "justfile", "deploy:\n    scp app server:/srv\n")

	result := analyzer.NewCommandAnalyzer().Analyze(scan(t, dir))
	assert.Equal(t, map[string]string{"deploy": "scp app server:/srv"}, result.Commands.JustfileRecipes)
	assert.Contains(t, result.SectionContent, "just deploy")
}

func TestCommandAnalyzer_Dockerfile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Dockerfile", "FROM python:3.12\nENTRYPOINT [\"python\"]\nCMD [\"-m\", \"app\"]\n")

	result := analyzer.NewCommandAnalyzer().Analyze(scan(t, dir))
	assert.Equal(t, `["-m", "app"]`, result.Commands.DockerCommands["docker CMD"])
	assert.Equal(t, `["python"]`, result.Commands.DockerCommands["docker ENTRYPOINT"])
}

func TestCommandAnalyzer_NoSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "x = 1\n")

	result := analyzer.NewCommandAnalyzer().Analyze(scan(t, dir))
	assert.Equal(t, domain.CategoryCommands, result.Category)
	assert.InDelta(t, 0.1, result.Confidence, 0.001)
	assert.Empty(t, result.SectionContent)
}
