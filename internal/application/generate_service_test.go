package application_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/gitinfo"
	"github.com/AreteDriver/claudemd-forge/internal/application"
)

func TestGenerate_ComposesDocument(t *testing.T) {
	dir := writePythonProject(t)

	svc := application.NewGenerateService(newPipeline(), gitinfo.New())
	content, structure, analyses, err := svc.Generate(dir)
	require.NoError(t, err)

	assert.Contains(t, content, "# CLAUDE.md — "+filepath.Base(dir))
	assert.Contains(t, content, "## Project Overview")
	assert.Contains(t, content, "## Tech Stack")
	assert.Contains(t, content, "## Common Commands")
	assert.Contains(t, content, "make test")
	assert.Contains(t, content, "## Anti-Patterns")
	// Not a git repository, so no git section.
	assert.NotContains(t, content, "## Git Conventions")

	require.NotNil(t, structure)
	assert.Len(t, analyses, 4)
}

func TestGenerate_Deterministic(t *testing.T) {
	dir := writePythonProject(t)
	svc := application.NewGenerateService(newPipeline(), gitinfo.New())

	first, _, _, err := svc.Generate(dir)
	require.NoError(t, err)
	second, _, _, err := svc.Generate(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_MissingProject(t *testing.T) {
	svc := application.NewGenerateService(newPipeline(), gitinfo.New())
	_, _, _, err := svc.Generate(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
