package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

func pythonProject() (*domain.ProjectStructure, []domain.AnalysisResult) {
	structure := &domain.ProjectStructure{
		Root:            "/tmp/notes",
		Directories:     []string{"src", "src/notes", "tests"},
		TotalFiles:      12,
		TotalLines:      800,
		PrimaryLanguage: "Python",
		Languages:       map[string]int{"Python": 10, "Shell": 2},
	}
	analyses := []domain.AnalysisResult{
		{
			Category:       domain.CategoryLanguage,
			Confidence:     0.7,
			SectionContent: "## Tech Stack\n\n- **Primary Language**: Python\n",
			Language: &domain.LanguageFindings{
				Languages:       map[string]int{"Python": 10},
				PrimaryLanguage: "Python",
				Frameworks:      []string{"fastapi"},
				PackageManagers: []string{"uv"},
			},
		},
		{
			Category:       domain.CategoryCommands,
			Confidence:     0.33,
			SectionContent: "## Common Commands\n\n```bash\nmake test\n```\n",
			Commands:       &domain.CommandFindings{MakefileTargets: map[string]string{"test": "pytest"}},
		},
	}
	return structure, analyses
}

func TestUsesConventionalCommits(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		want     bool
	}{
		{"empty", nil, false},
		{
			"majority conventional",
			[]string{"feat: add scanner", "fix(cli): handle empty path", "wip"},
			true,
		},
		{
			"split half and half",
			[]string{"feat: add scanner", "update stuff"},
			false,
		},
		{
			"scoped and breaking",
			[]string{"feat(api)!: drop v1", "chore: bump deps", "refactor(core): split walker"},
			true,
		},
		{
			"freeform only",
			[]string{"update stuff", "more fixes", "final version 2"},
			false,
		},
		{
			"type without colon space is not conventional",
			[]string{"feature add scanner", "fixes the bug"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.UsesConventionalCommits(tt.subjects))
		})
	}
}

func TestCompose_SectionOrder(t *testing.T) {
	structure, analyses := pythonProject()
	content := domain.Compose(structure, analyses, "notes", nil)

	headings := []string{
		"# CLAUDE.md — notes",
		"## Project Overview",
		"## Current State",
		"## Architecture",
		"## Tech Stack",
		"## Common Commands",
		"## Anti-Patterns",
		"## Dependencies",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(content, h)
		require.GreaterOrEqual(t, idx, 0, h)
		assert.Greater(t, idx, last, "%s out of order", h)
		last = idx
	}
}

func TestCompose_AntiPatternsFollowSignals(t *testing.T) {
	structure, analyses := pythonProject()
	content := domain.Compose(structure, analyses, "notes", nil)

	assert.Contains(t, content, "Do NOT use `os.path`")
	assert.Contains(t, content, "Do NOT use synchronous database calls")
	assert.Contains(t, content, "Do NOT commit secrets")
	assert.NotContains(t, content, "Do NOT use class components")
	assert.NotContains(t, content, "`.unwrap()`")
}

func TestCompose_ArchitectureListsTopLevelDirsOnly(t *testing.T) {
	structure, analyses := pythonProject()
	content := domain.Compose(structure, analyses, "notes", nil)

	assert.Contains(t, content, "- `src/`")
	assert.Contains(t, content, "- `tests/`")
	assert.NotContains(t, content, "src/notes")
}

func TestCompose_GitConventions(t *testing.T) {
	structure, analyses := pythonProject()

	content := domain.Compose(structure, analyses, "notes", &domain.GitSummary{
		HasRepo:             true,
		Branch:              "main",
		ConventionalCommits: true,
	})
	assert.Contains(t, content, "## Git Conventions")
	assert.Contains(t, content, "`main`")
	assert.Contains(t, content, "Conventional Commits")

	content = domain.Compose(structure, analyses, "notes", nil)
	assert.NotContains(t, content, "## Git Conventions")
}

func TestCompose_NoBlankRunsAndSingleTrailingNewline(t *testing.T) {
	structure, analyses := pythonProject()
	content := domain.Compose(structure, analyses, "notes", nil)

	assert.NotContains(t, content, "\n\n\n")
	assert.True(t, strings.HasSuffix(content, "\n"))
	assert.False(t, strings.HasSuffix(content, "\n\n"))
}

func TestCompose_Deterministic(t *testing.T) {
	structure, analyses := pythonProject()
	first := domain.Compose(structure, analyses, "notes", nil)
	second := domain.Compose(structure, analyses, "notes", nil)
	assert.Equal(t, first, second)
}

func TestEstimateQualityScore(t *testing.T) {
	structure, analyses := pythonProject()
	content := domain.Compose(structure, analyses, "notes", &domain.GitSummary{HasRepo: true, Branch: "main"})
	score := domain.EstimateQualityScore(content)
	assert.Greater(t, score, 40)
	assert.LessOrEqual(t, score, 100)

	assert.Equal(t, 0, domain.EstimateQualityScore(""))
}
