package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// GitSummary is what the composer needs to know about the repository.
type GitSummary struct {
	Branch              string `json:"branch,omitempty"`
	ConventionalCommits bool   `json:"conventional_commits"`
	HasRepo             bool   `json:"has_repo"`
}

var conventionalSubject = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\([^)]*\))?!?: `)

// UsesConventionalCommits reports whether the majority of subjects follow
// the type(scope): subject shape.
func UsesConventionalCommits(subjects []string) bool {
	if len(subjects) == 0 {
		return false
	}
	matching := 0
	for _, s := range subjects {
		if conventionalSubject.MatchString(s) {
			matching++
		}
	}
	return matching*2 > len(subjects)
}

// antiPatternRules maps a detection signal (language, framework, or runtime
// marker) to the guidance emitted when that signal is present. The "_always"
// group is unconditional.
var antiPatternRules = map[string][]string{
	"Python": {
		"Do NOT use `os.path` — use `pathlib.Path` everywhere",
		"Do NOT use bare `except:` — catch specific exceptions",
		"Do NOT use mutable default arguments",
		"Do NOT use `print()` for logging — use the `logging` module",
	},
	"react": {
		"Do NOT use class components — use functional components with hooks",
		"Do NOT mutate state directly — use immutable patterns",
		"Do NOT use `useEffect` for derived state — use `useMemo`",
	},
	"TypeScript": {
		"Do NOT use `any` type — define proper type interfaces",
		"Do NOT use `var` — use `const` or `let`",
	},
	"fastapi": {
		"Do NOT use synchronous database calls in async endpoints",
		"Do NOT return raw dicts — use Pydantic response models",
	},
	"Rust": {
		"Do NOT use `.unwrap()` in production code — use proper error handling",
		"Do NOT use `unsafe` without a safety comment",
		"Do NOT clone when a reference will do",
	},
	"django": {
		"Do NOT use raw SQL when the ORM can handle it",
		"Do NOT put business logic in views — use service layers",
	},
	"Docker": {
		"Do NOT hardcode secrets in Dockerfiles — use environment variables",
		"Do NOT use `latest` tag — pin specific versions",
	},
	"Go": {
		"Do NOT ignore returned errors — handle or propagate every error",
		"Do NOT use panic for expected failure paths",
	},
	"_always": {
		"Do NOT commit secrets, API keys, or credentials",
		"Do NOT skip writing tests for new code",
	},
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Compose assembles the full context document from the scan and analyses.
// Sections appear in a fixed order; empty sections are dropped.
func Compose(structure *ProjectStructure, analyses []AnalysisResult, projectName string, git *GitSummary) string {
	byCategory := make(map[string]AnalysisResult, len(analyses))
	for _, a := range analyses {
		byCategory[a.Category] = a
	}

	sections := []string{
		composeHeader(projectName),
		composeProjectOverview(projectName),
		composeCurrentState(structure),
		composeArchitecture(structure),
		byCategory[CategoryLanguage].SectionContent,
		byCategory[CategoryPatterns].SectionContent,
		byCategory[CategoryCommands].SectionContent,
		composeAntiPatterns(byCategory),
		composeDependencies(byCategory),
		byCategory[CategoryDomain].SectionContent,
		composeGitConventions(git),
	}

	var parts []string
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}

	content := strings.Join(parts, "\n")
	content = blankRuns.ReplaceAllString(content, "\n\n")
	return strings.TrimRight(content, "\n") + "\n"
}

func composeHeader(projectName string) string {
	return fmt.Sprintf("# CLAUDE.md — %s\n", projectName)
}

func composeProjectOverview(projectName string) string {
	return strings.Join([]string{
		"## Project Overview",
		"",
		fmt.Sprintf("%s — add a one-paragraph description of what this project does and why.", projectName),
		"",
	}, "\n")
}

func composeCurrentState(structure *ProjectStructure) string {
	lines := []string{"## Current State", ""}
	lines = append(lines, fmt.Sprintf("- **Files**: %d (%d lines of text)", structure.TotalFiles, structure.TotalLines))
	if len(structure.Languages) > 0 {
		var langParts []string
		for _, name := range languagesByCount(structure.Languages) {
			langParts = append(langParts, fmt.Sprintf("%s (%d)", name, structure.Languages[name]))
		}
		lines = append(lines, fmt.Sprintf("- **Languages**: %s", strings.Join(langParts, ", ")))
	}
	if structure.PrimaryLanguage != "" {
		lines = append(lines, fmt.Sprintf("- **Primary Language**: %s", structure.PrimaryLanguage))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// composeArchitecture lists the top-level directories as an orientation map.
func composeArchitecture(structure *ProjectStructure) string {
	var topLevel []string
	for _, d := range structure.Directories {
		if !strings.Contains(d, "/") {
			topLevel = append(topLevel, d)
		}
	}
	if len(topLevel) == 0 {
		return ""
	}
	lines := []string{"## Architecture", ""}
	for _, d := range topLevel {
		lines = append(lines, fmt.Sprintf("- `%s/`", d))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// composeAntiPatterns collects the rules whose detection signal is present,
// plus the unconditional group.
func composeAntiPatterns(byCategory map[string]AnalysisResult) string {
	signals := make(map[string]bool)
	if lang, ok := byCategory[CategoryLanguage]; ok && lang.Language != nil {
		for name := range lang.Language.Languages {
			signals[name] = true
		}
		for _, fw := range lang.Language.Frameworks {
			signals[fw] = true
		}
		for _, rt := range lang.Language.Runtime {
			signals[rt] = true
		}
	}

	var keys []string
	for key := range antiPatternRules {
		if key != "_always" && signals[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	lines := []string{"## Anti-Patterns", ""}
	for _, key := range keys {
		lines = append(lines, antiPatternRules[key]...)
	}
	lines = append(lines, antiPatternRules["_always"]...)

	for i := 2; i < len(lines); i++ {
		lines[i] = "- " + lines[i]
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func composeDependencies(byCategory map[string]AnalysisResult) string {
	lang, ok := byCategory[CategoryLanguage]
	if !ok || lang.Language == nil {
		return ""
	}
	f := lang.Language
	if len(f.PackageManagers) == 0 && len(f.Frameworks) == 0 {
		return ""
	}
	lines := []string{"## Dependencies", ""}
	if len(f.PackageManagers) > 0 {
		lines = append(lines, fmt.Sprintf("- **Managed by**: %s", strings.Join(f.PackageManagers, ", ")))
	}
	if len(f.Frameworks) > 0 {
		lines = append(lines, fmt.Sprintf("- **Key frameworks**: %s", strings.Join(f.Frameworks, ", ")))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func composeGitConventions(git *GitSummary) string {
	if git == nil || !git.HasRepo {
		return ""
	}
	lines := []string{"## Git Conventions", ""}
	if git.Branch != "" {
		lines = append(lines, fmt.Sprintf("- **Current branch**: `%s`", git.Branch))
	}
	if git.ConventionalCommits {
		lines = append(lines, "- **Commit style**: Conventional Commits (`type(scope): subject`)")
	} else {
		lines = append(lines, "- **Commit style**: freeform subjects")
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// languagesByCount orders names by descending file count, ties by name.
func languagesByCount(languages map[string]int) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// EstimateQualityScore grades a composed document 0-100 on section
// coverage, depth, code blocks, and labeled bullets.
func EstimateQualityScore(content string) int {
	score := 0

	expected := []string{
		"Project Overview",
		"Current State",
		"Architecture",
		"Tech Stack",
		"Coding Standards",
		"Common Commands",
		"Anti-Patterns",
		"Dependencies",
		"Git Conventions",
	}
	present := 0
	for _, h := range expected {
		if strings.Contains(content, "## "+h) {
			present++
		}
	}
	score += int(float64(present) / float64(len(expected)) * 60)

	lineCount := len(strings.Split(strings.TrimSuffix(content, "\n"), "\n"))
	if lineCount > 50 {
		score += 10
	}
	if lineCount > 100 {
		score += 5
	}
	if lineCount > 150 {
		score += 5
	}

	codeBlocks := strings.Count(content, "```")
	if codeBlocks >= 2 {
		score += 10
	} else if codeBlocks >= 1 {
		score += 5
	}

	boldBullets := len(regexp.MustCompile(`- \*\*\w+`).FindAllString(content, -1))
	if boldBullets > 5 {
		score += 10
	} else if boldBullets > 2 {
		score += 5
	}

	if score > 100 {
		return 100
	}
	return score
}
