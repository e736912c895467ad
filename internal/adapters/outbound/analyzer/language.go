package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// frameworkIndicator is either a path that must exist, or a path plus a
// substring the file at that path must contain (case-insensitive).
type frameworkIndicator struct {
	path     string
	contains string
}

type frameworkRule struct {
	name       string
	indicators []frameworkIndicator
}

// Indicators are checked in listed order; the first match wins per framework.
var frameworkRules = []frameworkRule{
	{"react", []frameworkIndicator{{"package.json", "react"}, {"src/App.tsx", ""}, {"src/App.jsx", ""}}},
	{"nextjs", []frameworkIndicator{{"next.config.js", ""}, {"next.config.ts", ""}, {"next.config.mjs", ""}}},
	{"vue", []frameworkIndicator{{"package.json", "vue"}, {"src/App.vue", ""}}},
	{"svelte", []frameworkIndicator{{"package.json", "svelte"}, {"svelte.config.js", ""}}},
	{"angular", []frameworkIndicator{{"angular.json", ""}, {"package.json", "@angular/core"}}},
	{"fastapi", []frameworkIndicator{{"requirements.txt", "fastapi"}, {"pyproject.toml", "fastapi"}}},
	{"django", []frameworkIndicator{{"manage.py", ""}, {"settings.py", ""}, {"django", ""}}},
	{"flask", []frameworkIndicator{{"requirements.txt", "flask"}, {"pyproject.toml", "flask"}}},
	{"express", []frameworkIndicator{{"package.json", "express"}}},
	{"nestjs", []frameworkIndicator{{"package.json", "@nestjs/core"}}},
	{"rust", []frameworkIndicator{{"Cargo.toml", ""}}},
	{"bevy", []frameworkIndicator{{"Cargo.toml", "bevy"}}},
	{"go", []frameworkIndicator{{"go.mod", ""}}},
	{"spring", []frameworkIndicator{{"pom.xml", "spring"}, {"build.gradle", "spring"}}},
}

// LanguageAnalyzer detects languages, frameworks, toolchains, and package
// managers.
type LanguageAnalyzer struct{}

func NewLanguageAnalyzer() *LanguageAnalyzer { return &LanguageAnalyzer{} }

func (a *LanguageAnalyzer) Category() string { return domain.CategoryLanguage }

func (a *LanguageAnalyzer) Analyze(structure *domain.ProjectStructure) domain.AnalysisResult {
	root := structure.Root

	f := &domain.LanguageFindings{
		Languages:       structure.Languages,
		PrimaryLanguage: structure.PrimaryLanguage,
		Frameworks:      detectFrameworks(root),
		PackageManagers: detectPackageManagers(root),
		Toolchains:      detectToolchains(root),
		Runtime:         detectRuntime(root),
		CICD:            detectCICD(root),
	}

	// One signal per non-empty finding category, out of seven.
	signals := 0
	if len(f.Languages) > 0 {
		signals++
	}
	if f.PrimaryLanguage != "" {
		signals++
	}
	if len(f.Frameworks) > 0 {
		signals++
	}
	if len(f.PackageManagers) > 0 {
		signals++
	}
	if !f.Toolchains.Empty() {
		signals++
	}
	if len(f.Runtime) > 0 {
		signals++
	}
	if len(f.CICD) > 0 {
		signals++
	}
	confidence := float64(signals) / 7.0
	if confidence > 1.0 {
		confidence = 1.0
	}

	return domain.AnalysisResult{
		Category:       domain.CategoryLanguage,
		Confidence:     confidence,
		SectionContent: renderTechStack(f),
		Language:       f,
	}
}

func detectFrameworks(root string) []string {
	var detected []string
	for _, rule := range frameworkRules {
		for _, ind := range rule.indicators {
			if ind.contains == "" {
				if pathExists(root, ind.path) {
					detected = append(detected, rule.name)
					break
				}
				continue
			}
			content, ok := readFile(root, ind.path)
			if ok && strings.Contains(strings.ToLower(content), strings.ToLower(ind.contains)) {
				detected = append(detected, rule.name)
				break
			}
		}
	}
	sort.Strings(detected)
	return detected
}

func detectPackageManagers(root string) []string {
	lockfiles := []struct {
		manager string
		file    string
	}{
		{"npm", "package-lock.json"},
		{"yarn", "yarn.lock"},
		{"pnpm", "pnpm-lock.yaml"},
		{"bun", "bun.lockb"},
		{"pip", "requirements.txt"},
		{"uv", "uv.lock"},
		{"poetry", "poetry.lock"},
		{"cargo", "Cargo.lock"},
		{"go modules", "go.sum"},
	}

	seen := make(map[string]bool)
	var managers []string
	for _, lf := range lockfiles {
		if fileExists(root, lf.file) && !seen[lf.manager] {
			seen[lf.manager] = true
			managers = append(managers, lf.manager)
		}
	}

	// Build-backend hints imply pip when no stronger Python signal exists.
	if !seen["pip"] && !seen["poetry"] {
		if content, ok := readFile(root, "pyproject.toml"); ok {
			if strings.Contains(content, "setuptools") ||
				strings.Contains(content, "hatchling") ||
				strings.Contains(content, "flit") {
				managers = append(managers, "pip")
			}
		}
	}

	sort.Strings(managers)
	return managers
}

func detectToolchains(root string) domain.Toolchains {
	pyproject, _ := readFile(root, "pyproject.toml")
	pkgJSON, _ := readFile(root, "package.json")
	combined := pyproject + pkgJSON

	linterConfigs := map[string][]string{
		"ruff":   {".ruff.toml", "ruff.toml"},
		"eslint": {".eslintrc", ".eslintrc.js", ".eslintrc.json", ".eslintrc.yml"},
		"flake8": {".flake8"},
		"pylint": {".pylintrc", "pylintrc"},
	}
	formatterConfigs := map[string][]string{
		"prettier": {".prettierrc", ".prettierrc.js", ".prettierrc.json"},
		"black":    {},
		"ruff":     {},
	}
	typeCheckerConfigs := map[string][]string{
		"mypy":    {"mypy.ini", ".mypy.ini"},
		"pyright": {"pyrightconfig.json"},
	}

	var tc domain.Toolchains

	for _, tool := range sortedKeys(linterConfigs) {
		if toolDetected(root, tool, linterConfigs[tool], pyproject, pkgJSON) {
			tc.Linters = append(tc.Linters, tool)
		}
	}
	for _, tool := range sortedKeys(formatterConfigs) {
		if toolDetected(root, tool, formatterConfigs[tool], pyproject, combined) {
			tc.Formatters = append(tc.Formatters, tool)
		}
	}
	for _, tool := range sortedKeys(typeCheckerConfigs) {
		if anyFileExists(root, typeCheckerConfigs[tool]) ||
			strings.Contains(pyproject, "[tool."+tool) {
			tc.TypeCheckers = append(tc.TypeCheckers, tool)
		}
	}

	if fileExists(root, "tsconfig.json") {
		tc.TypeCheckers = append(tc.TypeCheckers, "tsc")
	}
	hasCargo := fileExists(root, "Cargo.toml")
	if hasCargo {
		tc.Linters = append(tc.Linters, "clippy")
	}

	for _, fw := range []string{"jest", "mocha", "pytest", "vitest"} {
		if strings.Contains(combined, fw) {
			tc.TestFrameworks = append(tc.TestFrameworks, fw)
		}
	}
	if hasCargo {
		tc.TestFrameworks = append(tc.TestFrameworks, "cargo test")
	}

	sort.Strings(tc.Linters)
	sort.Strings(tc.Formatters)
	sort.Strings(tc.TypeCheckers)
	sort.Strings(tc.TestFrameworks)
	return tc
}

// toolDetected matches a config file, a [tool.X] table in pyproject.toml, or
// a quoted dependency name in the manifest haystack.
func toolDetected(root, tool string, configs []string, pyproject, haystack string) bool {
	return anyFileExists(root, configs) ||
		strings.Contains(pyproject, "[tool."+tool) ||
		strings.Contains(haystack, `"`+tool+`"`)
}

func anyFileExists(root string, names []string) bool {
	for _, name := range names {
		if fileExists(root, name) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func detectRuntime(root string) []string {
	var runtime []string
	checks := []struct {
		name  string
		files []string
	}{
		{"Docker", []string{"Dockerfile", "docker-compose.yml", "docker-compose.yaml", "compose.yml"}},
		{"Makefile", []string{"Makefile", "makefile"}},
		{"justfile", []string{"justfile", "Justfile"}},
	}
	for _, c := range checks {
		if anyFileExists(root, c.files) {
			runtime = append(runtime, c.name)
		}
	}
	return runtime
}

func detectCICD(root string) []string {
	var ci []string
	if dirExists(root, ".github/workflows") {
		ci = append(ci, "GitHub Actions")
	}
	if fileExists(root, ".gitlab-ci.yml") {
		ci = append(ci, "GitLab CI")
	}
	if fileExists(root, "Jenkinsfile") {
		ci = append(ci, "Jenkins")
	}
	if dirExists(root, ".circleci") {
		ci = append(ci, "CircleCI")
	}
	if fileExists(root, ".travis.yml") {
		ci = append(ci, "Travis CI")
	}
	return ci
}

func renderTechStack(f *domain.LanguageFindings) string {
	var lines []string
	lines = append(lines, "## Tech Stack", "")

	if f.PrimaryLanguage != "" {
		langStr := f.PrimaryLanguage
		var others []string
		for _, lang := range sortedLangNames(f.Languages) {
			if lang != f.PrimaryLanguage {
				others = append(others, lang)
			}
		}
		if len(others) > 0 {
			langStr += ", " + strings.Join(others, ", ")
		}
		lines = append(lines, fmt.Sprintf("- **Language**: %s", langStr))
	}

	if len(f.Frameworks) > 0 {
		lines = append(lines, fmt.Sprintf("- **Framework**: %s", strings.Join(f.Frameworks, ", ")))
	}
	if len(f.PackageManagers) > 0 {
		lines = append(lines, fmt.Sprintf("- **Package Manager**: %s", strings.Join(f.PackageManagers, ", ")))
	}

	toolchainGroups := []struct {
		label string
		tools []string
	}{
		{"Linters", f.Toolchains.Linters},
		{"Formatters", f.Toolchains.Formatters},
		{"Type Checkers", f.Toolchains.TypeCheckers},
		{"Test Frameworks", f.Toolchains.TestFrameworks},
	}
	for _, g := range toolchainGroups {
		if len(g.tools) > 0 {
			lines = append(lines, fmt.Sprintf("- **%s**: %s", g.label, strings.Join(g.tools, ", ")))
		}
	}

	if len(f.Runtime) > 0 {
		lines = append(lines, fmt.Sprintf("- **Runtime**: %s", strings.Join(f.Runtime, ", ")))
	}
	if len(f.CICD) > 0 {
		lines = append(lines, fmt.Sprintf("- **CI/CD**: %s", strings.Join(f.CICD, ", ")))
	}

	// No primary language and no other signal: omit the section entirely.
	if len(lines) == 2 {
		return ""
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// sortedLangNames orders languages by descending file count, ties broken by
// name, for stable rendering.
func sortedLangNames(languages map[string]int) []string {
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
