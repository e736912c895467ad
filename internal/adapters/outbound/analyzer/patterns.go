package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

const maxSampleFiles = 50

var (
	pySnakeDef   = regexp.MustCompile(`\bdef [a-z][a-z0-9_]+\(`)
	rustSnakeFn  = regexp.MustCompile(`\bfn [a-z][a-z0-9_]+\(`)
	jsCamelFunc  = regexp.MustCompile(`\bfunction [a-z][a-zA-Z0-9]+\(`)
	jsCamelConst = regexp.MustCompile(`\bconst [a-z][a-zA-Z0-9]+ =`)

	// Delimiter matching, not a lexer: a quote not preceded by a backslash
	// or the same quote opens a literal-like span.
	singleQuoted = regexp.MustCompile(`(?:^|[^\\'])'[^'\n]*'`)
	doubleQuoted = regexp.MustCompile(`(?:^|[^\\"])"[^"\n]*"`)

	pyDefAny       = regexp.MustCompile(`\bdef \w+\(`)
	pyAnnotatedDef = regexp.MustCompile(`\bdef \w+\([^)]*:[^)]*\)`)
	pyReturnHint   = regexp.MustCompile(`-> \w`)

	googleDocstring = regexp.MustCompile(`(?m)^\s+(?:Args|Returns|Raises|Example):`)
	numpyDocstring  = regexp.MustCompile(`(?m)^[ \t]+(?:Parameters|Returns)[ \t]*\n[ \t]+-+`)
	sphinxDocstring = regexp.MustCompile(`(?m)^\s+:param\s`)

	absoluteImport = regexp.MustCompile(`(?m)^from [a-zA-Z]`)
	relativeImport = regexp.MustCompile(`(?m)^from \.`)

	pathlibCall   = regexp.MustCompile(`\bPath\(`)
	pathlibImport = regexp.MustCompile(`from pathlib`)
	osPathUsage   = regexp.MustCompile(`\bos\.path\.`)

	trailingComma   = regexp.MustCompile(`,\s*[\]\)\}]`)
	noTrailingComma = regexp.MustCompile(`[^,\s]\s*[\]\)\}]`)

	tryBlock        = regexp.MustCompile(`\btry:`)
	customException = regexp.MustCompile(`class \w+(?:Error|Exception)\(`)
)

// sampledFile pairs a file extension with its content.
type sampledFile struct {
	ext     string
	content string
}

// PatternAnalyzer detects coding conventions from a sample of source files.
type PatternAnalyzer struct{}

func NewPatternAnalyzer() *PatternAnalyzer { return &PatternAnalyzer{} }

func (a *PatternAnalyzer) Category() string { return domain.CategoryPatterns }

func (a *PatternAnalyzer) Analyze(structure *domain.ProjectStructure) domain.AnalysisResult {
	sample := sampleSourceFiles(structure)
	if len(sample) == 0 {
		return domain.AnalysisResult{
			Category:       domain.CategoryPatterns,
			Confidence:     0,
			SectionContent: "",
			Patterns:       &domain.PatternFindings{Note: "No source files found to analyze"},
		}
	}

	var contents []sampledFile
	for _, fi := range sample {
		if text, ok := readFile(structure.Root, fi.Path); ok {
			contents = append(contents, sampledFile{ext: fi.Extension, content: text})
		}
	}
	if len(contents) == 0 {
		return domain.AnalysisResult{
			Category:       domain.CategoryPatterns,
			Confidence:     0,
			SectionContent: "",
			Patterns:       &domain.PatternFindings{Note: "Could not read any source files"},
		}
	}

	var pyContents, jsTSContents []sampledFile
	for _, c := range contents {
		switch c.ext {
		case ".py", ".pyi":
			pyContents = append(pyContents, c)
		case ".js", ".jsx", ".ts", ".tsx":
			jsTSContents = append(jsTSContents, c)
		}
	}

	quoteTarget := pyContents
	if len(quoteTarget) == 0 {
		quoteTarget = jsTSContents
	}

	f := &domain.PatternFindings{
		Naming:         detectNaming(contents, structure.PrimaryLanguage),
		QuoteStyle:     detectQuoteStyle(quoteTarget),
		TypeHints:      detectTypeHints(pyContents),
		DocstringStyle: detectDocstringStyle(pyContents),
		ImportStyle:    detectImportStyle(pyContents),
		PathUsage:      detectPathUsage(pyContents),
		Semicolons:     detectSemicolons(jsTSContents),
		LineLengthP95:  detectLineLength(contents),
		TrailingCommas: detectTrailingCommas(contents),
		ErrorHandling:  detectErrorHandling(contents),
	}

	confidence := float64(len(contents)) / float64(maxSampleFiles)
	if confidence > 1.0 {
		confidence = 1.0
	}

	return domain.AnalysisResult{
		Category:       domain.CategoryPatterns,
		Confidence:     confidence,
		SectionContent: renderCodingStandards(f),
		Patterns:       f,
	}
}

// sampleSourceFiles takes up to 50 recognized-language files, primary
// language first.
func sampleSourceFiles(structure *domain.ProjectStructure) []domain.FileEntry {
	var source []domain.FileEntry
	for _, f := range structure.Files {
		if domain.LanguageForExtension[f.Extension] != "" {
			source = append(source, f)
		}
	}

	if structure.PrimaryLanguage == "" {
		if len(source) > maxSampleFiles {
			return source[:maxSampleFiles]
		}
		return source
	}

	primaryExts := make(map[string]bool)
	for _, ext := range domain.ExtensionsForLanguage(structure.PrimaryLanguage) {
		primaryExts[ext] = true
	}
	var primary, other []domain.FileEntry
	for _, f := range source {
		if primaryExts[f.Extension] {
			primary = append(primary, f)
		} else {
			other = append(other, f)
		}
	}
	sample := append(primary, other...)
	if len(sample) > maxSampleFiles {
		sample = sample[:maxSampleFiles]
	}
	return sample
}

// detectNaming counts snake_case vs camelCase definitions. When the primary
// language is known, only its files are counted; mixed codebases are
// under-reported on purpose for precision.
func detectNaming(contents []sampledFile, primaryLanguage string) string {
	target := contents
	switch primaryLanguage {
	case "Python", "Rust":
		if restricted := filterExts(contents, ".py", ".pyi", ".rs"); len(restricted) > 0 {
			target = restricted
		}
	case "TypeScript", "JavaScript":
		if restricted := filterExts(contents, ".js", ".jsx", ".ts", ".tsx"); len(restricted) > 0 {
			target = restricted
		}
	}

	snake, camel := 0, 0
	for _, c := range target {
		snake += len(pySnakeDef.FindAllString(c.content, -1))
		snake += len(rustSnakeFn.FindAllString(c.content, -1))
		camel += len(jsCamelFunc.FindAllString(c.content, -1))
		camel += len(jsCamelConst.FindAllString(c.content, -1))
	}
	switch {
	case snake > camel:
		return "snake_case"
	case camel > snake:
		return "camelCase"
	default:
		return "mixed"
	}
}

func filterExts(contents []sampledFile, exts ...string) []sampledFile {
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[e] = true
	}
	var out []sampledFile
	for _, c := range contents {
		if allowed[c.ext] {
			out = append(out, c)
		}
	}
	return out
}

// detectQuoteStyle calls a winner only on a 50% margin.
func detectQuoteStyle(contents []sampledFile) string {
	single, double := 0, 0
	for _, c := range contents {
		single += len(singleQuoted.FindAllString(c.content, -1))
		double += len(doubleQuoted.FindAllString(c.content, -1))
	}
	switch {
	case float64(double) > float64(single)*1.5:
		return "double"
	case float64(single) > float64(double)*1.5:
		return "single"
	default:
		return "mixed"
	}
}

func detectTypeHints(pyContents []sampledFile) string {
	if len(pyContents) == 0 {
		return "n/a"
	}
	hints, defs := 0, 0
	for _, c := range pyContents {
		defs += len(pyDefAny.FindAllString(c.content, -1))
		hints += len(pyAnnotatedDef.FindAllString(c.content, -1))
		hints += len(pyReturnHint.FindAllString(c.content, -1))
	}
	if defs == 0 {
		return "n/a"
	}
	ratio := float64(hints) / float64(defs)
	switch {
	case ratio > 0.5:
		return "present"
	case ratio > 0.1:
		return "partial"
	default:
		return "absent"
	}
}

func detectDocstringStyle(pyContents []sampledFile) string {
	if len(pyContents) == 0 {
		return "none"
	}
	google, numpy, sphinx := 0, 0, 0
	for _, c := range pyContents {
		google += len(googleDocstring.FindAllString(c.content, -1))
		numpy += len(numpyDocstring.FindAllString(c.content, -1))
		sphinx += len(sphinxDocstring.FindAllString(c.content, -1))
	}
	switch {
	case google > numpy && google > sphinx && google > 0:
		return "google"
	case numpy > google && numpy > sphinx && numpy > 0:
		return "numpy"
	case sphinx > google && sphinx > numpy && sphinx > 0:
		return "sphinx"
	default:
		return "none"
	}
}

// detectImportStyle requires a 2:1 margin to call absolute or relative.
func detectImportStyle(pyContents []sampledFile) string {
	if len(pyContents) == 0 {
		return "n/a"
	}
	absolute, relative := 0, 0
	for _, c := range pyContents {
		absolute += len(absoluteImport.FindAllString(c.content, -1))
		relative += len(relativeImport.FindAllString(c.content, -1))
	}
	switch {
	case absolute > relative*2:
		return "absolute"
	case relative > absolute*2:
		return "relative"
	default:
		return "mixed"
	}
}

func detectPathUsage(pyContents []sampledFile) string {
	if len(pyContents) == 0 {
		return "n/a"
	}
	pathlib, osPath := 0, 0
	for _, c := range pyContents {
		pathlib += len(pathlibCall.FindAllString(c.content, -1))
		pathlib += len(pathlibImport.FindAllString(c.content, -1))
		osPath += len(osPathUsage.FindAllString(c.content, -1))
	}
	switch {
	case pathlib > osPath:
		return "pathlib"
	case osPath > pathlib:
		return "os.path"
	default:
		return "mixed"
	}
}

// detectSemicolons classifies each non-comment, non-import line and requires
// a 2:1 margin either way.
func detectSemicolons(jsTSContents []sampledFile) string {
	if len(jsTSContents) == 0 {
		return "n/a"
	}
	withSemi, withoutSemi := 0, 0
	for _, c := range jsTSContents {
		for _, line := range strings.Split(c.content, "\n") {
			stripped := strings.TrimRight(line, " \t\r")
			if stripped == "" {
				continue
			}
			if hasAnyPrefix(stripped, "//", "/*", "*", "import", "export") {
				continue
			}
			switch {
			case strings.HasSuffix(stripped, ";"):
				withSemi++
			case hasAnySuffix(stripped, "{", "}", "(", ")", ","):
				// structural line, skip
			default:
				withoutSemi++
			}
		}
	}
	switch {
	case withSemi > withoutSemi*2:
		return "required"
	case withoutSemi > withSemi*2:
		return "omitted"
	default:
		return "mixed"
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, p := range suffixes {
		if strings.HasSuffix(s, p) {
			return true
		}
	}
	return false
}

// detectLineLength returns the 95th percentile line length across the sample.
func detectLineLength(contents []sampledFile) int {
	var lengths []int
	for _, c := range contents {
		for _, line := range strings.Split(strings.TrimSuffix(c.content, "\n"), "\n") {
			lengths = append(lengths, len(line))
		}
	}
	if len(lengths) == 0 {
		return 0
	}
	sort.Ints(lengths)
	idx := int(float64(len(lengths)) * 0.95)
	if idx > len(lengths)-1 {
		idx = len(lengths) - 1
	}
	return lengths[idx]
}

func detectTrailingCommas(contents []sampledFile) string {
	trailing, noTrailing := 0, 0
	for _, c := range contents {
		trailing += len(trailingComma.FindAllString(c.content, -1))
		noTrailing += len(noTrailingComma.FindAllString(c.content, -1))
	}
	switch {
	case trailing > noTrailing:
		return "yes"
	case noTrailing > trailing:
		return "no"
	default:
		return "mixed"
	}
}

func detectErrorHandling(contents []sampledFile) domain.ErrorHandlingFindings {
	var f domain.ErrorHandlingFindings
	for _, c := range contents {
		f.TryExceptCount += len(tryBlock.FindAllString(c.content, -1))
		if customException.MatchString(c.content) {
			f.CustomExceptions = true
		}
	}
	return f
}

func renderCodingStandards(f *domain.PatternFindings) string {
	var lines []string
	lines = append(lines, "## Coding Standards", "")

	lines = append(lines, fmt.Sprintf("- **Naming**: %s", f.Naming))
	if f.QuoteStyle != "mixed" {
		lines = append(lines, fmt.Sprintf("- **Quote Style**: %s quotes", f.QuoteStyle))
	}
	if f.TypeHints != "" && f.TypeHints != "n/a" {
		lines = append(lines, fmt.Sprintf("- **Type Hints**: %s", f.TypeHints))
	}
	if f.DocstringStyle != "" && f.DocstringStyle != "none" {
		lines = append(lines, fmt.Sprintf("- **Docstrings**: %s style", f.DocstringStyle))
	}
	if f.ImportStyle != "" && f.ImportStyle != "n/a" {
		lines = append(lines, fmt.Sprintf("- **Imports**: %s", f.ImportStyle))
	}
	if f.PathUsage != "" && f.PathUsage != "n/a" {
		lines = append(lines, fmt.Sprintf("- **Path Handling**: %s", f.PathUsage))
	}
	if f.Semicolons != "" && f.Semicolons != "n/a" {
		lines = append(lines, fmt.Sprintf("- **Semicolons**: %s", f.Semicolons))
	}
	if f.LineLengthP95 > 0 {
		lines = append(lines, fmt.Sprintf("- **Line Length (p95)**: %d characters", f.LineLengthP95))
	}
	if f.ErrorHandling.CustomExceptions {
		lines = append(lines, "- **Error Handling**: Custom exception classes present")
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
