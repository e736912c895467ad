package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

var (
	classDecl      = regexp.MustCompile(`\bclass\s+(\w+)`)
	rustTypeDecl   = regexp.MustCompile(`\b(?:struct|enum)\s+(\w+)`)
	acronymPattern = regexp.MustCompile(`\b([A-Z]{2,})\b`)
	properNoun     = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\b`)
	decoratorRoute = regexp.MustCompile(`@(?:app|router)\.\s*(?:get|post|put|patch|delete)\s*\(\s*["']([^"']+)`)
	callRoute      = regexp.MustCompile(`(?:app|router)\.\s*(?:get|post|put|patch|delete)\s*\(\s*["']([^"']+)`)
	pyEnumValue    = regexp.MustCompile(`(\w+)\s*=\s*(?:auto\(\)|['"])`)
	tsEnumDecl     = regexp.MustCompile(`\benum\s+(\w+)`)
	rustEnumOpen   = regexp.MustCompile(`^\s*(?:pub\s+)?enum\s+\w+`)
	enumVariant    = regexp.MustCompile(`^\s+(\w+)`)
	hashKeyword    = regexp.MustCompile(`#\s*(TODO|FIXME|HACK|NOTE|XXX)[\s:]+(.+)`)
	slashKeyword   = regexp.MustCompile(`//\s*(TODO|FIXME|HACK|NOTE|XXX)[\s:]+(.+)`)
)

// acronymStoplist excludes generic acronyms from README term extraction.
var acronymStoplist = map[string]bool{
	"README": true, "TODO": true, "NOTE": true,
	"API": true, "URL": true, "HTTP": true, "CLI": true,
}

// DomainAnalyzer extracts domain-specific terminology from code and docs.
type DomainAnalyzer struct{}

func NewDomainAnalyzer() *DomainAnalyzer { return &DomainAnalyzer{} }

func (a *DomainAnalyzer) Category() string { return domain.CategoryDomain }

func (a *DomainAnalyzer) Analyze(structure *domain.ProjectStructure) domain.AnalysisResult {
	f := &domain.DomainFindings{
		ClassNames:      extractClassNames(structure),
		ReadmeTerms:     extractReadmeTerms(structure.Root),
		APIRoutes:       extractAPIRoutes(structure),
		EnumValues:      extractEnumValues(structure),
		CommentKeywords: extractCommentKeywords(structure),
	}
	f.Vocabulary = deriveVocabulary(f.ClassNames)

	itemCount := len(f.ClassNames) + len(f.ReadmeTerms) + len(f.APIRoutes) +
		len(f.EnumValues) + len(f.CommentKeywords) + len(f.Vocabulary)
	confidence := float64(itemCount) / 20.0
	if confidence > 1.0 {
		confidence = 1.0
	}

	return domain.AnalysisResult{
		Category:       domain.CategoryDomain,
		Confidence:     confidence,
		SectionContent: renderDomainContext(f),
		Domain:         f,
	}
}

func extractClassNames(structure *domain.ProjectStructure) []string {
	classes := make(map[string]bool)
	for _, fi := range structure.Files {
		switch fi.Extension {
		case ".py", ".ts", ".tsx", ".js", ".jsx", ".rs":
		default:
			continue
		}
		text, ok := readFile(structure.Root, fi.Path)
		if !ok {
			continue
		}

		for _, m := range classDecl.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if !strings.HasPrefix(name, "_") && len(name) > 2 {
				classes[name] = true
			}
		}
		for _, m := range rustTypeDecl.FindAllStringSubmatch(text, -1) {
			if len(m[1]) > 2 {
				classes[m[1]] = true
			}
		}
	}
	return sortedCapped(classes, 30)
}

// extractReadmeTerms reads the first README found, pulling acronyms and
// capitalized multi-word phrases.
func extractReadmeTerms(root string) []string {
	terms := make(map[string]bool)
	for _, name := range []string{"README.md", "README.rst", "README.txt", "README"} {
		text, ok := readFile(root, name)
		if !ok {
			continue
		}
		for _, m := range acronymPattern.FindAllStringSubmatch(text, -1) {
			if !acronymStoplist[m[1]] {
				terms[m[1]] = true
			}
		}
		for _, m := range properNoun.FindAllStringSubmatch(text, -1) {
			terms[m[1]] = true
		}
		break
	}
	return sortedCapped(terms, 20)
}

func extractAPIRoutes(structure *domain.ProjectStructure) []string {
	routes := make(map[string]bool)
	for _, fi := range structure.Files {
		switch fi.Extension {
		case ".py", ".ts", ".js":
		default:
			continue
		}
		text, ok := readFile(structure.Root, fi.Path)
		if !ok {
			continue
		}
		for _, m := range decoratorRoute.FindAllStringSubmatch(text, -1) {
			routes[m[1]] = true
		}
		for _, m := range callRoute.FindAllStringSubmatch(text, -1) {
			routes[m[1]] = true
		}
	}
	return sortedCapped(routes, 30)
}

func extractEnumValues(structure *domain.ProjectStructure) []string {
	enums := make(map[string]bool)
	for _, fi := range structure.Files {
		switch fi.Extension {
		case ".py", ".ts", ".rs":
		default:
			continue
		}
		text, ok := readFile(structure.Root, fi.Path)
		if !ok {
			continue
		}

		for _, m := range pyEnumValue.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if len(name) > 2 && name == strings.ToUpper(name) && name != strings.ToLower(name) {
				enums[name] = true
			}
		}
		for _, m := range tsEnumDecl.FindAllStringSubmatch(text, -1) {
			enums[m[1]] = true
		}

		// Rust variant scan: a line flag toggled by the enum opener and a
		// closing brace. No brace-depth tracking; nested braces misparse.
		inEnum := false
		for _, line := range strings.Split(text, "\n") {
			if rustEnumOpen.MatchString(line) {
				inEnum = true
				continue
			}
			if inEnum {
				if m := enumVariant.FindStringSubmatch(line); m != nil {
					first := m[1][0]
					if first >= 'A' && first <= 'Z' {
						enums[m[1]] = true
					}
				}
				if strings.Contains(line, "}") {
					inEnum = false
				}
			}
		}
	}
	return sortedCapped(enums, 20)
}

func extractCommentKeywords(structure *domain.ProjectStructure) []domain.CommentKeyword {
	var keywords []domain.CommentKeyword
	for _, fi := range structure.Files {
		if domain.LanguageForExtension[fi.Extension] == "" {
			continue
		}
		text, ok := readFile(structure.Root, fi.Path)
		if !ok {
			continue
		}
		for _, re := range []*regexp.Regexp{hashKeyword, slashKeyword} {
			for _, m := range re.FindAllStringSubmatch(text, -1) {
				txt := strings.TrimSpace(m[2])
				if len(txt) > 100 {
					txt = txt[:100]
				}
				keywords = append(keywords, domain.CommentKeyword{
					Type: m[1],
					Text: txt,
					File: fi.Path,
				})
			}
		}
		if len(keywords) >= 30 {
			return keywords[:30]
		}
	}
	return keywords
}

// deriveVocabulary splits CamelCase class names into their constituent
// words, keeping distinct lowercased words of length > 2.
func deriveVocabulary(classNames []string) []string {
	words := make(map[string]bool)
	for _, name := range classNames {
		for _, word := range camelcase.Split(name) {
			lower := strings.ToLower(word)
			if len(lower) > 2 {
				words[lower] = true
			}
		}
	}
	return sortedCapped(words, 20)
}

func sortedCapped(set map[string]bool, limit int) []string {
	out := make([]string, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Strings(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func renderDomainContext(f *domain.DomainFindings) string {
	var lines []string
	lines = append(lines, "## Domain Context", "")

	if len(f.ClassNames) > 0 {
		lines = append(lines, "### Key Models/Classes")
		for _, name := range capped(f.ClassNames, 15) {
			lines = append(lines, fmt.Sprintf("- `%s`", name))
		}
		lines = append(lines, "")
	}

	if len(f.Vocabulary) > 0 {
		lines = append(lines, "### Core Vocabulary", strings.Join(capped(f.Vocabulary, 20), ", "), "")
	}

	if len(f.ReadmeTerms) > 0 {
		lines = append(lines, "### Domain Terms")
		for _, term := range capped(f.ReadmeTerms, 10) {
			lines = append(lines, fmt.Sprintf("- %s", term))
		}
		lines = append(lines, "")
	}

	if len(f.APIRoutes) > 0 {
		lines = append(lines, "### API Endpoints")
		for _, route := range capped(f.APIRoutes, 15) {
			lines = append(lines, fmt.Sprintf("- `%s`", route))
		}
		lines = append(lines, "")
	}

	if len(f.EnumValues) > 0 {
		lines = append(lines, "### Enums/Constants")
		for _, val := range capped(f.EnumValues, 10) {
			lines = append(lines, fmt.Sprintf("- `%s`", val))
		}
		lines = append(lines, "")
	}

	if len(f.CommentKeywords) > 0 {
		lines = append(lines, "### Outstanding Items")
		kws := f.CommentKeywords
		if len(kws) > 10 {
			kws = kws[:10]
		}
		for _, kw := range kws {
			lines = append(lines, fmt.Sprintf("- **%s**: %s (`%s`)", kw.Type, kw.Text, kw.File))
		}
		lines = append(lines, "")
	}

	if len(lines) <= 2 {
		return ""
	}
	return strings.Join(lines, "\n")
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
