package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// RenderScanSummary renders a compact structure overview.
func RenderScanSummary(structure *domain.ProjectStructure) string {
	var b strings.Builder

	b.WriteString("  " + styled(titleStyle, structure.Root) + "\n\n")
	b.WriteString(fmt.Sprintf("  Files: %d    Lines: %d    Directories: %d\n",
		structure.TotalFiles, structure.TotalLines, len(structure.Directories)))

	if structure.PrimaryLanguage != "" {
		b.WriteString("  Primary language: " + styled(passStyle, structure.PrimaryLanguage) + "\n")
	}

	if len(structure.Languages) > 0 {
		b.WriteString("\n  " + styled(titleStyle, "Languages") + "\n")
		for _, name := range langsByCount(structure.Languages) {
			b.WriteString(fmt.Sprintf("    %-14s %d\n", name, structure.Languages[name]))
		}
	}

	return b.String()
}

// RenderAnalyses renders each analyzer's confidence and section preview.
func RenderAnalyses(analyses []domain.AnalysisResult) string {
	var b strings.Builder
	for _, a := range analyses {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styled(titleStyle, a.Category),
			styled(dimStyle, fmt.Sprintf("confidence %.2f", a.Confidence))))
		if a.SectionContent == "" {
			b.WriteString("    " + styled(faintStyle, "no evidence found") + "\n")
		}
	}
	return b.String()
}

func langsByCount(languages map[string]int) []string {
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
