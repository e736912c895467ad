package audit

import (
	"fmt"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// commonFrameworks is the fixed list cross-referenced against the language
// analyzer's detections.
var commonFrameworks = []string{
	"react",
	"vue",
	"angular",
	"django",
	"flask",
	"fastapi",
	"express",
	"nextjs",
	"svelte",
	"spring",
}

// CheckAccuracy compares document claims against the scanned ground truth.
func CheckAccuracy(content string, structure *domain.ProjectStructure, analyses []domain.AnalysisResult) []domain.AuditFinding {
	var findings []domain.AuditFinding
	lower := strings.ToLower(content)

	if strings.Contains(lower, "greenfield") && structure != nil && structure.TotalFiles > 50 {
		findings = append(findings, domain.AuditFinding{
			Severity:   domain.SeverityError,
			Category:   domain.AuditAccuracy,
			Message:    fmt.Sprintf("Says \"greenfield\" but project has %d source files", structure.TotalFiles),
			Suggestion: "Update the project phase description",
		})
	}

	for _, analysis := range analyses {
		if analysis.Category != domain.CategoryLanguage || analysis.Language == nil {
			continue
		}
		detected := make(map[string]bool, len(analysis.Language.Frameworks))
		for _, fw := range analysis.Language.Frameworks {
			detected[fw] = true
		}
		for _, fw := range commonFrameworks {
			if strings.Contains(lower, fw) && !detected[fw] {
				findings = append(findings, domain.AuditFinding{
					Severity:   domain.SeverityError,
					Category:   domain.AuditAccuracy,
					Message:    fmt.Sprintf("Lists %q but it was not detected in dependencies", fw),
					Suggestion: fmt.Sprintf("Remove %s reference or add it to dependencies", fw),
				})
			}
		}
	}

	return findings
}
