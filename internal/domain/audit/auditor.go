package audit

import (
	"fmt"
	"math"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// Audit runs every checker over the document and aggregates the result into
// a scored report. Checkers are pure; findings keep checker insertion order
// but scoring is order-independent.
func Audit(content string, structure *domain.ProjectStructure, analyses []domain.AnalysisResult) domain.AuditReport {
	var findings []domain.AuditFinding
	findings = append(findings, CheckCoverage(content)...)
	findings = append(findings, CheckAccuracy(content, structure, analyses)...)
	findings = append(findings, CheckAntiPatterns(content)...)
	findings = append(findings, CheckSpecificity(content)...)
	findings = append(findings, CheckFreshness(content, structure)...)

	present := 0
	var missing []string
	for _, sec := range RequiredSections {
		if strings.Contains(content, "## "+sec.Name) {
			present++
		} else {
			missing = append(missing, sec.Name)
		}
	}

	return domain.AuditReport{
		Score:           calculateScore(findings, present),
		Findings:        findings,
		MissingSections: missing,
		Recommendations: recommendations(findings, missing),
	}
}

// calculateScore applies the fixed penalty schedule plus a coverage bonus,
// clamped to [0,100].
func calculateScore(findings []domain.AuditFinding, present int) int {
	score := 100
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityError:
			score -= 15
		case domain.SeverityWarning:
			score -= 5
		case domain.SeverityInfo:
			score -= 1
		}
	}

	bonus := int(math.Round(float64(present) / float64(len(RequiredSections)) * 20))
	score += bonus

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// recommendations emits at most one entry per priority tier, highest first,
// with a positive fallback when nothing applies.
func recommendations(findings []domain.AuditFinding, missing []string) []string {
	var recs []string

	severityFor := make(map[string]string, len(RequiredSections))
	for _, sec := range RequiredSections {
		severityFor[sec.Name] = sec.Severity
	}
	var critical []string
	for _, name := range missing {
		if severityFor[name] == domain.SeverityError {
			critical = append(critical, name)
		}
	}
	if len(critical) > 0 {
		recs = append(recs, fmt.Sprintf("Add missing critical sections: %s", strings.Join(critical, ", ")))
	}

	if hasFinding(findings, domain.AuditAccuracy, domain.SeverityError) {
		recs = append(recs, "Fix accuracy issues — the document doesn't match the actual codebase")
	}
	if hasFinding(findings, domain.AuditAntiPattern, "") {
		recs = append(recs, "Clean up document anti-patterns (TODOs, conversation fragments, etc.)")
	}
	if hasFinding(findings, domain.AuditSpecificity, "") {
		recs = append(recs, "Replace vague instructions with specific, actionable guidance")
	}

	if len(recs) == 0 {
		recs = append(recs, "The document is in good shape!")
	}
	return recs
}

// hasFinding reports whether any finding matches category and, when severity
// is non-empty, that severity.
func hasFinding(findings []domain.AuditFinding, category, severity string) bool {
	for _, f := range findings {
		if f.Category == category && (severity == "" || f.Severity == severity) {
			return true
		}
	}
	return false
}
