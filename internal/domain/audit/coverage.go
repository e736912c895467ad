package audit

import (
	"fmt"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// RequiredSection pairs an expected document heading with the severity of
// its absence.
type RequiredSection struct {
	Name     string
	Severity string
}

// RequiredSections is the fixed table of sections a context document is
// expected to carry, in recommendation order.
var RequiredSections = []RequiredSection{
	{"Project Overview", domain.SeverityError},
	{"Common Commands", domain.SeverityError},
	{"Architecture", domain.SeverityError},
	{"Coding Standards", domain.SeverityWarning},
	{"Anti-Patterns", domain.SeverityWarning},
	{"Dependencies", domain.SeverityInfo},
	{"Git Conventions", domain.SeverityInfo},
	{"Domain Context", domain.SeverityInfo},
}

// CheckCoverage reports a finding per required section that appears neither
// as a literal "## Name" heading nor case-insensitively anywhere in the text.
func CheckCoverage(content string) []domain.AuditFinding {
	var findings []domain.AuditFinding
	lower := strings.ToLower(content)
	for _, sec := range RequiredSections {
		if strings.Contains(content, "## "+sec.Name) {
			continue
		}
		if strings.Contains(lower, strings.ToLower(sec.Name)) {
			continue
		}
		findings = append(findings, domain.AuditFinding{
			Severity:   sec.Severity,
			Category:   domain.AuditCoverage,
			Message:    fmt.Sprintf("Missing %q section", sec.Name),
			Suggestion: fmt.Sprintf("Add a ## %s section with relevant content", sec.Name),
		})
	}
	return findings
}
