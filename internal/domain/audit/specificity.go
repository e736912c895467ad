package audit

import (
	"fmt"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// vaguePhrases each trigger a separate warning when present.
var vaguePhrases = []string{
	"follow best practices",
	"use standard conventions",
	"write clean code",
	"keep it simple",
	"be consistent",
	"use appropriate",
	"handle errors properly",
}

// CheckSpecificity flags vague guidance and sections that promise examples
// or commands but carry none.
func CheckSpecificity(content string) []domain.AuditFinding {
	var findings []domain.AuditFinding
	lower := strings.ToLower(content)

	for _, phrase := range vaguePhrases {
		if strings.Contains(lower, phrase) {
			findings = append(findings, domain.AuditFinding{
				Severity:   domain.SeverityWarning,
				Category:   domain.AuditSpecificity,
				Message:    fmt.Sprintf("Contains vague phrase: %q", phrase),
				Suggestion: "Replace with specific, actionable instructions",
			})
		}
	}

	if strings.Contains(content, "## Anti-Patterns") || strings.Contains(content, "## Anti-patterns") {
		section := sectionBody(content, lower, "## anti-pattern")
		if section != "" && !strings.Contains(section, "`") {
			findings = append(findings, domain.AuditFinding{
				Severity:   domain.SeverityInfo,
				Category:   domain.AuditSpecificity,
				Message:    "Anti-patterns section lacks code examples",
				Suggestion: "Add inline code or code blocks showing what NOT to do",
			})
		}
	}

	if strings.Contains(content, "## Common Commands") || strings.Contains(content, "## Commands") {
		marker := "## common command"
		if !strings.Contains(lower, marker) {
			marker = "## command"
		}
		section := sectionBody(content, lower, marker)
		if section != "" && !strings.Contains(section, "```") {
			findings = append(findings, domain.AuditFinding{
				Severity:   domain.SeverityInfo,
				Category:   domain.AuditSpecificity,
				Message:    "Commands section lacks actual command strings",
				Suggestion: "Add code blocks with runnable commands",
			})
		}
	}

	return findings
}

// sectionBody returns the text from the heading that matches marker (matched
// against the lowercased document) up to the next "## " heading or EOF.
func sectionBody(content, lower, marker string) string {
	start := strings.Index(lower, marker)
	if start < 0 {
		return ""
	}
	rest := content[start:]
	if next := strings.Index(rest[1:], "\n## "); next >= 0 {
		return rest[:next+1]
	}
	return rest
}
