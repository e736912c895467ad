package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

var (
	todoPattern        = regexp.MustCompile(`\bTODO\b|\bFIXME\b`)
	firstPersonPattern = regexp.MustCompile(`\b(I want|We use|I need|Our team|We have)\b`)
)

// conversationMarkers are phrases that betray copy-pasted chat transcripts.
var conversationMarkers = []string{
	"can you",
	"please help",
	"i want you to",
	"let me know",
	"sure, i",
	"here's what",
	"i'll help",
}

// CheckAntiPatterns flags structural problems in the document itself:
// length extremes, stale TODOs, conversational fragments, first-person
// phrasing, and unclosed code fences.
func CheckAntiPatterns(content string) []domain.AuditFinding {
	var findings []domain.AuditFinding
	lines := strings.Split(content, "\n")
	lineCount := len(lines)
	if strings.HasSuffix(content, "\n") {
		lineCount--
	}

	if lineCount > 500 {
		findings = append(findings, domain.AuditFinding{
			Severity:   domain.SeverityWarning,
			Category:   domain.AuditAntiPattern,
			Message:    fmt.Sprintf("Document is %d lines — too long, agents lose context", lineCount),
			Suggestion: "Trim to under 300 lines, focus on essentials",
		})
	}

	if lineCount < 20 {
		findings = append(findings, domain.AuditFinding{
			Severity:   domain.SeverityWarning,
			Category:   domain.AuditAntiPattern,
			Message:    fmt.Sprintf("Document is only %d lines — too short for useful context", lineCount),
			Suggestion: "Add more sections: overview, commands, coding standards",
		})
	}

	if todoPattern.MatchString(content) {
		findings = append(findings, domain.AuditFinding{
			Severity:   domain.SeverityWarning,
			Category:   domain.AuditAntiPattern,
			Message:    "Contains TODO/FIXME items (stale planning artifacts)",
			Suggestion: "Resolve or remove TODO items from the document",
		})
	}

	lower := strings.ToLower(content)
	for _, marker := range conversationMarkers {
		if strings.Contains(lower, marker) {
			findings = append(findings, domain.AuditFinding{
				Severity:   domain.SeverityWarning,
				Category:   domain.AuditAntiPattern,
				Message:    "Contains conversation fragments (copy-paste from AI chat)",
				Suggestion: "Use declarative style, not conversational prompts",
			})
			break
		}
	}

	if firstPersonPattern.MatchString(content) {
		findings = append(findings, domain.AuditFinding{
			Severity:   domain.SeverityInfo,
			Category:   domain.AuditAntiPattern,
			Message:    "Uses first-person language instead of declarative style",
			Suggestion: `Use declarative: "Use pytest" instead of "We use pytest"`,
		})
	}

	if strings.Count(content, "```")%2 != 0 {
		findings = append(findings, domain.AuditFinding{
			Severity:   domain.SeverityInfo,
			Category:   domain.AuditAntiPattern,
			Message:    "Contains unclosed code block (odd number of ``` markers)",
			Suggestion: "Close all code blocks with matching ```",
		})
	}

	return findings
}
