package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

var pathRefPattern = regexp.MustCompile("`([a-zA-Z_./][a-zA-Z0-9_./\\-]+)`")

// commandPrefixes are backtick tokens that are commands, not paths.
var commandPrefixes = []string{"pip", "npm", "cargo", "make", "git"}

// CheckFreshness flags backtick-quoted path references that no longer exist
// in the scanned project.
func CheckFreshness(content string, structure *domain.ProjectStructure) []domain.AuditFinding {
	var findings []domain.AuditFinding
	if structure == nil {
		return findings
	}

	existing := make(map[string]bool, len(structure.Files)+len(structure.Directories))
	for _, f := range structure.Files {
		existing[f.Path] = true
	}
	for _, d := range structure.Directories {
		existing[d] = true
	}

	for _, match := range pathRefPattern.FindAllStringSubmatch(content, -1) {
		ref := match[1]
		if strings.Contains(ref, " ") || hasCommandPrefix(ref) {
			continue
		}
		if !strings.Contains(ref, "/") || existing[ref] {
			continue
		}
		last := ref[strings.LastIndex(ref, "/")+1:]
		if strings.Contains(last, ".") || strings.HasSuffix(ref, "/") {
			findings = append(findings, domain.AuditFinding{
				Severity:   domain.SeverityWarning,
				Category:   domain.AuditFreshness,
				Message:    fmt.Sprintf("References path `%s` which doesn't exist in the project", ref),
				Suggestion: "Update or remove stale file references",
			})
		}
	}

	return findings
}

func hasCommandPrefix(ref string) bool {
	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}
