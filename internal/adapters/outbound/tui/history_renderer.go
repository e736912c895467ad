package tui

import (
	"fmt"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// RenderHistory renders recorded audit scores, oldest first, with the
// delta against the previous entry.
func RenderHistory(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return "  " + styled(dimStyle, "No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + styled(titleStyle, "Audit History") + "\n")
	b.WriteString("  " + styled(faintStyle, strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s",
			styled(dimStyle, day),
			styled(faintStyle, hash),
			styled(scoreColor(e.Score), fmt.Sprintf("%d/100", e.Score)),
		)

		if i > 0 {
			diff := e.Score - entries[i-1].Score
			if diff > 0 {
				line += "  " + styled(passStyle, fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + styled(errorTagStyle, fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}
