package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// colorEnabled gates styling: piped output gets plain text.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func styled(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

func scoreColor(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return lipgloss.NewStyle().Bold(true).Foreground(success)
	case score >= 50:
		return lipgloss.NewStyle().Bold(true).Foreground(warning)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(danger)
	}
}

// RenderAuditReport renders the full audit report for the terminal.
func RenderAuditReport(report *domain.AuditReport) string {
	var b strings.Builder

	title := styled(headerStyle, "claudemd-forge")
	subtitle := styled(dimStyle, "Document Audit")
	scoreLine := styled(scoreColor(report.Score), fmt.Sprintf("%d / 100", report.Score))
	box := title + "\n" + subtitle + "\n\n" + scoreLine
	if colorEnabled {
		b.WriteString(boxStyle.Render(box))
	} else {
		b.WriteString(box)
	}
	b.WriteString("\n\n")

	if len(report.Findings) > 0 {
		errors, warnings, infos := countSeverities(report.Findings)
		b.WriteString("  " + styled(titleStyle, "Findings") + "  ")
		if errors > 0 {
			b.WriteString(styled(errorTagStyle, fmt.Sprintf("%d errors", errors)) + "  ")
		}
		if warnings > 0 {
			b.WriteString(styled(warnTagStyle, fmt.Sprintf("%d warnings", warnings)) + "  ")
		}
		if infos > 0 {
			b.WriteString(styled(infoTagStyle, fmt.Sprintf("%d info", infos)))
		}
		b.WriteString("\n\n")

		for _, f := range report.Findings {
			renderFinding(&b, f)
		}
	} else {
		b.WriteString("  " + styled(passStyle, "No findings.") + "\n")
	}

	if len(report.MissingSections) > 0 {
		b.WriteString("\n  " + styled(titleStyle, "Missing Sections") + "\n")
		for _, name := range report.MissingSections {
			b.WriteString("    " + styled(dimStyle, "## "+name) + "\n")
		}
	}

	b.WriteString("\n  " + separator() + "\n\n")
	b.WriteString("  " + styled(titleStyle, "Recommendations") + "\n")
	for _, rec := range report.Recommendations {
		b.WriteString("    • " + rec + "\n")
	}

	return b.String()
}

func renderFinding(b *strings.Builder, f domain.AuditFinding) {
	var tag string
	switch f.Severity {
	case domain.SeverityError:
		tag = styled(errorTagStyle, "ERROR")
	case domain.SeverityWarning:
		tag = styled(warnTagStyle, "WARN ")
	default:
		tag = styled(infoTagStyle, "INFO ")
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n", tag, styled(dimStyle, "["+f.Category+"]"), f.Message))
	if f.Suggestion != "" {
		b.WriteString("        " + styled(faintStyle, "→ "+f.Suggestion) + "\n")
	}
}

func countSeverities(findings []domain.AuditFinding) (errors, warnings, infos int) {
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityError:
			errors++
		case domain.SeverityWarning:
			warnings++
		default:
			infos++
		}
	}
	return errors, warnings, infos
}

func separator() string {
	if !colorEnabled {
		return strings.Repeat("─", 64)
	}
	return separatorLine
}
