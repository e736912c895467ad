package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/gitinfo"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/history"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/tui"
	"github.com/AreteDriver/claudemd-forge/internal/application"
	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		file        string
		jsonOutput  bool
		ciMode      bool
		minScore    int
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Audit an existing CLAUDE.md against the codebase",
		Long:  "Scan the project and check the document for missing sections, stale claims, anti-patterns, vague language, and dead references.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			hist := history.New()

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			documentPath := file
			if !filepath.IsAbs(documentPath) {
				documentPath = filepath.Join(absPath, documentPath)
			}

			svc := application.NewAuditService(newPipeline(), gitinfo.New(), hist)
			report, err := svc.Audit(absPath, documentPath)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			if jsonOutput {
				if err := renderAuditJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAuditReport(report))
			}

			if ciMode && report.Score < minScore {
				return fmt.Errorf("audit score %d is below minimum %d", report.Score, minScore)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "CLAUDE.md", "Document to audit, relative to the project root")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show audit score history")

	return cmd
}

func renderAuditJSON(cmd *cobra.Command, report *domain.AuditReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
