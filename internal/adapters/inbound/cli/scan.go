package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/tui"
	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

func newScanCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a project and show what forge detected",
		Long:  "Walk the project tree, run all analyzers, and print the detected languages, frameworks, commands, conventions, and domain terms.",
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

			structure, analyses, err := newPipeline().Run(absPath)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if jsonOutput {
				return renderScanJSON(cmd, structure, analyses)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScanSummary(structure))
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAnalyses(analyses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output scan results as JSON")

	return cmd
}

func renderScanJSON(cmd *cobra.Command, structure *domain.ProjectStructure, analyses []domain.AnalysisResult) error {
	out := struct {
		Structure *domain.ProjectStructure `json:"structure"`
		Analyses  []domain.AnalysisResult  `json:"analyses"`
	}{structure, analyses}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
