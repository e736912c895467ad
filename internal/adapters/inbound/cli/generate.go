package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/gitinfo"
	"github.com/AreteDriver/claudemd-forge/internal/application"
	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

func newGenerateCmd() *cobra.Command {
	var (
		output string
		dryRun bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate a CLAUDE.md from codebase analysis",
		Long:  "Scan the project, run all analyzers, and compose a CLAUDE.md describing the tech stack, commands, architecture, and conventions found in the code.",
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

			svc := application.NewGenerateService(newPipeline(), gitinfo.New())
			content, _, _, err := svc.Generate(absPath)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			target := output
			if target == "" {
				target = filepath.Join(absPath, "CLAUDE.md")
			}

			if !force {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", target)
				}
			}

			if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", target, err)
			}

			score := domain.EstimateQualityScore(content)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (estimated quality %d/100)\n", target, score)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to CLAUDE.md in the project root)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the document instead of writing it")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing document")

	return cmd
}
