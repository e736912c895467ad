package cli

import (
	"github.com/spf13/cobra"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/analyzer"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/config"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/scanner"
	"github.com/AreteDriver/claudemd-forge/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "forge",
		Short:         "Generate and audit CLAUDE.md files from codebase analysis",
		Long:          "Forge scans a codebase, extracts its conventions and commands, and generates or audits a CLAUDE.md context document grounded in what the code actually does.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newPipeline wires the standard scanner, config loader, and analyzer set.
func newPipeline() *application.Pipeline {
	return application.NewPipeline(
		scanner.New(),
		config.New(),
		analyzer.NewLanguageAnalyzer(),
		analyzer.NewPatternAnalyzer(),
		analyzer.NewCommandAnalyzer(),
		analyzer.NewDomainAnalyzer(),
	)
}
