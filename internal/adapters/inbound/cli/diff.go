package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/docparse"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/gitinfo"
	"github.com/AreteDriver/claudemd-forge/internal/application"
)

func newDiffCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "diff [path]",
		Short: "Compare an existing CLAUDE.md against a fresh generation",
		Long:  "Generate a document from the current codebase and report which sections of the existing document are missing, extra, or changed relative to it.",
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

			documentPath := file
			if !filepath.IsAbs(documentPath) {
				documentPath = filepath.Join(absPath, documentPath)
			}

			existing, err := os.ReadFile(documentPath)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			svc := application.NewGenerateService(newPipeline(), gitinfo.New())
			generated, _, _, err := svc.Generate(absPath)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			parser := docparse.New()
			have := parser.SectionMap(string(existing))
			want := parser.SectionMap(generated)

			missing, extra, changed := diffSections(have, want)

			out := cmd.OutOrStdout()
			if len(missing) == 0 && len(extra) == 0 && len(changed) == 0 {
				fmt.Fprintln(out, "Document matches a fresh generation.")
				return nil
			}

			for _, h := range missing {
				fmt.Fprintf(out, "missing  ## %s\n", h)
			}
			for _, h := range extra {
				fmt.Fprintf(out, "extra    ## %s\n", h)
			}
			for _, h := range changed {
				fmt.Fprintf(out, "changed  ## %s\n", h)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "CLAUDE.md", "Document to compare, relative to the project root")

	return cmd
}

// diffSections compares the existing document's sections against the
// generated ones. Sections only in the existing document are extra, not
// errors: hand-written sections are expected to survive regeneration.
func diffSections(have, want map[string]string) (missing, extra, changed []string) {
	for heading, wantBody := range want {
		haveBody, ok := have[heading]
		switch {
		case !ok:
			missing = append(missing, heading)
		case haveBody != wantBody:
			changed = append(changed, heading)
		}
	}
	for heading := range have {
		if _, ok := want[heading]; !ok {
			extra = append(extra, heading)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	sort.Strings(changed)
	return missing, extra, changed
}
