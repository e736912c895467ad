package application

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// Pipeline runs the shared scan → analyze front half of every use case.
type Pipeline struct {
	scanner      domain.ProjectScanner
	analyzers    []domain.Analyzer
	configLoader domain.ConfigLoader
}

func NewPipeline(scanner domain.ProjectScanner, configLoader domain.ConfigLoader, analyzers ...domain.Analyzer) *Pipeline {
	return &Pipeline{
		scanner:      scanner,
		analyzers:    analyzers,
		configLoader: configLoader,
	}
}

// Run scans the project and executes every analyzer. The analyzers are
// independent and read-only over the structure, so they run concurrently;
// results keep registration order, not completion order.
func (p *Pipeline) Run(projectPath string) (*domain.ProjectStructure, []domain.AnalysisResult, error) {
	cfg, err := p.configLoader.Load(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	structure, err := p.scanner.Scan(projectPath, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning project: %w", err)
	}

	results := make([]domain.AnalysisResult, len(p.analyzers))
	var g errgroup.Group
	for i, a := range p.analyzers {
		g.Go(func() error {
			results[i] = a.Analyze(structure)
			return nil
		})
	}
	_ = g.Wait() // analyzers never fail

	return structure, results, nil
}
