package application

import (
	"path/filepath"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// GenerateService orchestrates scan → analyze → compose.
type GenerateService struct {
	pipeline *Pipeline
	git      domain.GitInfo
}

func NewGenerateService(pipeline *Pipeline, git domain.GitInfo) *GenerateService {
	return &GenerateService{pipeline: pipeline, git: git}
}

// Generate produces the composed document plus the artifacts it was built
// from, so callers can render or serialize either.
func (s *GenerateService) Generate(projectPath string) (string, *domain.ProjectStructure, []domain.AnalysisResult, error) {
	structure, analyses, err := s.pipeline.Run(projectPath)
	if err != nil {
		return "", nil, nil, err
	}

	git := s.gitSummary(projectPath)
	name := filepath.Base(structure.Root)
	content := domain.Compose(structure, analyses, name, git)

	return content, structure, analyses, nil
}

// gitSummary is best-effort: a project without git history just loses the
// Git Conventions section.
func (s *GenerateService) gitSummary(projectPath string) *domain.GitSummary {
	if s.git == nil || !s.git.IsGitRepo(projectPath) {
		return nil
	}
	summary := &domain.GitSummary{HasRepo: true}
	if branch, err := s.git.Branch(projectPath); err == nil {
		summary.Branch = branch
	}
	if subjects, err := s.git.RecentSubjects(projectPath, 30); err == nil {
		summary.ConventionalCommits = domain.UsesConventionalCommits(subjects)
	}
	return summary
}
