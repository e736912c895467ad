package application

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
	"github.com/AreteDriver/claudemd-forge/internal/domain/audit"
)

// AuditService audits an existing document against the scanned project.
type AuditService struct {
	pipeline *Pipeline
	git      domain.GitInfo
	history  domain.AuditHistory
}

func NewAuditService(pipeline *Pipeline, git domain.GitInfo, history domain.AuditHistory) *AuditService {
	return &AuditService{pipeline: pipeline, git: git, history: history}
}

// Audit scans the project, checks documentPath against it, and records the
// outcome. History persistence is best-effort and never fails the audit.
func (s *AuditService) Audit(projectPath, documentPath string) (*domain.AuditReport, error) {
	structure, analyses, err := s.pipeline.Run(projectPath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(documentPath)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	report := audit.Audit(string(content), structure, analyses)

	if s.git != nil && s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}

	if s.history != nil {
		entry := domain.AuditEntry{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			CommitHash: report.CommitHash,
			Score:      report.Score,
		}
		if err := s.history.Save(projectPath, entry); err != nil {
			log.Printf("forge: could not record audit history: %v", err)
		}
	}

	return &report, nil
}
