package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

const (
	historyFile = ".forge/history/audits.json"
	lockFile    = ".forge/history/audits.lock"
)

// FileHistory implements domain.AuditHistory using flock-guarded JSON
// storage, so concurrent invocations against the same project don't clobber
// each other.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(projectPath string, entry domain.AuditEntry) error {
	fp := filepath.Join(projectPath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(projectPath, lockFile))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	entries, err := readEntries(fp)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0o644)
}

func (h *FileHistory) Load(projectPath string) ([]domain.AuditEntry, error) {
	return readEntries(filepath.Join(projectPath, historyFile))
}

func readEntries(fp string) ([]domain.AuditEntry, error) {
	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
