package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/history"
	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	first := domain.AuditEntry{Timestamp: "2026-08-01T10:00:00Z", CommitHash: "abc1234", Score: 62}
	second := domain.AuditEntry{Timestamp: "2026-08-02T10:00:00Z", Score: 78}

	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, second))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestLoad_NoHistory(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".forge", "history", "audits.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0o755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0o644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}

func TestSave_CreatesHistoryDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, history.New().Save(dir, domain.AuditEntry{Score: 10}))

	_, err := os.Stat(filepath.Join(dir, ".forge", "history", "audits.json"))
	assert.NoError(t, err)
}
