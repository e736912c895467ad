package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/config"
	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FileRootReturnsDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("not a project\n"), 0o644))

	cfg, err := config.New().Load(file)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `exclude_patterns:
  - vendor
  - "*.gen.go"
max_files: 200
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".forge.yaml"), []byte(content), 0o644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor", "*.gen.go"}, cfg.ExcludePatterns)
	assert.Equal(t, 200, cfg.MaxFiles)
	// Unset fields still pick up defaults.
	assert.Equal(t, domain.DefaultMaxFileSizeKB, cfg.MaxFileSizeKB)
	assert.Equal(t, []string{"*"}, cfg.IncludePatterns)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".forge.yaml"), []byte("max_files: [oops"), 0o644))

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".forge.yaml"), []byte("max_files: -1\n"), 0o644))

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}
