package domain

import "fmt"

// Directory and filename globs pruned by default during a scan.
var DefaultExcludePatterns = []string{
	"node_modules",
	".git",
	"__pycache__",
	".venv",
	"venv",
	"dist",
	"build",
	".next",
	"target",
	".tox",
	".mypy_cache",
	".ruff_cache",
	".pytest_cache",
	".eggs",
	"*.egg-info",
}

const (
	DefaultMaxFileSizeKB = 500
	DefaultMaxFiles      = 5000
)

// ForgeConfig configures a single scan/generate/audit run. Loaded once at
// startup and never mutated afterward.
type ForgeConfig struct {
	OutputPath      string   `yaml:"output"`
	Preset          string   `yaml:"preset"`
	IncludePatterns []string `yaml:"include_patterns"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
	MaxFileSizeKB   int      `yaml:"max_file_size_kb"`
	MaxFiles        int      `yaml:"max_files"`
}

// DefaultConfig returns the configuration used when no .forge.yaml exists.
func DefaultConfig() ForgeConfig {
	return ForgeConfig{
		Preset:          "default",
		IncludePatterns: []string{"*"},
		ExcludePatterns: append([]string(nil), DefaultExcludePatterns...),
		MaxFileSizeKB:   DefaultMaxFileSizeKB,
		MaxFiles:        DefaultMaxFiles,
	}
}

// Validate rejects configurations that would make a scan meaningless.
func (c ForgeConfig) Validate() error {
	if c.MaxFileSizeKB < 0 {
		return fmt.Errorf("max_file_size_kb must be >= 0, got %d", c.MaxFileSizeKB)
	}
	if c.MaxFiles < 0 {
		return fmt.Errorf("max_files must be >= 0, got %d", c.MaxFiles)
	}
	return nil
}

// WithDefaults fills zero-valued fields from DefaultConfig.
func (c ForgeConfig) WithDefaults() ForgeConfig {
	def := DefaultConfig()
	if c.Preset == "" {
		c.Preset = def.Preset
	}
	if len(c.IncludePatterns) == 0 {
		c.IncludePatterns = def.IncludePatterns
	}
	if len(c.ExcludePatterns) == 0 {
		c.ExcludePatterns = def.ExcludePatterns
	}
	if c.MaxFileSizeKB == 0 {
		c.MaxFileSizeKB = def.MaxFileSizeKB
	}
	if c.MaxFiles == 0 {
		c.MaxFiles = def.MaxFiles
	}
	return c
}
