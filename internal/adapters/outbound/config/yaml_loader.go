package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

const fileName = ".forge.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .forge.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .forge.yaml from projectPath. Returns the default configuration
// if the file does not exist. An invalid projectPath also yields the defaults
// so the scanner can report it as the root failure.
func (l *YAMLLoader) Load(projectPath string) (domain.ForgeConfig, error) {
	if info, err := os.Stat(projectPath); err != nil || !info.IsDir() {
		return domain.DefaultConfig(), nil
	}

	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ForgeConfig{}, err
	}

	var cfg domain.ForgeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ForgeConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ForgeConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg.WithDefaults(), nil
}
