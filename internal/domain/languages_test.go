package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

func TestLanguageForExtension(t *testing.T) {
	assert.Equal(t, "Python", domain.LanguageForExtension[".py"])
	assert.Equal(t, "Python", domain.LanguageForExtension[".pyi"])
	assert.Equal(t, "TypeScript", domain.LanguageForExtension[".tsx"])
	assert.Equal(t, "Go", domain.LanguageForExtension[".go"])
	assert.Empty(t, domain.LanguageForExtension[".xyz"])
}

func TestIsMarkupLanguage(t *testing.T) {
	assert.True(t, domain.IsMarkupLanguage("HTML"))
	assert.True(t, domain.IsMarkupLanguage("Shell"))
	assert.False(t, domain.IsMarkupLanguage("Python"))
	assert.False(t, domain.IsMarkupLanguage("Rust"))
}

func TestPrimaryLanguage(t *testing.T) {
	langs := map[string]int{"Python": 10, "JavaScript": 3, "HTML": 40}
	assert.Equal(t, "Python", domain.PrimaryLanguage(langs))
}

func TestPrimaryLanguage_MarkupOnly(t *testing.T) {
	langs := map[string]int{"HTML": 12, "CSS": 5}
	assert.Empty(t, domain.PrimaryLanguage(langs))
}

func TestPrimaryLanguage_TieBreaksByName(t *testing.T) {
	langs := map[string]int{"Rust": 4, "Go": 4}
	assert.Equal(t, "Go", domain.PrimaryLanguage(langs))
}

func TestPrimaryLanguage_Empty(t *testing.T) {
	assert.Empty(t, domain.PrimaryLanguage(nil))
	assert.Empty(t, domain.PrimaryLanguage(map[string]int{}))
}

func TestExtensionsForLanguage(t *testing.T) {
	assert.Equal(t, []string{".py", ".pyi"}, domain.ExtensionsForLanguage("Python"))
	assert.Equal(t, []string{".ts", ".tsx"}, domain.ExtensionsForLanguage("TypeScript"))
	assert.Empty(t, domain.ExtensionsForLanguage("Brainfuck"))
}
