package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
	"github.com/AreteDriver/claudemd-forge/internal/domain/audit"
)

func scannedTree() *domain.ProjectStructure {
	lines := 10
	return &domain.ProjectStructure{
		Files: []domain.FileEntry{
			{Path: "src/main.py", LineCount: &lines},
			{Path: "tests/test_main.py", LineCount: &lines},
		},
		Directories: []string{"src", "tests"},
	}
}

func TestCheckFreshness_StaleFileReference(t *testing.T) {
	findings := audit.CheckFreshness("See `src/legacy.py` for details.", scannedTree())
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	assert.Equal(t, domain.AuditFreshness, findings[0].Category)
	assert.Contains(t, findings[0].Message, "src/legacy.py")
}

func TestCheckFreshness_ExistingFileReference(t *testing.T) {
	assert.Empty(t, audit.CheckFreshness("Entry point is `src/main.py`.", scannedTree()))
}

func TestCheckFreshness_StaleDirectoryReference(t *testing.T) {
	findings := audit.CheckFreshness("Put scripts in `scripts/utils/`.", scannedTree())
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "scripts/utils/")
}

func TestCheckFreshness_CommandsAndBareTokensSkipped(t *testing.T) {
	content := "Run `npm run build` then `make test`. Uses `pip/extras.cfg` and `README`."
	assert.Empty(t, audit.CheckFreshness(content, scannedTree()))
}

func TestCheckFreshness_ExtensionlessPathSkipped(t *testing.T) {
	assert.Empty(t, audit.CheckFreshness("See `docs/guide` for more.", scannedTree()))
}

func TestCheckFreshness_NilStructure(t *testing.T) {
	assert.Empty(t, audit.CheckFreshness("See `src/legacy.py`.", nil))
}
