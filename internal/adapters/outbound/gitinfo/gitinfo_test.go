package gitinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/gitinfo"
)

func TestIsGitRepo_PlainDirectory(t *testing.T) {
	assert.False(t, gitinfo.New().IsGitRepo(t.TempDir()))
}

func TestCommitHash_PlainDirectory(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}
