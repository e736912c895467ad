package domain

// ProjectScanner walks a project directory and returns its inventory.
type ProjectScanner interface {
	Scan(projectPath string, cfg ForgeConfig) (*ProjectStructure, error)
}

// Analyzer extracts one category of signals from a scanned project.
// Analyzers never fail: at worst they return a zero-confidence result.
type Analyzer interface {
	Category() string
	Analyze(structure *ProjectStructure) AnalysisResult
}

// ConfigLoader loads the per-project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ForgeConfig, error)
}

// GitInfo reads repository metadata for a project, if it is a git repo.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	Branch(projectPath string) (string, error)
	RecentSubjects(projectPath string, limit int) ([]string, error)
}

// AuditEntry is a single recorded audit outcome.
type AuditEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Score      int    `json:"score"`
}

// AuditHistory persists audit outcomes per project.
type AuditHistory interface {
	Save(projectPath string, entry AuditEntry) error
	Load(projectPath string) ([]AuditEntry, error)
}
