package domain

import "errors"

// ErrNotDirectory is returned by the scanner when the project root does not
// exist or is not a directory. It is the only fatal scan condition; every
// other filesystem problem is logged and skipped.
var ErrNotDirectory = errors.New("project root is not a directory")

// FileEntry describes a single file found during a scan. LineCount is nil
// when the file was classified as binary.
type FileEntry struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
	SizeBytes int64  `json:"size_bytes"`
	LineCount *int   `json:"line_count,omitempty"`
}

// IsBinary reports whether the file was classified binary during the scan.
func (f FileEntry) IsBinary() bool { return f.LineCount == nil }

// ProjectStructure is the complete inventory of a scanned project. It is
// built once per scan and treated as read-only by all consumers.
type ProjectStructure struct {
	Root            string         `json:"root"`
	Files           []FileEntry    `json:"files"`
	Directories     []string       `json:"directories"`
	TotalFiles      int            `json:"total_files"`
	TotalLines      int            `json:"total_lines"`
	PrimaryLanguage string         `json:"primary_language,omitempty"`
	Languages       map[string]int `json:"languages"`
}

// Analyzer category tags. Each analyzer produces exactly one result per scan.
const (
	CategoryLanguage = "language"
	CategoryPatterns = "patterns"
	CategoryCommands = "commands"
	CategoryDomain   = "domain"
)

// AnalysisResult is the common envelope produced by every analyzer. Exactly
// one of the findings pointers is set, matching Category.
type AnalysisResult struct {
	Category       string  `json:"category"`
	Confidence     float64 `json:"confidence"`
	SectionContent string  `json:"section_content"`

	Language *LanguageFindings `json:"language,omitempty"`
	Patterns *PatternFindings  `json:"patterns,omitempty"`
	Commands *CommandFindings  `json:"commands,omitempty"`
	Domain   *DomainFindings   `json:"domain,omitempty"`
}

// Toolchains groups detected developer tooling by role.
type Toolchains struct {
	Linters        []string `json:"linters"`
	Formatters     []string `json:"formatters"`
	TypeCheckers   []string `json:"type_checkers"`
	TestFrameworks []string `json:"test_frameworks"`
}

// Empty reports whether no tool was detected in any role.
func (t Toolchains) Empty() bool {
	return len(t.Linters) == 0 && len(t.Formatters) == 0 &&
		len(t.TypeCheckers) == 0 && len(t.TestFrameworks) == 0
}

// LanguageFindings holds the language analyzer's detections.
type LanguageFindings struct {
	Languages       map[string]int `json:"languages"`
	PrimaryLanguage string         `json:"primary_language,omitempty"`
	Frameworks      []string       `json:"frameworks"`
	PackageManagers []string       `json:"package_managers"`
	Toolchains      Toolchains     `json:"toolchains"`
	Runtime         []string       `json:"runtime"`
	CICD            []string       `json:"ci_cd"`
}

// ErrorHandlingFindings summarizes error handling signals in sampled sources.
type ErrorHandlingFindings struct {
	TryExceptCount   int  `json:"try_except_count"`
	CustomExceptions bool `json:"custom_exceptions"`
}

// PatternFindings holds the naming/style analyzer's detections. String
// fields use small closed vocabularies ("snake_case", "mixed", "n/a", ...).
type PatternFindings struct {
	Naming         string                `json:"naming"`
	QuoteStyle     string                `json:"quote_style"`
	TypeHints      string                `json:"type_hints"`
	DocstringStyle string                `json:"docstring_style"`
	ImportStyle    string                `json:"import_style"`
	PathUsage      string                `json:"path_usage"`
	Semicolons     string                `json:"semicolons"`
	LineLengthP95  int                   `json:"line_length_p95"`
	TrailingCommas string                `json:"trailing_commas"`
	ErrorHandling  ErrorHandlingFindings `json:"error_handling"`
	Note           string                `json:"note,omitempty"`
}

// CommandFindings holds runnable commands extracted from build tooling files.
type CommandFindings struct {
	NPMScripts       map[string]string `json:"npm_scripts"`
	MakefileTargets  map[string]string `json:"makefile_targets"`
	JustfileRecipes  map[string]string `json:"justfile_recipes"`
	PyprojectScripts map[string]string `json:"pyproject_scripts"`
	DockerCommands   map[string]string `json:"docker_commands"`
}

// CommentKeyword is a TODO/FIXME-style comment captured with its context.
type CommentKeyword struct {
	Type string `json:"type"`
	Text string `json:"text"`
	File string `json:"file"`
}

// DomainFindings holds extracted domain vocabulary.
type DomainFindings struct {
	ClassNames      []string         `json:"class_names"`
	ReadmeTerms     []string         `json:"readme_terms"`
	APIRoutes       []string         `json:"api_routes"`
	EnumValues      []string         `json:"enum_values"`
	CommentKeywords []CommentKeyword `json:"comment_keywords"`
	Vocabulary      []string         `json:"vocabulary"`
}

// Finding severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Audit finding categories.
const (
	AuditCoverage    = "coverage"
	AuditAccuracy    = "accuracy"
	AuditAntiPattern = "anti_pattern"
	AuditSpecificity = "specificity"
	AuditFreshness   = "freshness"
)

// AuditFinding is a single issue reported by an audit checker.
type AuditFinding struct {
	Severity   string `json:"severity"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// AuditReport is the complete result of auditing one document.
type AuditReport struct {
	Score           int            `json:"score"`
	Findings        []AuditFinding `json:"findings"`
	MissingSections []string       `json:"missing_sections"`
	Recommendations []string       `json:"recommendations"`
	CommitHash      string         `json:"commit_hash,omitempty"`
}
