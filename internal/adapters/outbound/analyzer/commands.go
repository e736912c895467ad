package analyzer

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

var (
	makeTargetLine  = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_-]*)\s*:`)
	justRecipeLine  = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_-]*)(?:\s.*)?:`)
	pyprojectScript = regexp.MustCompile(`^(\S+)\s*=\s*"(.+)"`)
)

// CommandAnalyzer extracts runnable commands from build tooling files.
type CommandAnalyzer struct{}

func NewCommandAnalyzer() *CommandAnalyzer { return &CommandAnalyzer{} }

func (a *CommandAnalyzer) Category() string { return domain.CategoryCommands }

func (a *CommandAnalyzer) Analyze(structure *domain.ProjectStructure) domain.AnalysisResult {
	root := structure.Root

	f := &domain.CommandFindings{
		NPMScripts:       parseNPMScripts(root),
		MakefileTargets:  parseMakefile(root),
		JustfileRecipes:  parseJustfile(root),
		PyprojectScripts: parsePyprojectCommands(root),
		DockerCommands:   parseDocker(root),
	}

	sources := 0
	for _, m := range []map[string]string{
		f.NPMScripts, f.MakefileTargets, f.JustfileRecipes, f.PyprojectScripts, f.DockerCommands,
	} {
		if len(m) > 0 {
			sources++
		}
	}
	confidence := 0.1
	if sources > 0 {
		confidence = float64(sources) / 3.0
		if confidence > 1.0 {
			confidence = 1.0
		}
	}

	return domain.AnalysisResult{
		Category:       domain.CategoryCommands,
		Confidence:     confidence,
		SectionContent: renderCommands(f),
		Commands:       f,
	}
}

// parseNPMScripts reads the scripts object of package.json. Malformed JSON
// is logged and treated as empty.
func parseNPMScripts(root string) map[string]string {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return map[string]string{}
	}
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		log.Printf("analyzer: cannot parse package.json: %v", err)
		return map[string]string{}
	}
	if pkg.Scripts == nil {
		return map[string]string{}
	}
	return pkg.Scripts
}

func parseMakefile(root string) map[string]string {
	for _, name := range []string{"Makefile", "makefile"} {
		if content, ok := readFile(root, name); ok {
			return extractMakefileTargets(content)
		}
	}
	return map[string]string{}
}

// extractMakefileTargets pairs each non-indented "name:" line with its first
// tab-indented recipe line.
func extractMakefileTargets(content string) map[string]string {
	targets := make(map[string]string)
	current := ""
	for _, line := range strings.Split(content, "\n") {
		if m := makeTargetLine.FindStringSubmatch(line); m != nil && !strings.HasPrefix(line, "\t") {
			current = m[1]
		} else if current != "" && strings.HasPrefix(line, "\t") {
			targets[current] = strings.TrimSpace(line)
			current = ""
		}
	}
	return targets
}

func parseJustfile(root string) map[string]string {
	for _, name := range []string{"justfile", "Justfile"} {
		if content, ok := readFile(root, name); ok {
			return extractJustfileRecipes(content)
		}
	}
	return map[string]string{}
}

// extractJustfileRecipes is like the Makefile pass, but recipe bodies may be
// indented with spaces as well as tabs.
func extractJustfileRecipes(content string) map[string]string {
	recipes := make(map[string]string)
	current := ""
	for _, line := range strings.Split(content, "\n") {
		indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		if m := justRecipeLine.FindStringSubmatch(line); m != nil && !indented {
			current = m[1]
		} else if current != "" && indented && strings.TrimSpace(line) != "" {
			recipes[current] = strings.TrimSpace(line)
			current = ""
		}
	}
	return recipes
}

// parsePyprojectCommands synthesizes commands from pyproject.toml tool
// tables, script tables, tox.ini, and a setup.cfg pytest fallback.
func parsePyprojectCommands(root string) map[string]string {
	commands := make(map[string]string)

	content, _ := readFile(root, "pyproject.toml")
	if content != "" {
		if strings.Contains(content, "pytest") {
			commands["test"] = "pytest tests/ -v"
		}
		if strings.Contains(content, "[tool.ruff") {
			commands["lint"] = "ruff check src/ tests/"
			commands["format"] = "ruff format src/ tests/"
		}
		if strings.Contains(content, "[tool.mypy") {
			commands["type check"] = "mypy src/"
		}
		if strings.Contains(content, "[tool.black") {
			commands["format"] = "black src/ tests/"
		}
		if strings.Contains(content, "[tool.coverage") {
			commands["coverage"] = "pytest --cov=src/ tests/"
		}
		if strings.Contains(content, "[tool.isort") {
			commands["isort"] = "isort src/ tests/"
		}

		for _, header := range []string{"[project.scripts]", "[tool.poetry.scripts]"} {
			inScripts := false
			for _, line := range strings.Split(content, "\n") {
				if strings.TrimSpace(line) == header {
					inScripts = true
					continue
				}
				if inScripts {
					if strings.HasPrefix(line, "[") {
						break
					}
					if m := pyprojectScript.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
						commands[m[1]] = m[2]
					}
				}
			}
		}

		if strings.Contains(content, "[tool.tox") {
			commands["tox"] = "tox"
		}
	}

	if _, ok := commands["tox"]; !ok && fileExists(root, "tox.ini") {
		commands["tox"] = "tox"
	}

	if _, ok := commands["test"]; !ok {
		if cfg, ok := readFile(root, "setup.cfg"); ok && strings.Contains(cfg, "[tool:pytest]") {
			commands["test"] = "pytest"
		}
	}

	return commands
}

// parseDocker extracts CMD and ENTRYPOINT lines from a Dockerfile, stripped
// of the directive keyword.
func parseDocker(root string) map[string]string {
	content, ok := readFile(root, "Dockerfile")
	if !ok {
		return map[string]string{}
	}
	commands := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "CMD ") {
			commands["docker CMD"] = strings.TrimSpace(stripped[4:])
		} else if strings.HasPrefix(stripped, "ENTRYPOINT ") {
			commands["docker ENTRYPOINT"] = strings.TrimSpace(stripped[11:])
		}
	}
	return commands
}

// renderCommands emits a single fenced bash block concatenating every
// non-empty source group, or an empty string when nothing was found. Map
// keys are rendered sorted so repeated runs agree.
func renderCommands(f *domain.CommandFindings) string {
	var lines []string
	lines = append(lines, "## Common Commands", "", "```bash")

	anyCommands := false

	if len(f.NPMScripts) > 0 {
		for _, name := range sortedMapKeys(f.NPMScripts) {
			lines = append(lines, fmt.Sprintf("# %s", name))
			lines = append(lines, fmt.Sprintf("npm run %s", name))
		}
		anyCommands = true
	}

	if len(f.PyprojectScripts) > 0 {
		if anyCommands {
			lines = append(lines, "")
		}
		for _, name := range sortedMapKeys(f.PyprojectScripts) {
			lines = append(lines, fmt.Sprintf("# %s", name))
			lines = append(lines, f.PyprojectScripts[name])
		}
		anyCommands = true
	}

	if len(f.MakefileTargets) > 0 {
		if anyCommands {
			lines = append(lines, "")
		}
		for _, target := range sortedMapKeys(f.MakefileTargets) {
			lines = append(lines, fmt.Sprintf("# %s", target))
			lines = append(lines, fmt.Sprintf("make %s", target))
		}
		anyCommands = true
	}

	if len(f.JustfileRecipes) > 0 {
		if anyCommands {
			lines = append(lines, "")
		}
		for _, recipe := range sortedMapKeys(f.JustfileRecipes) {
			lines = append(lines, fmt.Sprintf("just %s", recipe))
		}
		anyCommands = true
	}

	if len(f.DockerCommands) > 0 {
		if anyCommands {
			lines = append(lines, "")
		}
		for _, label := range sortedMapKeys(f.DockerCommands) {
			lines = append(lines, fmt.Sprintf("# %s", label))
			lines = append(lines, f.DockerCommands[label])
		}
		anyCommands = true
	}

	if !anyCommands {
		return ""
	}

	lines = append(lines, "```", "")
	return strings.Join(lines, "\n")
}

func sortedMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
