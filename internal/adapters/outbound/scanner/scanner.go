package scanner

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// Chunk size for binary detection and newline counting.
const readChunk = 8192

// FileScanner implements domain.ProjectScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks projectPath depth-first and returns its inventory. The only
// fatal condition is a root that is not a directory; everything else is
// logged and skipped.
func (s *FileScanner) Scan(projectPath string, cfg domain.ForgeConfig) (*domain.ProjectStructure, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotDirectory, absPath)
	}

	w := &walker{
		root: absPath,
		cfg:  cfg,
		seen: make(map[string]bool),
	}
	w.walk(absPath)

	sort.Slice(w.files, func(i, j int) bool { return w.files[i].Path < w.files[j].Path })
	sort.Strings(w.dirs)

	languages := make(map[string]int)
	for _, f := range w.files {
		if lang := domain.LanguageForExtension[f.Extension]; lang != "" {
			languages[lang]++
		}
	}

	return &domain.ProjectStructure{
		Root:            absPath,
		Files:           w.files,
		Directories:     w.dirs,
		TotalFiles:      len(w.files),
		TotalLines:      w.totalLines,
		PrimaryLanguage: domain.PrimaryLanguage(languages),
		Languages:       languages,
	}, nil
}

// walker holds per-scan traversal state. Cycle detection is scoped to one
// scan, so a walker is never reused.
type walker struct {
	root       string
	cfg        domain.ForgeConfig
	seen       map[string]bool
	files      []domain.FileEntry
	dirs       []string
	totalLines int
	stopped    bool
}

func (w *walker) walk(dir string) {
	if w.stopped {
		return
	}

	// Symlink cycle guard: canonical path memoization.
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		log.Printf("scanner: cannot resolve %s: %v", dir, err)
		return
	}
	if w.seen[real] {
		return
	}
	w.seen[real] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("scanner: cannot read directory %s: %v", dir, err)
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if w.stopped {
			return
		}
		full := filepath.Join(dir, entry.Name())

		if w.isDir(entry, full) {
			if w.matchesExclude(entry.Name()) {
				continue
			}
			rel, relErr := filepath.Rel(w.root, full)
			if relErr == nil {
				w.dirs = append(w.dirs, filepath.ToSlash(rel))
			}
			w.walk(full)
			continue
		}

		w.visitFile(entry.Name(), full)
	}
}

// isDir follows symlinks so linked directories are traversed (the cycle
// guard keeps loops finite).
func (w *walker) isDir(entry os.DirEntry, full string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

func (w *walker) visitFile(name, full string) {
	if len(w.files) >= w.cfg.MaxFiles {
		log.Printf("scanner: reached max file limit (%d), stopping scan", w.cfg.MaxFiles)
		w.stopped = true
		return
	}

	if w.matchesExclude(name) || !w.matchesInclude(name) {
		return
	}

	info, err := os.Stat(full)
	if err != nil {
		log.Printf("scanner: cannot stat %s: %v", full, err)
		return
	}
	if info.Size() > int64(w.cfg.MaxFileSizeKB)*1024 {
		return
	}

	rel, err := filepath.Rel(w.root, full)
	if err != nil {
		return
	}

	entry := domain.FileEntry{
		Path:      filepath.ToSlash(rel),
		Extension: strings.ToLower(filepath.Ext(name)),
		SizeBytes: info.Size(),
	}

	if count, ok := countLines(full); ok {
		entry.LineCount = &count
		w.totalLines += count
	}

	w.files = append(w.files, entry)
}

func (w *walker) matchesExclude(name string) bool {
	for _, pattern := range w.cfg.ExcludePatterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (w *walker) matchesInclude(name string) bool {
	if len(w.cfg.IncludePatterns) == 0 {
		return true
	}
	for _, pattern := range w.cfg.IncludePatterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// countLines streams the file in 8 KiB chunks counting newline bytes. A NUL
// byte in the first chunk classifies the file binary and reports ok=false.
// Read failures also classify binary: the file is skipped, never fatal.
func countLines(full string) (count int, ok bool) {
	f, err := os.Open(full)
	if err != nil {
		log.Printf("scanner: cannot open %s: %v", full, err)
		return 0, false
	}
	defer f.Close()

	buf := make([]byte, readChunk)
	probed := 0
	for {
		n, err := f.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if probed < readChunk {
				probe := chunk
				if len(probe) > readChunk-probed {
					probe = probe[:readChunk-probed]
				}
				for _, b := range probe {
					if b == 0 {
						return 0, false
					}
				}
				probed += len(probe)
			}
			for _, b := range chunk {
				if b == '\n' {
					count++
				}
			}
		}
		if err == io.EOF {
			return count, true
		}
		if err != nil {
			log.Printf("scanner: cannot read %s: %v", full, err)
			return 0, false
		}
	}
}
