// Package analyzer holds the four heuristic analyzers. Each is independent,
// read-only over the scanned structure and the filesystem, and never fails:
// unreadable files are skipped and missing evidence lowers confidence.
package analyzer

import (
	"os"
	"path/filepath"
)

// readFile returns the file's content as a string, tolerating any byte
// sequence. ok is false when the file cannot be read.
func readFile(root, rel string) (content string, ok bool) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// fileExists reports whether rel exists under root as a regular file.
func fileExists(root, rel string) bool {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil && info.Mode().IsRegular()
}

// dirExists reports whether rel exists under root as a directory.
func dirExists(root, rel string) bool {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil && info.IsDir()
}

// pathExists reports whether rel exists under root at all.
func pathExists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}
