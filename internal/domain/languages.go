package domain

import "sort"

// LanguageForExtension maps lowercased file extensions to language names.
// Unrecognized extensions map to the empty string and are left uncounted.
var LanguageForExtension = map[string]string{
	".py":     "Python",
	".pyi":    "Python",
	".rs":     "Rust",
	".ts":     "TypeScript",
	".tsx":    "TypeScript",
	".js":     "JavaScript",
	".jsx":    "JavaScript",
	".go":     "Go",
	".java":   "Java",
	".kt":     "Kotlin",
	".swift":  "Swift",
	".rb":     "Ruby",
	".php":    "PHP",
	".c":      "C",
	".h":      "C",
	".cpp":    "C++",
	".hpp":    "C++",
	".cs":     "C#",
	".scala":  "Scala",
	".zig":    "Zig",
	".lua":    "Lua",
	".dart":   "Dart",
	".ex":     "Elixir",
	".exs":    "Elixir",
	".erl":    "Erlang",
	".hs":     "Haskell",
	".ml":     "OCaml",
	".clj":    "Clojure",
	".r":      "R",
	".sh":     "Shell",
	".bash":   "Shell",
	".zsh":    "Shell",
	".fish":   "Shell",
	".sql":    "SQL",
	".html":   "HTML",
	".htm":    "HTML",
	".css":    "CSS",
	".scss":   "SCSS",
	".sass":   "SASS",
	".less":   "LESS",
	".vue":    "Vue",
	".svelte": "Svelte",
}

// markupLanguages are never eligible as the primary language.
var markupLanguages = map[string]bool{
	"HTML":     true,
	"CSS":      true,
	"SCSS":     true,
	"SASS":     true,
	"LESS":     true,
	"SQL":      true,
	"Shell":    true,
	"Markdown": true,
}

// IsMarkupLanguage reports whether lang is a markup/config-only language.
func IsMarkupLanguage(lang string) bool { return markupLanguages[lang] }

// PrimaryLanguage returns the most-represented non-markup language, or ""
// if no non-markup language has any files. Ties break by the
// lexicographically smallest name so repeated scans agree.
func PrimaryLanguage(languages map[string]int) string {
	best := ""
	bestCount := 0
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if markupLanguages[name] {
			continue
		}
		if languages[name] > bestCount {
			best = name
			bestCount = languages[name]
		}
	}
	return best
}

// ExtensionsForLanguage returns every extension mapped to lang, sorted.
func ExtensionsForLanguage(lang string) []string {
	var exts []string
	for ext, l := range LanguageForExtension {
		if l == lang {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
