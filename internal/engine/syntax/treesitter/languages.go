// Package treesitter parses source text into syntax.Tree snapshots using
// tree-sitter grammars.
//
// The cgo tree is converted into the arena representation and released
// before Parse returns, so callers never hold tree-sitter handles. Without
// cgo every language is unsupported.
package treesitter

import (
	"errors"
	"path/filepath"
	"strings"
)

// Language constants used throughout the treesitter package
const (
	LangGo         = "go"
	LangPython     = "python"
	LangTypeScript = "typescript"
	LangJavaScript = "javascript"
	LangJava       = "java"
	LangRust       = "rust"
)

// SupportedLanguages lists the languages with a bundled grammar.
var SupportedLanguages = []string{
	LangGo,
	LangPython,
	LangTypeScript,
	LangJavaScript,
	LangJava,
	LangRust,
}

// Errors returned by Parser.
var (
	ErrUnsupported = errors.New("unsupported language")
	ErrParseFailed = errors.New("failed to parse content")
)

var extensions = map[string]string{
	".go":   LangGo,
	".py":   LangPython,
	".pyi":  LangPython,
	".ts":   LangTypeScript,
	".mts":  LangTypeScript,
	".js":   LangJavaScript,
	".jsx":  LangJavaScript,
	".mjs":  LangJavaScript,
	".cjs":  LangJavaScript,
	".java": LangJava,
	".rs":   LangRust,
}

// LanguageForPath returns the language for a file path based on its extension.
func LanguageForPath(path string) (string, bool) {
	lang, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}
