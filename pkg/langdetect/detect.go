// Package langdetect identifies the language of a source unit.
// It uses go-enry so the presenter can pick a syntax highlighter and
// print a file-type note for recognized content.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Plain is the language reported when nothing is recognized.
const Plain = "text"

// Detect returns the language of a file, lowercased, from its name and
// content. URL-sourced units pass an empty path and rely on content alone.
// Returns Plain when detection fails.
func Detect(path string, content []byte) string {
	if path != "" {
		if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
			return normalize(lang)
		}
	}

	if len(content) == 0 {
		return Plain
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang, safe := enry.GetLanguageByContent("snippet"+guessExtension(content), content); safe {
		return normalize(lang)
	}

	return Plain
}

// Note renders a human-readable file-type note, or "" for plain text.
func Note(lang string) string {
	if lang == "" || lang == Plain {
		return ""
	}
	return "(" + capitalize(lang) + " source detected)"
}

// capitalize upper-cases the first byte. Language tags are ASCII.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// guessExtension gives enry's content classifier a filename hint for
// markup-looking content, which it otherwise refuses to classify.
func guessExtension(content []byte) string {
	head := strings.ToLower(string(content[:min(len(content), 256)]))
	if strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html") {
		return ".html"
	}
	return ".txt"
}

// normalize converts go-enry language names to lowercase tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
