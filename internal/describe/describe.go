// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package describe derives a human-readable label for a document from its
// location on disk. The label becomes the "description" metadata field of
// the converted document.
package describe

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Describe builds a description for the document at docPath relative to
// baseDir. The base directory's name has its first letter capitalized;
// every hyphen-separated word of the intermediate directories and of the
// file's base name is capitalized. Upward ".." segments are skipped.
//
// Example: baseDir "docs", docPath "docs/guide/setup-notes.md" yields
// "Docs Guide: Setup Notes".
func Describe(baseDir, docPath string) string {
	rel, err := filepath.Rel(baseDir, docPath)
	if err != nil {
		rel = filepath.Base(docPath)
	}

	segs := strings.Split(filepath.ToSlash(rel), "/")
	file := segs[len(segs)-1]

	var dirWords []string
	for _, seg := range segs[:len(segs)-1] {
		if seg == ".." || seg == "." || seg == "" {
			continue
		}
		dirWords = append(dirWords, hyphenWords(seg)...)
	}

	base := strings.TrimSuffix(file, filepath.Ext(file))
	fileWords := hyphenWords(base)

	label := capitalize(filepath.Base(baseDir))
	if len(dirWords) > 0 {
		label += " " + strings.Join(dirWords, " ")
	}
	return label + ": " + strings.Join(fileWords, " ")
}

// hyphenWords splits s on hyphens and capitalizes each part.
func hyphenWords(s string) []string {
	parts := strings.Split(s, "-")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		words = append(words, capitalize(p))
	}
	return words
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
