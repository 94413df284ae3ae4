// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert transforms Markdown documents into rule documents: it
// strips any existing leading frontmatter, rewrites intra-tree links,
// generates a path-derived description, and writes the result under the
// target extension. walk.go drives the per-tree traversal.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/rulegen/internal/describe"
	"github.com/pdiddy/rulegen/internal/rewrite"
)

// Status is the outcome of one document conversion.
type Status string

const (
	StatusConverted Status = "converted"
	StatusFailed    Status = "failed"
)

// FileResult records the outcome of one document for the run report.
type FileResult struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Status      Status `yaml:"status"`
	Error       string `yaml:"error,omitempty"`
}

// BatchResult summarizes a conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	Dirs      int

	// SkippedInput is set when the input was a single file without the
	// source extension, which is a no-op rather than an error.
	SkippedInput bool

	Files []FileResult
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// frontmatterRe matches a frontmatter block anchored at the start of the
// document: a delimiter line, a body, a closing delimiter line, and any
// trailing blank space. An unterminated block does not match and is left
// in place.
var frontmatterRe = regexp.MustCompile(`(?s)\A---\n.*?\n---\n\s*`)

// StripFrontmatter removes a leading frontmatter block from content.
// Content without a properly closed leading block is returned unchanged.
func StripFrontmatter(content string) string {
	return frontmatterRe.ReplaceAllString(content, "")
}

// ConvertFile converts the document at src and writes it to dst. Relative
// link targets resolve against src's directory and are rewritten only
// when they stay inside baseDir. Parent directories of dst are created as
// needed; an existing file at dst is overwritten.
func ConvertFile(src, dst, baseDir string, opts rewrite.Options) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	content := StripFrontmatter(string(data))
	content = rewrite.Links(content, src, baseDir, opts)
	desc := describe.Describe(baseDir, src)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, []byte(metadataBlock(desc)+content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// metadataBlock builds the frontmatter prepended to every converted
// document. The shape is fixed: description, an empty globs field, and
// alwaysApply pinned to false.
func metadataBlock(description string) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "description: %s\n", description)
	b.WriteString("globs:\n")
	b.WriteString("alwaysApply: false\n")
	b.WriteString("---\n\n")
	return b.String()
}
