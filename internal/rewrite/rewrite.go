// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite rewrites intra-tree Markdown links to the converted
// link scheme. It is a pure text transform: everything outside a
// recognized link construct, and every link that is external or resolves
// outside the base directory, passes through byte-for-byte.
//
// Matching is deliberately narrow: a single regex over `[text](target)`
// spans, no Markdown AST. Nested brackets beyond one level of inline
// code spans are not handled, matching the documented tool behavior.
package rewrite

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// linkRe matches a Markdown link. The text portion tolerates inline code
// spans so that a "]" inside backticks does not end the match early.
var linkRe = regexp.MustCompile("\\[([^\\]`]*(?:`[^`]*`[^\\]`]*)*)\\]\\(([^)]+)\\)")

// Options carries the link-rewriting settings for one document tree.
type Options struct {
	// SourceExt and TargetExt are the document extensions before and
	// after conversion (e.g. ".md" -> ".mdc").
	SourceExt string
	TargetExt string

	// Scheme is the literal written before the colon in rewritten
	// targets (e.g. "mdc").
	Scheme string

	// LinkPrefix is the path segment between the scheme and the
	// document's base-relative path.
	LinkPrefix string
}

// Links rewrites every in-scope document link in content. docPath is the
// path of the document the content came from (relative targets resolve
// against its directory); baseDir bounds the rewrite scope: targets that
// resolve outside it are left verbatim.
//
// Rewritten links take the form
//
//	[<target-with-new-ext>](<scheme>:<prefix>/<base-relative-path-with-new-ext>)
//
// The original display text and any #fragment suffix are discarded. That
// loses information, but it is what the tool has always emitted and
// downstream consumers key off the path label.
func Links(content, docPath, baseDir string, opts Options) string {
	docDir := filepath.Dir(docPath)

	return linkRe.ReplaceAllStringFunc(content, func(match string) string {
		m := linkRe.FindStringSubmatch(match)
		target := m[2]

		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			return match
		}
		if !strings.Contains(target, opts.SourceExt) {
			return match
		}

		pathPart := target
		if i := strings.Index(pathPart, "#"); i >= 0 {
			pathPart = pathPart[:i]
		}
		pathPart = strings.TrimPrefix(pathPart, "./")

		resolved := filepath.Join(docDir, filepath.FromSlash(pathPart))
		rel, err := filepath.Rel(baseDir, resolved)
		if err != nil {
			return match
		}
		rel = filepath.ToSlash(rel)
		if rel == ".." || strings.HasPrefix(rel, "../") {
			return match
		}

		label := substituteExt(pathPart, opts)
		newRel := substituteExt(rel, opts)
		return fmt.Sprintf("[%s](%s:%s/%s)", label, opts.Scheme, opts.LinkPrefix, newRel)
	})
}

// substituteExt replaces the source extension with the target extension.
// A trailing extension is swapped exactly; otherwise the first occurrence
// anywhere in the path is replaced, mirroring the original substitution.
func substituteExt(p string, opts Options) string {
	if strings.HasSuffix(p, opts.SourceExt) {
		return strings.TrimSuffix(p, opts.SourceExt) + opts.TargetExt
	}
	return strings.Replace(p, opts.SourceExt, opts.TargetExt, 1)
}
