// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"path/filepath"
	"testing"
)

// testOpts mirrors the default conversion settings with an "out" prefix.
var testOpts = Options{
	SourceExt:  ".md",
	TargetExt:  ".mdc",
	Scheme:     "mdc",
	LinkPrefix: "out",
}

func TestLinks(t *testing.T) {
	base := filepath.Join("docs")
	doc := filepath.Join("docs", "guide", "setup-notes.md")

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "sibling document link",
			content: "See [Other](./other.md) for details.",
			want:    "See [other.mdc](mdc:out/guide/other.mdc) for details.",
		},
		{
			name:    "http link left verbatim",
			content: "Visit [site](http://example.com/page.md).",
			want:    "Visit [site](http://example.com/page.md).",
		},
		{
			name:    "https link left verbatim",
			content: "Visit [site](https://example.com).",
			want:    "Visit [site](https://example.com).",
		},
		{
			name:    "non-document target left verbatim",
			content: "See [diagram](./arch.png) and [section](#install).",
			want:    "See [diagram](./arch.png) and [section](#install).",
		},
		{
			name:    "target escaping the base directory left verbatim",
			content: "See [escape](../../escape.md).",
			want:    "See [escape](../../escape.md).",
		},
		{
			name:    "parent directory still inside base",
			content: "See [intro](../intro.md).",
			want:    "See [../intro.mdc](mdc:out/intro.mdc).",
		},
		{
			name:    "fragment is discarded",
			content: "See [install](./other.md#install).",
			want:    "See [other.mdc](mdc:out/guide/other.mdc).",
		},
		{
			name:    "display text is replaced by the rewritten path",
			content: "See [A Very Descriptive Title](./other.md).",
			want:    "See [other.mdc](mdc:out/guide/other.mdc).",
		},
		{
			name:    "inline code span with bracket in link text",
			content: "See [the `a]b` helper](./other.md).",
			want:    "See [other.mdc](mdc:out/guide/other.mdc).",
		},
		{
			name:    "subdirectory target",
			content: "See [deep](./nested/deep.md).",
			want:    "See [nested/deep.mdc](mdc:out/guide/nested/deep.mdc).",
		},
		{
			name:    "multiple links evaluated independently",
			content: "[a](./a.md) then [b](https://b.example) then [c](../../c.md)",
			want:    "[a.mdc](mdc:out/guide/a.mdc) then [b](https://b.example) then [c](../../c.md)",
		},
		{
			name:    "surrounding text untouched",
			content: "plain text, no links [at all",
			want:    "plain text, no links [at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Links(tt.content, doc, base, testOpts)
			if got != tt.want {
				t.Errorf("Links() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLinks_DropsTextAndFragment pins down a reproduced quirk: the
// original display text and any #fragment suffix are discarded when a
// link is rewritten. Downstream consumers depend on the path label, so
// the behavior is kept as-is rather than fixed.
func TestLinks_DropsTextAndFragment(t *testing.T) {
	doc := filepath.Join("docs", "guide", "setup-notes.md")
	got := Links("[Read the install section](./other.md#install)", doc, "docs", testOpts)
	want := "[other.mdc](mdc:out/guide/other.mdc)"
	if got != want {
		t.Errorf("Links() = %q, want %q", got, want)
	}
}

func TestSubstituteExt(t *testing.T) {
	if got := substituteExt("guide/other.md", testOpts); got != "guide/other.mdc" {
		t.Errorf("substituteExt() = %q, want %q", got, "guide/other.mdc")
	}
	// Source extension not at the end: first occurrence is replaced,
	// mirroring the original substitution.
	if got := substituteExt("a.md.bak", testOpts); got != "a.mdc.bak" {
		t.Errorf("substituteExt() = %q, want %q", got, "a.mdc.bak")
	}
}
