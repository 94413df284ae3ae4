// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/rulegen/internal/rewrite"
	"github.com/pdiddy/rulegen/pkg/types"
)

// ConvertTree runs one conversion over cfg.InputRoot, writing per-file
// and per-directory status lines to w. A directory input is walked
// recursively with its structure mirrored under cfg.OutputRoot; a single
// source-extension file is converted into cfg.OutputRoot; any other
// single file is a reported no-op.
//
// A failure on one document is logged and counted but never stops the
// walk. The returned error covers only run-level problems (unreadable
// input root, uncreatable output root).
func ConvertTree(cfg types.Config, w io.Writer) (BatchResult, error) {
	var res BatchResult

	info, err := os.Stat(cfg.InputRoot)
	if err != nil {
		return res, fmt.Errorf("reading input %s: %w", cfg.InputRoot, err)
	}

	opts := rewrite.Options{
		SourceExt:  cfg.SourceExt,
		TargetExt:  cfg.TargetExt,
		Scheme:     cfg.Scheme,
		LinkPrefix: cfg.EffectiveLinkPrefix(),
	}

	switch {
	case info.IsDir():
		if err := os.MkdirAll(cfg.OutputRoot, 0o755); err != nil {
			return res, fmt.Errorf("creating output %s: %w", cfg.OutputRoot, err)
		}
		walkDir(cfg, cfg.InputRoot, opts, w, &res)

	case strings.HasSuffix(info.Name(), cfg.SourceExt):
		if err := os.MkdirAll(cfg.OutputRoot, 0o755); err != nil {
			return res, fmt.Errorf("creating output %s: %w", cfg.OutputRoot, err)
		}
		base := strings.TrimSuffix(filepath.Base(cfg.InputRoot), cfg.SourceExt)
		dst := filepath.Join(cfg.OutputRoot, base+cfg.TargetExt)
		convertOne(cfg.InputRoot, dst, filepath.Dir(cfg.InputRoot), opts, w, &res)

	default:
		fmt.Fprintf(w, "skipped: %s (not a directory or %s document)\n", cfg.InputRoot, cfg.SourceExt)
		res.SkippedInput = true
		return res, nil
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (%d directories)\n",
		res.Converted, res.Failed, res.Dirs)
	return res, nil
}

// walkDir converts every source document under dir. Relative output
// paths are always computed against cfg.InputRoot, the traversal root,
// and each mirrored subdirectory is created before descending into it so
// output directories exist before any file inside them is written.
func walkDir(cfg types.Config, dir string, opts rewrite.Options, w io.Writer, res *BatchResult) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", dir, err)
		return
	}

	for _, entry := range entries {
		src := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			rel, err := filepath.Rel(cfg.InputRoot, src)
			if err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", src, err)
				continue
			}
			if err := os.MkdirAll(filepath.Join(cfg.OutputRoot, rel), 0o755); err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", src, err)
				continue
			}
			walkDir(cfg, src, opts, w, res)
			continue
		}

		if !strings.HasSuffix(entry.Name(), cfg.SourceExt) {
			continue
		}

		rel, err := filepath.Rel(cfg.InputRoot, src)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", src, err)
			res.Failed++
			continue
		}
		dst := filepath.Join(cfg.OutputRoot, strings.TrimSuffix(rel, cfg.SourceExt)+cfg.TargetExt)
		convertOne(src, dst, cfg.InputRoot, opts, w, res)
	}

	fmt.Fprintf(w, "processed: %s\n", dir)
	res.Dirs++
}

// convertOne converts a single document, printing its status line and
// recording the outcome.
func convertOne(src, dst, baseDir string, opts rewrite.Options, w io.Writer, res *BatchResult) {
	if err := ConvertFile(src, dst, baseDir, opts); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", src, err)
		res.Failed++
		res.Files = append(res.Files, FileResult{
			Source: src, Destination: dst, Status: StatusFailed, Error: err.Error(),
		})
		return
	}
	fmt.Fprintf(w, "converted: %s -> %s\n", src, dst)
	res.Converted++
	res.Files = append(res.Files, FileResult{
		Source: src, Destination: dst, Status: StatusConverted,
	})
}
