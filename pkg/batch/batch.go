// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package batch discovers files by glob pattern and analyzes them
// sequentially with per-file failure reporting.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/textproc/pkg/analyze"
	"gitlab.com/tozd/go/errors"
)

// 🚫 NoFilesMatchedError is returned when a pattern matches nothing
type NoFilesMatchedError struct {
	Pattern string
}

func (e *NoFilesMatchedError) Error() string {
	return fmt.Sprintf("no files matched pattern %q", e.Pattern)
}

// 🔍 FindFiles returns the regular files matching pattern, sorted. With
// recursive set, a plain pattern like "*.txt" is searched through every
// subdirectory as well.
func FindFiles(ctx context.Context, pattern string, recursive bool) ([]string, error) {
	pat := pattern
	if recursive && !strings.Contains(pattern, "**") {
		// Insert ** between the pattern's directory and base so
		// directory-qualified and absolute patterns stay anchored.
		pat = filepath.Join(filepath.Dir(pattern), "**", filepath.Base(pattern))
	}

	matches, err := doublestar.FilepathGlob(pat)
	if err != nil {
		return nil, errors.Errorf("invalid pattern %q: %w", pattern, err)
	}

	files := matches[:0]
	for _, m := range matches {
		st, err := os.Stat(m)
		if err != nil || st.IsDir() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, &NoFilesMatchedError{Pattern: pattern}
	}

	zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Int("count", len(files)).Msg("matched files")
	return files, nil
}

// 📄 Item is the outcome for one file: Result on success, Err on failure
type Item struct {
	Path   string
	Result *analyze.Result
	Err    error
}

// 📊 Summary aggregates a batch run
type Summary struct {
	Items      []Item
	Succeeded  int
	Failed     int
	TotalWords int
	TotalChars int
}

// 🏃 Runner analyzes batches of files
type Runner struct {
	analyzer *analyze.Analyzer
}

// 🏭 NewRunner creates a batch runner around an analyzer.
func NewRunner(analyzer *analyze.Analyzer) *Runner {
	return &Runner{analyzer: analyzer}
}

// Run analyzes files one at a time. A failing file is recorded and logged
// as a warning; it never aborts the rest of the batch.
func (r *Runner) Run(ctx context.Context, files []string) *Summary {
	logger := zerolog.Ctx(ctx)
	summary := &Summary{}

	for _, path := range files {
		result, err := r.analyzer.AnalyzeFile(ctx, path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping file")
			summary.Items = append(summary.Items, Item{Path: path, Err: err})
			summary.Failed++
			continue
		}

		summary.Items = append(summary.Items, Item{Path: path, Result: result})
		summary.Succeeded++
		summary.TotalWords += result.Int("basic_stats", "word_count")
		summary.TotalChars += result.Int("basic_stats", "character_count")
	}

	return summary
}
