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

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/textproc/cmd/textproc/opts"
	"github.com/walteh/textproc/pkg/analyze"
	"github.com/walteh/textproc/pkg/batch"
	"github.com/walteh/textproc/pkg/fileio"
	"github.com/walteh/textproc/pkg/format"
	"github.com/walteh/textproc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewBatchAnalyzeCmd creates the batch-analyze command
func NewBatchAnalyzeCmd(ropts *opts.RootOpts) *cobra.Command {
	var (
		recursive     bool
		output        string
		formatName    string
		noReadability bool
	)

	cmd := &cobra.Command{
		Use:   "batch-analyze [pattern]",
		Short: "Analyze every file matching a glob pattern",
		Long: `Batch-analyze discovers files by glob pattern and analyzes them one at
a time. A file that cannot be read is reported and skipped; the rest of
the batch continues. Matching no files at all is an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pattern := "*.txt"
			if len(args) > 0 {
				pattern = args[0]
			}

			files, err := batch.FindFiles(ctx, pattern, recursive)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Found %d files to process\n", len(files))

			runner := batch.NewRunner(analyze.New(analyze.Options{
				IncludeReadability: ropts.Settings.Analysis.IncludeReadability && !noReadability,
			}))
			summary := runner.Run(ctx, files)

			for _, item := range summary.Items {
				if item.Err != nil {
					ropts.Log().Warningf("Skipping %s: %v", item.Path, item.Err)
				}
			}

			if output != "" {
				f, err := format.ParseFormat(formatName)
				if err != nil {
					return err
				}
				entries := make([]format.BatchEntry, 0, summary.Succeeded)
				for _, item := range summary.Items {
					if item.Err == nil {
						entries = append(entries, format.BatchEntry{Path: item.Path, Result: item.Result})
					}
				}
				rendered, err := format.RenderBatch(entries, f)
				if err != nil {
					return errors.Errorf("rendering batch results: %w", err)
				}
				if err := fileio.WriteTextFile(ctx, output, rendered); err != nil {
					return errors.Errorf("saving batch results: %w", err)
				}
				ropts.Log().Successf("Batch results saved to %s", output)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n📊 Batch Analysis Summary (%d files)\n", summary.Succeeded)
			fmt.Fprintf(out, "Total words: %d\n", summary.TotalWords)
			fmt.Fprintf(out, "Total characters: %d\n", summary.TotalChars)
			for _, item := range summary.Items {
				ropts.Log().LogFileResult(ctx, log.FileResult{
					Name:    filepath.Base(item.Path),
					Words:   item.Result.Int("basic_stats", "word_count"),
					Chars:   item.Result.Int("basic_stats", "character_count"),
					Skipped: item.Err != nil,
				})
			}
			ropts.Log().Progress(summary.Succeeded, len(files))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "search subdirectories")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for combined results")
	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "output format for combined results (json, csv, markdown)")
	cmd.Flags().BoolVar(&noReadability, "no-readability", false, "skip readability analysis")

	return cmd
}
