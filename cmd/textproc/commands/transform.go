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
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/textproc/cmd/textproc/opts"
	"github.com/walteh/textproc/pkg/operation"
	"github.com/walteh/textproc/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// NewTransformCmd creates the transform command
func NewTransformCmd(ropts *opts.RootOpts) *cobra.Command {
	var (
		opName   string
		output   string
		noBackup bool
	)
	opOpts := operation.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "transform <file>",
		Short: "Transform a text file with a named operation",
		Long: `Transform applies one of the registered text operations to a file.
Without --output the file is rewritten in place and, unless disabled, the
original content is first backed up next to it.

Operations: ` + strings.Join(operation.Names(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			backupEnabled := ropts.Settings.Transform.PreserveOriginal && !noBackup
			engine := transform.New(transform.Options{
				Backup: transform.BackupPolicy{
					Enabled: backupEnabled,
					Suffix:  ropts.Settings.Transform.BackupSuffix,
				},
			})

			dest, err := engine.ApplyToFile(ctx, transform.Request{
				SourcePath: path,
				Operation:  opName,
				Options:    opOpts,
				OutputPath: output,
			})
			if err != nil {
				return errors.Errorf("transforming file: %w", err)
			}

			ropts.Log().Successf("Transformation complete: %s", dest)
			if backupEnabled && output == "" {
				ropts.Log().Infof("Original backed up to: %s", engine.BackupPathFor(path))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opName, "operation", "", "operation to apply ("+strings.Join(operation.Names(), ", ")+")")
	_ = cmd.MarkFlagRequired("operation")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: overwrite input)")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip creating a backup")

	// Per-operation options; each operation reads only its own.
	cmd.Flags().BoolVar(&opOpts.StripLines, "strip-lines", opOpts.StripLines, "clean: strip trailing whitespace per line")
	cmd.Flags().BoolVar(&opOpts.NormalizeSpaces, "normalize-spaces", opOpts.NormalizeSpaces, "clean: collapse runs of spaces")
	cmd.Flags().BoolVar(&opOpts.RemoveEmptyLines, "remove-empty-lines", opOpts.RemoveEmptyLines, "clean: drop blank lines")
	cmd.Flags().BoolVar(&opOpts.FixPunctuation, "fix-punctuation", opOpts.FixPunctuation, "normalize: fix punctuation spacing")
	cmd.Flags().BoolVar(&opOpts.StandardizeQuotes, "standardize-quotes", opOpts.StandardizeQuotes, "normalize: straighten quote characters")
	cmd.Flags().BoolVar(&opOpts.KeepPeriods, "keep-periods", opOpts.KeepPeriods, "remove_punctuation: retain periods")
	cmd.Flags().BoolVar(&opOpts.KeepApostrophes, "keep-apostrophes", opOpts.KeepApostrophes, "remove_punctuation: retain apostrophes")
	cmd.Flags().BoolVar(&opOpts.KeepYears, "keep-years", opOpts.KeepYears, "remove_numbers: retain 4-digit years")
	cmd.Flags().BoolVar(&opOpts.ByLines, "by-lines", opOpts.ByLines, "reverse: reverse line order")
	cmd.Flags().BoolVar(&opOpts.ByWords, "by-words", opOpts.ByWords, "reverse: reverse word order")
	cmd.Flags().BoolVar(&opOpts.Reverse, "reverse", opOpts.Reverse, "sort_lines: sort descending")
	cmd.Flags().BoolVar(&opOpts.IgnoreCase, "ignore-case", opOpts.IgnoreCase, "sort_lines: case-insensitive")
	cmd.Flags().BoolVar(&opOpts.RemoveDuplicates, "remove-duplicates", opOpts.RemoveDuplicates, "sort_lines: deduplicate lines")
	cmd.Flags().IntVar(&opOpts.Start, "start", opOpts.Start, "add_line_numbers: first line number")
	cmd.Flags().IntVar(&opOpts.Width, "width", opOpts.Width, "add_line_numbers: number field width (0 = auto)")
	cmd.Flags().StringVar(&opOpts.Separator, "separator", opOpts.Separator, "add_line_numbers: separator after the number")

	return cmd
}
