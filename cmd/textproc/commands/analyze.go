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
	"github.com/walteh/textproc/pkg/fileio"
	"github.com/walteh/textproc/pkg/format"
	"gitlab.com/tozd/go/errors"
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd(ropts *opts.RootOpts) *cobra.Command {
	var (
		output        string
		save          string
		verbose       bool
		noReadability bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a text file and generate detailed statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			formatName := output
			if formatName == "" {
				formatName = ropts.Settings.DefaultOutputFormat
			}
			f, err := format.ParseFormat(formatName)
			if err != nil {
				return err
			}

			analyzer := analyze.New(analyze.Options{
				IncludeReadability: ropts.Settings.Analysis.IncludeReadability && !noReadability,
			})
			result, err := analyzer.AnalyzeFile(ctx, path)
			if err != nil {
				return errors.Errorf("analyzing file: %w", err)
			}

			if verbose {
				ropts.Log().Successf("Analysis complete for %s", path)
			}

			// Text output without a save target gets the console table.
			if f == format.FormatText && save == "" {
				table, err := format.RenderTable(result, fmt.Sprintf("Analysis Results: %s", filepath.Base(path)))
				if err != nil {
					return errors.Errorf("rendering table: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			}

			rendered, err := format.Render(result, f)
			if err != nil {
				return errors.Errorf("rendering results: %w", err)
			}

			if save != "" {
				if err := fileio.WriteTextFile(ctx, save, rendered); err != nil {
					return errors.Errorf("saving results: %w", err)
				}
				ropts.Log().Successf("Results saved to %s", save)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format (text, json, csv, markdown)")
	cmd.Flags().StringVar(&save, "save", "", "save results to file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include detailed progress output")
	cmd.Flags().BoolVar(&noReadability, "no-readability", false, "skip readability analysis")

	return cmd
}
