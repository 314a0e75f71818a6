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
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/textproc/cmd/textproc/opts"
	"github.com/walteh/textproc/pkg/analyze"
	"github.com/walteh/textproc/pkg/format"
	"github.com/walteh/textproc/pkg/operation"
	"github.com/walteh/textproc/pkg/transform"
)

const interactiveHelp = `Available Commands:
  analyze <file>     - Analyze a text file
  transform <file>   - Transform a text file
  config             - Show current configuration
  help               - Show this help message
  quit/exit/q        - Exit interactive mode`

// NewInteractiveCmd creates the interactive command
func NewInteractiveCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Step-by-step text processing prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			analyzer := analyze.New(analyze.Options{
				IncludeReadability: ropts.Settings.Analysis.IncludeReadability,
			})
			engine := transform.New(transform.Options{
				Backup: transform.BackupPolicy{
					Enabled: ropts.Settings.Transform.PreserveOriginal,
					Suffix:  ropts.Settings.Transform.BackupSuffix,
				},
			})

			fmt.Fprintln(cmd.OutOrStdout(), "🚀 Welcome to textproc interactive mode!")
			fmt.Fprintln(cmd.OutOrStdout(), "Type 'help' for available commands or 'quit' to exit.")

			for {
				line, err := pterm.DefaultInteractiveTextInput.Show("textproc>")
				if err != nil {
					// Input closed; leave the loop quietly.
					return nil
				}
				line = strings.TrimSpace(line)

				switch {
				case line == "":
					continue

				case line == "quit", line == "exit", line == "q":
					fmt.Fprintln(cmd.OutOrStdout(), "👋 Goodbye!")
					return nil

				case line == "help":
					fmt.Fprintln(cmd.OutOrStdout(), interactiveHelp)

				case line == "config":
					printSettings(cmd, ropts)

				case strings.HasPrefix(line, "analyze "):
					path := strings.TrimSpace(strings.TrimPrefix(line, "analyze "))
					if _, err := os.Stat(path); err != nil {
						ropts.Log().Errorf("File not found: %s", path)
						continue
					}
					result, err := analyzer.AnalyzeFile(ctx, path)
					if err != nil {
						ropts.Log().Errorf("%v", err)
						continue
					}
					table, err := format.RenderTable(result, fmt.Sprintf("Analysis: %s", filepath.Base(path)))
					if err != nil {
						ropts.Log().Errorf("%v", err)
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), table)

				case strings.HasPrefix(line, "transform "):
					path := strings.TrimSpace(strings.TrimPrefix(line, "transform "))
					if _, err := os.Stat(path); err != nil {
						ropts.Log().Errorf("File not found: %s", path)
						continue
					}
					opName, err := pterm.DefaultInteractiveTextInput.Show("Enter transformation operation")
					if err != nil {
						return nil
					}
					dest, err := engine.ApplyToFile(ctx, transform.Request{
						SourcePath: path,
						Operation:  strings.TrimSpace(opName),
						Options:    operation.DefaultOptions(),
					})
					if err != nil {
						ropts.Log().Errorf("%v", err)
						continue
					}
					ropts.Log().Successf("Transformed: %s", dest)

				default:
					ropts.Log().Errorf("Unknown command: %s", line)
					fmt.Fprintln(cmd.OutOrStdout(), "Type 'help' for available commands.")
				}
			}
		},
	}

	return cmd
}
