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

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/textproc/cmd/textproc/opts"
	"github.com/walteh/textproc/pkg/config"
)

// NewConfigShowCmd creates the config-show command
func NewConfigShowCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config-show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSettings(cmd, ropts)
			return nil
		},
	}

	return cmd
}

func printSettings(cmd *cobra.Command, ropts *opts.RootOpts) {
	out := cmd.OutOrStdout()

	configPath := ropts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}

	fmt.Fprintln(out, color.New(color.Bold).Sprint("textproc configuration"))
	fmt.Fprintf(out, "Config file: %s\n", configPath)
	fmt.Fprintf(out, "Default output format: %s\n", ropts.Settings.DefaultOutputFormat)
	fmt.Fprintf(out, "Include readability: %t\n", ropts.Settings.Analysis.IncludeReadability)
	fmt.Fprintf(out, "Include sentiment: %t\n", ropts.Settings.Analysis.IncludeSentiment)
	fmt.Fprintf(out, "Preserve original: %t\n", ropts.Settings.Transform.PreserveOriginal)
	fmt.Fprintf(out, "Backup suffix: %s\n", ropts.Settings.Transform.BackupSuffix)
}
