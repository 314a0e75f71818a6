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

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textproc/cmd/textproc/commands"
	"github.com/walteh/textproc/cmd/textproc/opts"
	"github.com/walteh/textproc/pkg/config"
	"github.com/walteh/textproc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// NewRootCmd builds the textproc command tree. Configuration is loaded in
// the persistent pre-run so every subcommand sees the effective settings.
func NewRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:           "textproc",
		Short:         "Analyze and transform plain-text documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			logger := log.New(os.Stdout, level)
			ctx := log.NewContext(cmd.Context(), logger)
			cmd.SetContext(ctx)

			settings, err := config.Load(ctx, configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			rootOpts.Settings = settings
			rootOpts.ConfigPath = configFile
			rootOpts.Logger = logger

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to configuration file")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		commands.NewAnalyzeCmd(rootOpts),
		commands.NewTransformCmd(rootOpts),
		commands.NewBatchAnalyzeCmd(rootOpts),
		commands.NewInteractiveCmd(rootOpts),
		commands.NewConfigShowCmd(rootOpts),
	)

	return cmd
}
