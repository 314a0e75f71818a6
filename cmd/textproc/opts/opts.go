// Package opts carries shared dependencies for the textproc subcommands.
package opts

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/textproc/pkg/config"
	"github.com/walteh/textproc/pkg/log"
)

// RootOpts holds the dependencies shared by all commands, populated by the
// root command's persistent pre-run.
type RootOpts struct {
	// Settings is the effective configuration (defaults + user overrides)
	Settings config.Settings
	// ConfigPath is the --config flag value, empty when probing the default
	ConfigPath string
	// Logger handles user-facing console output
	Logger *log.Logger
}

// Log returns the logger, falling back to a silent one so subcommands can
// be exercised without the root pre-run.
func (r *RootOpts) Log() *log.Logger {
	if r.Logger == nil {
		r.Logger = log.New(io.Discard, zerolog.Disabled)
	}
	return r.Logger
}
