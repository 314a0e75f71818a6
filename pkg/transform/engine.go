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

// Package transform applies named operations to text and to files. For
// files it resolves the destination and enforces the backup-before-write
// ordering so an in-place overwrite never loses the original content.
package transform

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/textproc/pkg/fileio"
	"github.com/walteh/textproc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// DefaultBackupSuffix is appended to the source path for in-place backups
const DefaultBackupSuffix = ".bak"

// 💾 BackupPolicy governs whether and where pre-transform content is kept
// before an in-place overwrite.
type BackupPolicy struct {
	Enabled bool
	Suffix  string
}

// 🔧 Options configures the engine
type Options struct {
	Backup BackupPolicy
}

// 🎮 Engine dispatches operations and performs file writes
type Engine struct {
	backup BackupPolicy
}

// 🏭 New creates an engine. An enabled backup policy with no suffix gets
// the default suffix.
func New(opts Options) *Engine {
	if opts.Backup.Enabled && opts.Backup.Suffix == "" {
		opts.Backup.Suffix = DefaultBackupSuffix
	}
	return &Engine{backup: opts.Backup}
}

// 📋 Request describes one file transformation
type Request struct {
	// SourcePath is the file to read
	SourcePath string
	// Operation is the registered operation name
	Operation string
	// Options carries the per-operation flags
	Options operation.Options
	// OutputPath is the destination; empty or equal to SourcePath means
	// in-place, which triggers the backup policy
	OutputPath string
}

// ApplyToText dispatches an operation against in-memory text.
func (e *Engine) ApplyToText(ctx context.Context, text string, name string, opts operation.Options) (string, error) {
	result, err := operation.Dispatch(text, name, opts)
	if err != nil {
		return "", errors.Errorf("dispatching operation: %w", err)
	}
	return result, nil
}

// 🏃 ApplyToFile reads the source, dispatches the operation, and writes the
// result to the resolved destination, returning that destination path.
// Nothing is written if reading or dispatch fails, so the source stays
// byte-identical on error.
func (e *Engine) ApplyToFile(ctx context.Context, req Request) (string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("source", req.SourcePath).
		Str("operation", req.Operation).
		Msg("transforming file")

	text, err := fileio.ReadTextFile(ctx, req.SourcePath)
	if err != nil {
		return "", errors.Errorf("reading source: %w", err)
	}

	transformed, err := operation.Dispatch(text, req.Operation, req.Options)
	if err != nil {
		return "", errors.Errorf("dispatching operation: %w", err)
	}

	dest := req.OutputPath
	if dest == "" {
		dest = req.SourcePath
	}

	// In-place overwrite: the backup of the original content must land on
	// disk before the destination write so the original stays recoverable
	// even if that write fails.
	if e.backup.Enabled && samePath(dest, req.SourcePath) {
		if _, err := fileio.CreateBackup(ctx, req.SourcePath, e.backup.Suffix); err != nil {
			return "", errors.Errorf("creating backup: %w", err)
		}
	}

	if err := fileio.WriteTextFile(ctx, dest, transformed); err != nil {
		return "", errors.Errorf("writing destination: %w", err)
	}

	logger.Debug().Str("destination", dest).Msg("transformed file written")
	return dest, nil
}

// BackupPathFor returns where an in-place transform of path would place its
// backup, or "" when backups are disabled.
func (e *Engine) BackupPathFor(path string) string {
	if !e.backup.Enabled {
		return ""
	}
	return path + e.backup.Suffix
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
