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

// Package fileio reads and writes text files with encoding probing and
// backup support. All content is held fully in memory.
package fileio

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// 📖 ReadTextFile reads the full contents of a text file, probing encodings
// in order: UTF-8, UTF-8 with BOM, Latin-1, Windows-1252. The probe order
// mirrors the tool's historical behavior: Latin-1 accepts every byte
// sequence, so Windows-1252 is only reachable if that probe is removed.
func ReadTextFile(ctx context.Context, path string) (string, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	if bytes.HasPrefix(data, utf8BOM) {
		decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
		if err == nil {
			logger.Debug().Str("path", path).Str("encoding", "utf-8-sig").Msg("decoded file")
			return string(decoded), nil
		}
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	for _, attempt := range []struct {
		name string
		cm   *charmap.Charmap
	}{
		{"latin-1", charmap.ISO8859_1},
		{"windows-1252", charmap.Windows1252},
	} {
		decoded, err := attempt.cm.NewDecoder().Bytes(data)
		if err == nil {
			logger.Debug().Str("path", path).Str("encoding", attempt.name).Msg("decoded file")
			return string(decoded), nil
		}
	}

	return "", &EncodingError{
		Path:      path,
		Attempted: []string{"utf-8", "utf-8-sig", "latin-1", "windows-1252"},
	}
}

// ✍️ WriteTextFile writes content to path as UTF-8, creating parent
// directories as needed.
func WriteTextFile(ctx context.Context, path string, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// 💾 CreateBackup writes a copy of path's current content to path+suffix.
// The backup is only written if the source file exists; the returned path
// names the backup location either way.
func CreateBackup(ctx context.Context, path string, suffix string) (string, error) {
	backupPath := path + suffix

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return backupPath, nil
		}
		return "", &ReadError{Path: path, Err: err}
	}

	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", &WriteError{Path: backupPath, Err: err}
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("backup", backupPath).Msg("created backup")
	return backupPath, nil
}

// Info describes a file on disk for reporting purposes.
type Info struct {
	Name         string
	SizeBytes    int64
	Extension    string
	AbsolutePath string
}

// 🔍 Stat returns reporting metadata for path.
func Stat(path string) (*Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Info{
		Name:         filepath.Base(path),
		SizeBytes:    st.Size(),
		Extension:    filepath.Ext(path),
		AbsolutePath: abs,
	}, nil
}
