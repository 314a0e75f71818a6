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

// Package config holds the tool settings: explicit defaults, a pure merge
// with user overrides, and YAML/HCL file loading behind a parser registry.
package config

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFile is probed when no --config flag is given
const DefaultConfigFile = ".textproc.yaml"

// 🔬 AnalysisSettings controls the analyze commands
type AnalysisSettings struct {
	IncludeReadability bool `yaml:"include_readability" json:"include_readability"`
	IncludeSentiment   bool `yaml:"include_sentiment" json:"include_sentiment"`
}

// 🔄 TransformSettings controls the transform command
type TransformSettings struct {
	PreserveOriginal bool   `yaml:"preserve_original" json:"preserve_original"`
	BackupSuffix     string `yaml:"backup_suffix" json:"backup_suffix"`
}

// 📚 Settings is the complete effective configuration
type Settings struct {
	DefaultOutputFormat string            `yaml:"default_output_format" json:"default_output_format"`
	Analysis            AnalysisSettings  `yaml:"analysis" json:"analysis"`
	Transform           TransformSettings `yaml:"transform" json:"transform"`
}

// 🏭 Default returns the built-in settings.
func Default() Settings {
	return Settings{
		DefaultOutputFormat: "text",
		Analysis: AnalysisSettings{
			IncludeReadability: true,
			IncludeSentiment:   false,
		},
		Transform: TransformSettings{
			PreserveOriginal: true,
			BackupSuffix:     ".bak",
		},
	}
}

// 🔀 Merge overlays the set fields of override onto base and returns the
// result. Merge is pure: neither argument is modified.
func Merge(base Settings, override Overlay) Settings {
	merged := base
	if override.DefaultOutputFormat != nil {
		merged.DefaultOutputFormat = *override.DefaultOutputFormat
	}
	if override.Analysis != nil {
		if override.Analysis.IncludeReadability != nil {
			merged.Analysis.IncludeReadability = *override.Analysis.IncludeReadability
		}
		if override.Analysis.IncludeSentiment != nil {
			merged.Analysis.IncludeSentiment = *override.Analysis.IncludeSentiment
		}
	}
	if override.Transform != nil {
		if override.Transform.PreserveOriginal != nil {
			merged.Transform.PreserveOriginal = *override.Transform.PreserveOriginal
		}
		if override.Transform.BackupSuffix != nil {
			merged.Transform.BackupSuffix = *override.Transform.BackupSuffix
		}
	}
	return merged
}

// 🎯 Load reads a settings file and merges it over the defaults. A missing
// file is not an error: the defaults apply.
func Load(ctx context.Context, path string) (Settings, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return Default(), nil
		}
		return Settings{}, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return Settings{}, errors.Errorf("no parser found for file: %s", path)
	}

	overlay, err := p.Parse(ctx, data)
	if err != nil {
		return Settings{}, errors.Errorf("parsing config: %w", err)
	}

	logger.Debug().Str("path", path).Msg("loaded configuration")
	return Merge(Default(), *overlay), nil
}

// 🔍 Get resolves a dotted key path like "analysis.include_readability".
func (s Settings) Get(key string) (any, bool) {
	tree := map[string]any{
		"default_output_format": s.DefaultOutputFormat,
		"analysis": map[string]any{
			"include_readability": s.Analysis.IncludeReadability,
			"include_sentiment":   s.Analysis.IncludeSentiment,
		},
		"transform": map[string]any{
			"preserve_original": s.Transform.PreserveOriginal,
			"backup_suffix":     s.Transform.BackupSuffix,
		},
	}

	var current any = tree
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
