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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📝 Overlay is a partially-specified Settings: nil fields mean "keep the
// base value" when merged.
type Overlay struct {
	DefaultOutputFormat *string           `yaml:"default_output_format" hcl:"default_output_format,optional"`
	Analysis            *AnalysisOverlay  `yaml:"analysis" hcl:"analysis,block"`
	Transform           *TransformOverlay `yaml:"transform" hcl:"transform,block"`
}

type AnalysisOverlay struct {
	IncludeReadability *bool `yaml:"include_readability" hcl:"include_readability,optional"`
	IncludeSentiment   *bool `yaml:"include_sentiment" hcl:"include_sentiment,optional"`
}

type TransformOverlay struct {
	PreserveOriginal *bool   `yaml:"preserve_original" hcl:"preserve_original,optional"`
	BackupSuffix     *string `yaml:"backup_suffix" hcl:"backup_suffix,optional"`
}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the overlay from bytes
	Parse(ctx context.Context, data []byte) (*Overlay, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the list of available parsers
var parsers []Parser

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Overlay, error) {
	var overlay Overlay
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&overlay); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &overlay, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Overlay, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var overlay Overlay
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &overlay)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &overlay, nil
}
