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

// Package analyze computes text statistics as ordered sections of metrics.
// The reducers are pure; sentence splitting, POS tagging and readability
// scoring are injectable capabilities with built-in fallbacks.
package analyze

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/textproc/pkg/fileio"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures an Analyzer. Nil capabilities get the built-in
// fallbacks; IncludeReadability gates the readability section.
type Options struct {
	IncludeReadability bool
	Splitter           SentenceSplitter
	Tagger             POSTagger
	Scorer             ReadabilityScorer
}

// 🔬 Analyzer runs the statistics reducers over text
type Analyzer struct {
	includeReadability bool
	splitter           SentenceSplitter
	tagger             POSTagger
	scorer             ReadabilityScorer
}

// 🏭 New creates an analyzer, filling unset capabilities with fallbacks.
func New(opts Options) *Analyzer {
	if opts.Splitter == nil {
		opts.Splitter = RegexSentenceSplitter{}
	}
	if opts.Tagger == nil {
		opts.Tagger = SimpleTagger{}
	}
	if opts.Scorer == nil {
		opts.Scorer = FleschScorer{}
	}
	return &Analyzer{
		includeReadability: opts.IncludeReadability,
		splitter:           opts.Splitter,
		tagger:             opts.Tagger,
		scorer:             opts.Scorer,
	}
}

// 📊 AnalyzeText runs every reducer over text. Empty text yields
// zero-valued sections, never an error.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) *Result {
	zerolog.Ctx(ctx).Debug().Int("bytes", len(text)).Msg("analyzing text")

	sections := []Section{
		{Name: "basic_stats", Metrics: basicStats(text)},
		{Name: "word_analysis", Metrics: wordAnalysis(text)},
		{Name: "sentence_analysis", Metrics: sentenceAnalysis(text, a.splitter)},
		{Name: "character_analysis", Metrics: characterAnalysis(text)},
	}

	if a.includeReadability {
		sections = append(sections, Section{Name: "readability", Metrics: a.scorer.Score(text)})
	}
	sections = append(sections, Section{Name: "linguistic_analysis", Metrics: linguisticAnalysis(text, a.tagger)})

	return &Result{Sections: sections}
}

// 📂 AnalyzeFile reads path and analyzes it, appending a file_info section.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*Result, error) {
	text, err := fileio.ReadTextFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	result := a.AnalyzeText(ctx, text)

	info, err := fileio.Stat(path)
	if err != nil {
		return nil, errors.Errorf("stating file: %w", err)
	}
	result.Sections = append(result.Sections, Section{
		Name: "file_info",
		Metrics: []Metric{
			{"filename", info.Name},
			{"file_size_bytes", info.SizeBytes},
			{"file_extension", info.Extension},
			{"absolute_path", info.AbsolutePath},
		},
	})

	return result, nil
}
