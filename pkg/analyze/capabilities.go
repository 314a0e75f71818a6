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

package analyze

import (
	"regexp"
	"strings"
)

// 🔌 SentenceSplitter breaks text into sentences
type SentenceSplitter interface {
	// Split returns the sentences of text, trimmed, without empties
	Split(text string) []string
}

// 🏷️ Tag pairs a token with its part-of-speech label
type Tag struct {
	Token string
	POS   string
}

// 🔌 POSTagger assigns part-of-speech labels to tokens
type POSTagger interface {
	Tag(tokens []string) []Tag
}

// 🔌 ReadabilityScorer computes readability metrics over raw text
type ReadabilityScorer interface {
	Score(text string) []Metric
}

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]+`)

// RegexSentenceSplitter is the fallback splitter: sentences end at runs of
// '.', '!' or '?'. It is deliberately naive about abbreviations.
type RegexSentenceSplitter struct{}

func (RegexSentenceSplitter) Split(text string) []string {
	parts := sentenceBoundaryRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
