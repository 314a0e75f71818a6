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
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RE2's \w is ASCII-only; the explicit class keeps accented letters inside
// their tokens.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// basicStats counts characters, words, lines, paragraphs and blank lines.
// Characters are runes, not bytes.
func basicStats(text string) []Metric {
	lines := strings.Split(text, "\n")

	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
		}
	}

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return []Metric{
		{"character_count", utf8.RuneCountInString(text)},
		{"character_count_no_spaces", utf8.RuneCountInString(strings.ReplaceAll(text, " ", ""))},
		{"word_count", len(strings.Fields(text))},
		{"line_count", len(lines)},
		{"paragraph_count", paragraphs},
		{"blank_lines", blank},
	}
}

// wordAnalysis reduces the lowercased word tokens: uniqueness, lengths,
// extremes, and the top-10 frequency table in first-seen order for ties.
func wordAnalysis(text string) []Metric {
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	if len(words) == 0 {
		return []Metric{
			{"unique_words", 0},
			{"average_word_length", 0.0},
			{"longest_word", ""},
			{"shortest_word", ""},
			{"word_frequency", []Metric{}},
		}
	}

	freq := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	totalLen := 0
	longest, shortest := words[0], words[0]
	for _, w := range words {
		if _, seen := freq[w]; !seen {
			order = append(order, w)
		}
		freq[w]++
		n := utf8.RuneCountInString(w)
		totalLen += n
		if n > utf8.RuneCountInString(longest) {
			longest = w
		}
		if n < utf8.RuneCountInString(shortest) {
			shortest = w
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > 10 {
		order = order[:10]
	}
	top := make([]Metric, len(order))
	for i, w := range order {
		top[i] = Metric{w, freq[w]}
	}

	return []Metric{
		{"unique_words", len(freq)},
		{"average_word_length", round2(float64(totalLen) / float64(len(words)))},
		{"longest_word", longest},
		{"shortest_word", shortest},
		{"word_frequency", top},
	}
}

// sentenceAnalysis reduces the splitter's sentences; lengths are measured
// in words.
func sentenceAnalysis(text string, splitter SentenceSplitter) []Metric {
	sentences := splitter.Split(text)

	if len(sentences) == 0 {
		return []Metric{
			{"sentence_count", 0},
			{"average_sentence_length", 0.0},
			{"longest_sentence", ""},
			{"shortest_sentence", ""},
		}
	}

	totalWords := 0
	longest, shortest := sentences[0], sentences[0]
	for _, s := range sentences {
		n := len(strings.Fields(s))
		totalWords += n
		if n > len(strings.Fields(longest)) {
			longest = s
		}
		if n < len(strings.Fields(shortest)) {
			shortest = s
		}
	}

	return []Metric{
		{"sentence_count", len(sentences)},
		{"average_sentence_length", round2(float64(totalWords) / float64(len(sentences)))},
		{"longest_sentence", longest},
		{"shortest_sentence", shortest},
	}
}

// characterAnalysis buckets every rune into character classes.
func characterAnalysis(text string) []Metric {
	var upper, lower, digits, spaces, punct, special int
	for _, r := range text {
		if unicode.IsUpper(r) {
			upper++
		}
		if unicode.IsLower(r) {
			lower++
		}
		if unicode.IsDigit(r) {
			digits++
		}
		if unicode.IsSpace(r) {
			spaces++
		}
		if strings.ContainsRune(`.,!?;:"()[]{}`, r) {
			punct++
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			special++
		}
	}

	return []Metric{
		{"uppercase_letters", upper},
		{"lowercase_letters", lower},
		{"digits", digits},
		{"spaces", spaces},
		{"punctuation", punct},
		{"special_characters", special},
	}
}
