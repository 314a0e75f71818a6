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
	"strings"
	"unicode"
)

// 📐 FleschScorer is the built-in ReadabilityScorer: classic formulas over
// a vowel-group syllable heuristic. Scores are approximations, good enough
// to rank documents rather than grade students.
type FleschScorer struct{}

func (FleschScorer) Score(text string) []Metric {
	words := strings.Fields(text)
	zero := []Metric{
		{"flesch_reading_ease", 0.0},
		{"flesch_kincaid_grade", 0.0},
		{"gunning_fog", 0.0},
		{"automated_readability_index", 0.0},
		{"coleman_liau_index", 0.0},
	}
	if len(words) == 0 {
		return zero
	}

	sentences := RegexSentenceSplitter{}.Split(text)
	sentenceCount := len(sentences)
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	var syllables, complexWords, letters int
	for _, w := range words {
		s := syllableCount(w)
		syllables += s
		if s >= 3 {
			complexWords++
		}
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				letters++
			}
		}
	}

	wordCount := float64(len(words))
	wps := wordCount / float64(sentenceCount)
	spw := float64(syllables) / wordCount
	lpw := float64(letters) / wordCount

	// Coleman-Liau operates per 100 words.
	l := lpw * 100
	s := float64(sentenceCount) / wordCount * 100

	return []Metric{
		{"flesch_reading_ease", round2(206.835 - 1.015*wps - 84.6*spw)},
		{"flesch_kincaid_grade", round2(0.39*wps + 11.8*spw - 15.59)},
		{"gunning_fog", round2(0.4 * (wps + 100*float64(complexWords)/wordCount))},
		{"automated_readability_index", round2(4.71*lpw + 0.5*wps - 21.43)},
		{"coleman_liau_index", round2(0.0588*l - 0.296*s - 15.8)},
	}
}

// syllableCount approximates syllables as vowel groups, discounting a
// trailing silent 'e'. Every word counts at least one.
func syllableCount(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 1
	}

	isVowel := func(r rune) bool { return strings.ContainsRune("aeiouy", r) }

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
