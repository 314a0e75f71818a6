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

package operation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var digitRunRe = regexp.MustCompile(`\p{Nd}+`)

// 🔢 removeNumbers deletes digit runs. With KeepYears, a free-standing run
// of exactly four digits (a year) survives; runs attached to a word
// character survive too, since they are part of an identifier rather than
// a number on its own.
func removeNumbers(text string, opts Options) string {
	var result string
	if opts.KeepYears {
		result = removeFreestandingDigitRuns(text)
	} else {
		result = digitRunRe.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(result, " "))
}

// removeFreestandingDigitRuns drops maximal digit runs of length 1-3 and
// 5+ whose neighbours are not word characters. RE2 has no Unicode word
// boundary, so the flanking runes are checked by hand.
func removeFreestandingDigitRuns(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range digitRunRe.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if utf8.RuneCountInString(text[start:end]) == 4 || wordAdjacent(text, start, end) {
			continue
		}
		b.WriteString(text[last:start])
		last = end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// wordAdjacent reports whether the [start,end) slice of text touches a
// word character (letter, number, or underscore) on either side.
func wordAdjacent(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return true
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
