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
)

var (
	multiSpaceRe  = regexp.MustCompile(` +`)
	spaceBefore   = regexp.MustCompile(` +([,.!?;:])`)
	noSpaceAfter  = regexp.MustCompile(`([,.!?;:])([^\s])`)
	fancyQuotesRe = regexp.MustCompile("[“”‘’`]")
)

// 🧹 cleanWhitespace strips trailing whitespace per line, collapses space
// runs, optionally drops blank lines, and trims the outer edges.
func cleanWhitespace(text string, opts Options) string {
	result := text

	if opts.StripLines {
		lines := strings.Split(result, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		result = strings.Join(lines, "\n")
	}

	if opts.NormalizeSpaces {
		result = multiSpaceRe.ReplaceAllString(result, " ")
	}

	if opts.RemoveEmptyLines {
		lines := strings.Split(result, "\n")
		kept := lines[:0]
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				kept = append(kept, line)
			}
		}
		result = strings.Join(kept, "\n")
	}

	return strings.TrimSpace(result)
}

// ✨ normalizeText cleans whitespace, then fixes punctuation spacing and
// standardizes quote characters.
func normalizeText(text string, opts Options) string {
	result := cleanWhitespace(text, opts)

	if opts.FixPunctuation {
		// No whitespace before punctuation, exactly one space after it
		// when a non-space character follows.
		result = spaceBefore.ReplaceAllString(result, "$1")
		result = noSpaceAfter.ReplaceAllString(result, "$1 $2")
	}

	if opts.StandardizeQuotes {
		result = fancyQuotesRe.ReplaceAllString(result, `"`)
	}

	return result
}

// RE2's \w is ASCII-only; the explicit classes keep accented letters from
// Latin-1 and Windows-1252 sources intact.
var punctuationRes = map[[2]bool]*regexp.Regexp{
	{false, false}: regexp.MustCompile(`[^\p{L}\p{N}_\s]`),
	{true, false}:  regexp.MustCompile(`[^\p{L}\p{N}_\s.]`),
	{false, true}:  regexp.MustCompile(`[^\p{L}\p{N}_\s']`),
	{true, true}:   regexp.MustCompile(`[^\p{L}\p{N}_\s.']`),
}

// removePunctuation deletes characters that are neither word characters nor
// whitespace, optionally keeping periods and/or apostrophes.
func removePunctuation(text string, opts Options) string {
	re := punctuationRes[[2]bool{opts.KeepPeriods, opts.KeepApostrophes}]
	return re.ReplaceAllString(text, "")
}
