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
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// 🔄 reverseText reverses character order. ByLines reverses line order
// (line content untouched) and takes precedence over ByWords, which
// reverses whitespace-delimited tokens joined by single spaces.
func reverseText(text string, opts Options) string {
	switch {
	case opts.ByLines:
		lines := strings.Split(text, "\n")
		reverseSlice(lines)
		return strings.Join(lines, "\n")
	case opts.ByWords:
		words := strings.Fields(text)
		reverseSlice(words)
		return strings.Join(words, " ")
	default:
		runes := []rune(text)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	}
}

func reverseSlice(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// 🔀 sortLines sorts lines lexicographically. Deduplication happens before
// sorting and preserves first-seen order; the sort itself is stable.
func sortLines(text string, opts Options) string {
	lines := strings.Split(text, "\n")

	if opts.RemoveDuplicates {
		seen := make(map[string]struct{}, len(lines))
		kept := lines[:0]
		for _, line := range lines {
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}
			kept = append(kept, line)
		}
		lines = kept
	}

	key := func(s string) string { return s }
	if opts.IgnoreCase {
		key = strings.ToLower
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if opts.Reverse {
			return key(lines[i]) > key(lines[j])
		}
		return key(lines[i]) < key(lines[j])
	})

	return strings.Join(lines, "\n")
}

// removeEmptyLines drops lines that are empty or whitespace-only,
// preserving the order of the remaining lines.
func removeEmptyLines(text string, _ Options) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// 🔢 addLineNumbers prefixes each line with a right-justified number. Field
// width defaults to the digit count of the final line number.
func addLineNumbers(text string, opts Options) string {
	lines := strings.Split(text, "\n")

	start := opts.Start
	if start == 0 {
		start = 1
	}
	separator := opts.Separator
	if separator == "" {
		separator = ": "
	}
	width := opts.Width
	if width == 0 {
		width = len(strconv.Itoa(len(lines) + start - 1))
	}

	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("%*d%s%s", width, start+i, separator, line)
	}
	return strings.Join(numbered, "\n")
}
