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

// 🔧 Options carries the per-operation flags. Each operation reads only the
// fields documented for it and ignores the rest, so one record serves the
// whole registry. Use DefaultOptions as the starting point: the zero value
// disables the clean/normalize sub-steps that default to on.
type Options struct {
	// clean
	StripLines       bool // strip trailing whitespace per line (default true)
	NormalizeSpaces  bool // collapse runs of spaces to one (default true)
	RemoveEmptyLines bool // drop blank lines (default false)

	// normalize
	FixPunctuation    bool // fix spacing around ,.!?;: (default true)
	StandardizeQuotes bool // replace curly/backtick quotes with " (default true)

	// remove_punctuation
	KeepPeriods     bool // retain periods (default false)
	KeepApostrophes bool // retain apostrophes (default false)

	// remove_numbers
	KeepYears bool // retain exactly-4-digit runs (default false)

	// reverse
	ByLines bool // reverse line order; takes precedence over ByWords
	ByWords bool // reverse whitespace-delimited token order

	// sort_lines
	Reverse          bool // sort descending (default false)
	IgnoreCase       bool // case-insensitive comparison (default false)
	RemoveDuplicates bool // deduplicate preserving first-seen order (default false)

	// add_line_numbers
	Start     int    // first line number (0 means 1)
	Width     int    // number field width (0 means auto)
	Separator string // between number and line ("" means ": ")
}

// 🏭 DefaultOptions returns the documented defaults for every operation.
func DefaultOptions() Options {
	return Options{
		StripLines:        true,
		NormalizeSpaces:   true,
		FixPunctuation:    true,
		StandardizeQuotes: true,
		Start:             1,
		Separator:         ": ",
	}
}
