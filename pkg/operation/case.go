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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 🔠 toUpper uppercases all characters
func toUpper(text string, _ Options) string {
	return strings.ToUpper(text)
}

// 🔡 toLower lowercases all characters
func toLower(text string, _ Options) string {
	return strings.ToLower(text)
}

// toTitle title-cases each word. A fresh caser per call keeps dispatch safe
// for concurrent use (cases.Caser carries internal state).
func toTitle(text string, _ Options) string {
	return cases.Title(language.Und).String(text)
}

// toSentenceCase uppercases the first character and lowercases the rest
func toSentenceCase(text string, _ Options) string {
	if text == "" {
		return text
	}
	runes := []rune(text)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
