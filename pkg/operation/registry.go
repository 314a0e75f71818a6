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
	"strings"
)

// Func is a pure text transformation
type Func func(text string, opts Options) string

// 🗺️ entry pairs an operation name with its function
type entry struct {
	name string
	fn   Func
}

// registry is built once at init and read-only thereafter. Order matters:
// it is the order names appear in error messages and help output.
var registry = []entry{
	{"upper", toUpper},
	{"lower", toLower},
	{"title", toTitle},
	{"sentence", toSentenceCase},
	{"clean", cleanWhitespace},
	{"normalize", normalizeText},
	{"remove_punctuation", removePunctuation},
	{"remove_numbers", removeNumbers},
	{"reverse", reverseText},
	{"sort_lines", sortLines},
	{"remove_empty_lines", removeEmptyLines},
	{"add_line_numbers", addLineNumbers},
}

var byName = func() map[string]Func {
	m := make(map[string]Func, len(registry))
	for _, e := range registry {
		m[e.name] = e.fn
	}
	return m
}()

// 🚫 UnknownOperationError is returned when a requested operation name is
// not in the registry. The message enumerates every valid name.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q, available: %s", e.Name, strings.Join(Names(), ", "))
}

// 📝 Names returns the operation names in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// 🎯 Dispatch resolves name to its operation function and applies it to
// text. Dispatch is pure and safe to call concurrently on different inputs.
func Dispatch(text string, name string, opts Options) (string, error) {
	fn, ok := byName[name]
	if !ok {
		return "", &UnknownOperationError{Name: name}
	}
	return fn(text, opts), nil
}
