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

// Package format renders analysis results to the supported output formats
// and to console tables.
package format

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/walteh/textproc/pkg/analyze"
	"gitlab.com/tozd/go/errors"
)

// 📝 Format is a rendering target for analysis results
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCSV, FormatMarkdown}
}

// 🎯 ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", errors.Errorf("unknown output format %q, available: %s", s, strings.Join(names, ", "))
}

// 🖨️ Render formats a result as a string in the requested format.
func Render(res *analyze.Result, f Format) (string, error) {
	switch f {
	case FormatText:
		return renderText(res), nil
	case FormatJSON:
		return renderJSON(res)
	case FormatCSV:
		return renderCSV(res)
	case FormatMarkdown:
		return renderMarkdown(res), nil
	default:
		_, err := ParseFormat(string(f))
		if err == nil {
			err = errors.Errorf("unhandled format %q", f)
		}
		return "", err
	}
}

// humanize turns a metric key into a display label: "basic_stats" becomes
// "Basic Stats".
func humanize(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func renderText(res *analyze.Result) string {
	var b strings.Builder
	for _, section := range res.Sections {
		fmt.Fprintf(&b, "%s:\n", humanize(section.Name))
		writeTextMetrics(&b, section.Metrics, 1)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeTextMetrics(b *strings.Builder, metrics []analyze.Metric, indent int) {
	prefix := strings.Repeat("  ", indent)
	for _, m := range metrics {
		if nested, ok := m.Value.([]analyze.Metric); ok {
			fmt.Fprintf(b, "%s%s:\n", prefix, humanize(m.Key))
			writeTextMetrics(b, nested, indent+1)
			continue
		}
		fmt.Fprintf(b, "%s%s: %v\n", prefix, humanize(m.Key), m.Value)
	}
}

func renderJSON(res *analyze.Result) (string, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", errors.Errorf("marshaling result: %w", err)
	}
	return string(data), nil
}

func renderCSV(res *analyze.Result) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return "", errors.Errorf("writing csv header: %w", err)
	}
	for _, section := range res.Sections {
		if err := writeCSVMetrics(w, section.Name, section.Metrics); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Errorf("flushing csv: %w", err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func writeCSVMetrics(w *csv.Writer, prefix string, metrics []analyze.Metric) error {
	for _, m := range metrics {
		key := prefix + "." + m.Key
		if nested, ok := m.Value.([]analyze.Metric); ok {
			if err := writeCSVMetrics(w, key, nested); err != nil {
				return err
			}
			continue
		}
		if err := w.Write([]string{key, fmt.Sprintf("%v", m.Value)}); err != nil {
			return errors.Errorf("writing csv row: %w", err)
		}
	}
	return nil
}

func renderMarkdown(res *analyze.Result) string {
	var b strings.Builder
	b.WriteString("# Text Analysis Results\n")
	for _, section := range res.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", humanize(section.Name))
		writeMarkdownMetrics(&b, section.Metrics, 3)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeMarkdownMetrics(b *strings.Builder, metrics []analyze.Metric, level int) {
	for _, m := range metrics {
		if nested, ok := m.Value.([]analyze.Metric); ok {
			fmt.Fprintf(b, "\n%s %s\n\n", strings.Repeat("#", level), humanize(m.Key))
			writeMarkdownMetrics(b, nested, level+1)
			continue
		}
		fmt.Fprintf(b, "- **%s**: %v\n", humanize(m.Key), m.Value)
	}
}
