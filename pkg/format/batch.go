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

package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/walteh/textproc/pkg/analyze"
	"gitlab.com/tozd/go/errors"
)

// 📦 BatchEntry pairs a file path with its analysis result
type BatchEntry struct {
	Path   string
	Result *analyze.Result
}

// 🖨️ RenderBatch formats combined multi-file results: a path-keyed JSON
// object, path-prefixed CSV rows, or per-file Markdown sections.
func RenderBatch(entries []BatchEntry, f Format) (string, error) {
	switch f {
	case FormatJSON:
		return renderBatchJSON(entries)
	case FormatCSV:
		return renderBatchCSV(entries)
	case FormatMarkdown:
		return renderBatchMarkdown(entries), nil
	case FormatText:
		var parts []string
		for _, e := range entries {
			parts = append(parts, e.Path+"\n"+renderText(e.Result))
		}
		return strings.Join(parts, "\n\n"), nil
	default:
		_, err := ParseFormat(string(f))
		if err == nil {
			err = errors.Errorf("unhandled format %q", f)
		}
		return "", err
	}
}

func renderBatchJSON(entries []BatchEntry) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Path)
		if err != nil {
			return "", errors.Errorf("marshaling path: %w", err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		raw, err := e.Result.MarshalJSON()
		if err != nil {
			return "", errors.Errorf("marshaling result for %s: %w", e.Path, err)
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')

	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return "", errors.Errorf("indenting batch json: %w", err)
	}
	return indented.String(), nil
}

func renderBatchCSV(entries []BatchEntry) (string, error) {
	var b strings.Builder
	b.WriteString("Metric,Value\n")
	for _, e := range entries {
		body, err := renderCSV(e.Result)
		if err != nil {
			return "", err
		}
		for _, line := range strings.Split(body, "\n")[1:] {
			fmt.Fprintf(&b, "%s.%s\n", e.Path, line)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func renderBatchMarkdown(entries []BatchEntry) string {
	var b strings.Builder
	b.WriteString("# Batch Analysis Results\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n## %s\n", e.Path)
		for _, section := range e.Result.Sections {
			fmt.Fprintf(&b, "\n### %s\n\n", humanize(section.Name))
			writeMarkdownMetrics(&b, section.Metrics, 4)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
