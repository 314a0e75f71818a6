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
	"fmt"

	"github.com/pterm/pterm"
	"github.com/walteh/textproc/pkg/analyze"
	"gitlab.com/tozd/go/errors"
)

// 🖥️ RenderTable renders a result as a console table with dotted metric
// paths, suitable for direct printing.
func RenderTable(res *analyze.Result, title string) (string, error) {
	data := pterm.TableData{{"Metric", "Value"}}
	for _, section := range res.Sections {
		data = appendTableRows(data, section.Name, section.Metrics)
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering table: %w", err)
	}

	if title == "" {
		return table, nil
	}
	return pterm.DefaultSection.Sprint(title) + table, nil
}

func appendTableRows(data pterm.TableData, prefix string, metrics []analyze.Metric) pterm.TableData {
	for _, m := range metrics {
		key := prefix + "." + m.Key
		if nested, ok := m.Value.([]analyze.Metric); ok {
			data = appendTableRows(data, key, nested)
			continue
		}
		data = append(data, []string{key, fmt.Sprintf("%v", m.Value)})
	}
	return data
}
