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
	"bytes"
	"encoding/json"
)

// 📊 Metric is one named value inside a section. Value is a scalar
// (int, int64, float64, string) or a nested []Metric for grouped values
// such as word frequencies.
type Metric struct {
	Key   string
	Value any
}

// 📦 Section is an ordered group of metrics
type Section struct {
	Name    string
	Metrics []Metric
}

// 📋 Result is the full analysis of one text: ordered sections of ordered
// metrics. It is immutable once produced and recomputed per call.
type Result struct {
	Sections []Section
}

// 🔍 Lookup returns the value of section/key, or false when absent.
func (r *Result) Lookup(section string, key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	for _, s := range r.Sections {
		if s.Name != section {
			continue
		}
		for _, m := range s.Metrics {
			if m.Key == key {
				return m.Value, true
			}
		}
	}
	return nil, false
}

// Int is a Lookup convenience for integer metrics; absent or non-integer
// values yield zero.
func (r *Result) Int(section string, key string) int {
	v, ok := r.Lookup(section, key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

// MarshalJSON preserves section and metric ordering as stable nested
// objects.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range r.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(&buf, s.Name); err != nil {
			return nil, err
		}
		if err := writeMetricsJSON(&buf, s.Metrics); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMetricsJSON(buf *bytes.Buffer, metrics []Metric) error {
	buf.WriteByte('{')
	for i, m := range metrics {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(buf, m.Key); err != nil {
			return err
		}
		if nested, ok := m.Value.([]Metric); ok {
			if err := writeMetricsJSON(buf, nested); err != nil {
				return err
			}
			continue
		}
		raw, err := json.Marshal(m.Value)
		if err != nil {
			return err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	raw, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(raw)
	buf.WriteByte(':')
	return nil
}
