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

package fileio

import (
	"fmt"
	"strings"
)

// ReadError indicates that a source file could not be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// EncodingError indicates that none of the attempted encodings could decode the file
type EncodingError struct {
	Path      string
	Attempted []string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decoding file %s: no supported encoding matched (tried %s)",
		e.Path, strings.Join(e.Attempted, ", "))
}

// WriteError indicates that a destination file could not be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
