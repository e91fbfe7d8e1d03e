/*
 * Copyright 2025 The TsvKit Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package fields splits and joins delimiter-separated record lines.
//
// Splitting is exact: a single delimiter byte separates fields, nothing is
// trimmed, and consecutive delimiters produce empty fields. Join is the
// inverse of Split for any delimiter that does not occur inside a field.
package fields

import (
	"errors"
	"strings"
)

// ErrMalformedLine reports a line with fewer fields than the operation requires.
var ErrMalformedLine = errors.New("malformed line: missing field delimiter")

// Split splits line into fields on the single-byte delimiter delim.
// An empty line yields one empty field, matching the delimiter contract.
func Split(line string, delim byte) []string {
	return strings.Split(line, string(delim))
}

// SplitKV splits line into a key (everything before the first delimiter)
// and a value (everything after it). A line without the delimiter is
// malformed.
func SplitKV(line string, delim byte) (key, value string, err error) {
	i := strings.IndexByte(line, delim)
	if i < 0 {
		return "", "", ErrMalformedLine
	}
	return line[:i], line[i+1:], nil
}

// Join joins fs with the single-byte delimiter delim.
func Join(fs []string, delim byte) string {
	return strings.Join(fs, string(delim))
}
