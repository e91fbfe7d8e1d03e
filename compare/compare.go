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

// Package compare defines the value interpretations under which record
// fields are ordered.
//
// A field is parsed once into a Key by its configured Kind; Keys of the
// same Kind are then compared cheaply and without further allocation.
// Parsing and comparison are separated so the selection logic that sits
// on top never needs to know which interpretation is active.
package compare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Kind selects how a raw field is interpreted for ordering.
type Kind int

const (
	// Bytes compares the raw bytes lexicographically. Default.
	Bytes Kind = iota
	// Chars compares decoded UTF-8 codepoint sequences.
	Chars
	// Int64 parses the field as a signed 64-bit integer.
	Int64
	// Float64 parses the field as a 64-bit float.
	Float64
)

// String returns string representation of the kind
func (k Kind) String() string {
	switch k {
	case Bytes:
		return "bytes"
	case Chars:
		return "chars"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Key is a parsed comparison key. Keys are only comparable to Keys
// produced by the same Kind.
type Key struct {
	kind Kind
	s    string
	r    []rune
	i    int64
	f    float64
}

// Parse interprets field under the kind and returns its comparison key.
// Int64 and Float64 report parse failures; Bytes and Chars cannot fail.
func (k Kind) Parse(field string) (Key, error) {
	key := Key{kind: k}
	switch k {
	case Bytes:
		key.s = field
	case Chars:
		key.r = []rune(field)
	case Int64:
		// Plain decimal only. A base-detecting parse would reject
		// leading zeros and read "010" as octal.
		i, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return Key{}, fmt.Errorf("cannot parse %q as int64", field)
		}
		key.i = i
	case Float64:
		f, err := cast.ToFloat64E(field)
		if err != nil {
			return Key{}, fmt.Errorf("cannot parse %q as float64", field)
		}
		key.f = f
	default:
		return Key{}, fmt.Errorf("unknown compare kind %d", k)
	}
	return key, nil
}

// Compare returns -1, 0 or 1 as a orders before, equal to or after b.
// Both keys must have been produced by the same Kind.
func (a Key) Compare(b Key) int {
	switch a.kind {
	case Bytes:
		return strings.Compare(a.s, b.s)
	case Chars:
		return compareRunes(a.r, b.r)
	case Int64:
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		}
		return 0
	case Float64:
		switch {
		case a.f < b.f:
			return -1
		case a.f > b.f:
			return 1
		}
		return 0
	}
	return 0
}

func compareRunes(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
