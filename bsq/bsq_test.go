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

package bsq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearcher(t *testing.T, db string, keyField int, mode Mode, delim byte) *Searcher {
	t.Helper()
	s, err := New([]byte(db), keyField, mode, delim)
	require.NoError(t, err)
	return s
}

func found(recs [][]byte) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = string(r)
	}
	return out
}

func TestLowerBoundFirstField(t *testing.T) {
	s := newSearcher(t, "a\nab\nabc\nabcd\nabe", 1, Prefix, ' ')
	tests := []struct {
		query    string
		expected int
	}{
		{"a", 0},
		{"ab", 2},
		{"abc", 5},
		{"abcd", 9},
		{"abe", 14},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, s.lowerBound([]byte(test.query)), "query %q", test.query)
	}
}

func TestLowerBoundSecondField(t *testing.T) {
	s := newSearcher(t, "0 a\n1 ab\n2 abc\n3 abcd\n4 abe", 2, Prefix, ' ')
	tests := []struct {
		query    string
		expected int
	}{
		{"a", 0},
		{"ab", 4},
		{"abc", 9},
		{"abcd", 15},
		{"abe", 22},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, s.lowerBound([]byte(test.query)), "query %q", test.query)
	}
}

func TestLowerBoundThirdField(t *testing.T) {
	s := newSearcher(t, "0 x a\n1 y ab\n2 z abc\n3 w abcd\n4 u abe", 3, Prefix, ' ')
	tests := []struct {
		query    string
		expected int
	}{
		{"a", 0},
		{"ab", 6},
		{"abc", 13},
		{"abcd", 21},
		{"abe", 30},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, s.lowerBound([]byte(test.query)), "query %q", test.query)
	}
}

const database = "1\tone\n" +
	"19\tnineteen\n" +
	"19\tanother nineteen\n" +
	"192\tone hundred ninety two\n" +
	"24\ttwenty four\n" +
	"3\tthree\n" +
	"64\tsixty four\n"

func TestFindPrefixMatch(t *testing.T) {
	s := newSearcher(t, database, 1, Prefix, '\t')
	assert.Equal(t, []string{
		"19\tnineteen",
		"19\tanother nineteen",
		"192\tone hundred ninety two",
	}, found(s.Find("19")))
}

func TestFindExactMatch(t *testing.T) {
	s := newSearcher(t, database, 1, Exact, '\t')
	assert.Equal(t, []string{
		"19\tnineteen",
		"19\tanother nineteen",
	}, found(s.Find("19")))
}

func TestFindNoMatch(t *testing.T) {
	s := newSearcher(t, database, 1, Exact, '\t')
	assert.Empty(t, s.Find("20"))
	assert.Empty(t, s.Find("zzz"))
}

func TestFindQueryPastEnd(t *testing.T) {
	s := newSearcher(t, "1\ta", 1, Prefix, '\t')
	assert.Empty(t, s.Find("9"))
}

func TestFindEmptyDatabase(t *testing.T) {
	s := newSearcher(t, "", 1, Prefix, '\t')
	assert.Empty(t, s.Find("x"))
}

func TestFindUnterminatedLastLine(t *testing.T) {
	s := newSearcher(t, "1\tone\n9\tnine", 1, Exact, '\t')
	assert.Equal(t, []string{"9\tnine"}, found(s.Find("9")))
}

// A line without the index field never matches and sorts as an empty key.
func TestFindMissingIndexField(t *testing.T) {
	s := newSearcher(t, "1\n1 y\n0 z", 2, Exact, ' ')
	assert.Equal(t, []string{"1 y"}, found(s.Find("y")))
	assert.Empty(t, s.Find(""))
}

func TestNewRejectsZeroField(t *testing.T) {
	_, err := New(nil, 0, Prefix, '\t')
	assert.Error(t, err)
}
