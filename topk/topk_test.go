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

package topk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsvkit/tsvkit/compare"
)

func push(t *testing.T, s *Selector, kind compare.Kind, values ...string) {
	t.Helper()
	for _, v := range values {
		key, err := kind.Parse(v)
		require.NoError(t, err)
		s.Push(Record{Key: key, Line: v})
	}
}

func lines(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Line
	}
	return out
}

func TestTopKBytes(t *testing.T) {
	s := New(3, false)
	push(t, s, compare.Bytes, "1", "9", "11", "0", "5", "7", "9")

	// Byte order: "9" > "7" > "5" > "11" > "1" > "0".
	assert.ElementsMatch(t, []string{"7", "9", "9"}, lines(s.Records()))
}

func TestTopKInt64(t *testing.T) {
	s := New(3, false)
	push(t, s, compare.Int64, "1", "9", "11", "0", "5", "7", "9")

	assert.ElementsMatch(t, []string{"9", "11", "9"}, lines(s.Records()))
}

func TestBottomKInt64Sorted(t *testing.T) {
	s := New(3, true)
	push(t, s, compare.Int64, "1", "9", "11", "0", "5", "7", "9")

	assert.Equal(t, []string{"0", "1", "5"}, lines(s.Sorted()))
}

func TestOutputSizeIsMinKN(t *testing.T) {
	s := New(5, false)
	push(t, s, compare.Bytes, "a", "b")
	assert.Equal(t, 2, s.Len())

	s = New(2, false)
	push(t, s, compare.Bytes, "a", "b", "c", "d")
	assert.Equal(t, 2, s.Len())
}

func TestKZeroRetainsNothing(t *testing.T) {
	s := New(0, false)
	push(t, s, compare.Bytes, "a", "b", "c")
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Records())
	assert.Empty(t, s.Sorted())
}

func TestEmptyStream(t *testing.T) {
	s := New(3, false)
	assert.Empty(t, s.Records())
}

// Ties at the boundary never evict each other, so duplicates survive
// together.
func TestTiesRetained(t *testing.T) {
	s := New(2, false)
	push(t, s, compare.Int64, "9", "9", "1", "9")
	assert.ElementsMatch(t, []string{"9", "9"}, lines(s.Records()))
}

func TestTiesRetainedReverse(t *testing.T) {
	s := New(2, true)
	push(t, s, compare.Int64, "0", "0", "5", "0")
	assert.ElementsMatch(t, []string{"0", "0"}, lines(s.Records()))
}

func TestSortedAscendingBothDirections(t *testing.T) {
	top := New(3, false)
	push(t, top, compare.Int64, "3", "1", "4", "1", "5", "9", "2", "6")
	assert.Equal(t, []string{"5", "6", "9"}, lines(top.Sorted()))

	bottom := New(3, true)
	push(t, bottom, compare.Int64, "3", "1", "4", "1", "5", "9", "2", "6")
	assert.Equal(t, []string{"1", "1", "2"}, lines(bottom.Sorted()))
}

func TestFloatSelection(t *testing.T) {
	s := New(2, false)
	push(t, s, compare.Float64, "1.5", "-2", "1e2", "99.9", "0")
	assert.Equal(t, []string{"99.9", "1e2"}, lines(s.Sorted()))
}

// The retained multiset matches a full sort of the input regardless of
// arrival order.
func TestSelectionMatchesFullSort(t *testing.T) {
	input := []string{"10", "3", "7", "10", "-1", "0", "7", "22", "5", "5"}
	s := New(4, false)
	push(t, s, compare.Int64, input...)
	assert.ElementsMatch(t, []string{"22", "10", "10", "7"}, lines(s.Records()))

	r := New(4, true)
	push(t, r, compare.Int64, input...)
	assert.ElementsMatch(t, []string{"-1", "0", "3", "5"}, lines(r.Records()))
}

func TestWholeLineRidesAlong(t *testing.T) {
	s := New(1, false)
	for _, line := range []string{"9\tnine", "11\televen", "7\tseven"} {
		key, err := compare.Int64.Parse(line[:lineIndex(line)])
		require.NoError(t, err)
		s.Push(Record{Key: key, Line: line})
	}
	assert.Equal(t, []string{"11\televen"}, lines(s.Records()))
}

func lineIndex(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] == '\t' {
			return i
		}
	}
	return len(line)
}
