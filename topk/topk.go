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

// Package topk selects the k extremal records of a stream in O(k) space.
//
// The selector keeps the best k records seen so far in a heap whose root
// is the weakest kept record. A new record replaces the root only when
// it is strictly stronger, so records tied with the root are never
// evicted by each other and duplicates survive together. "Best" means
// greatest under the configured comparison by default; with Reverse it
// means smallest, turning the selector into bottom-k. Emission order of
// Records is arbitrary, which is what allows the space bound; Sorted
// returns the kept records in ascending comparison order instead.
package topk

import (
	"container/heap"
	"sort"

	"github.com/tsvkit/tsvkit/compare"
)

// Record pairs a parsed comparison key with the full input line it came
// from. Lines ride along untouched and are reproduced verbatim.
type Record struct {
	Key  compare.Key
	Line string
}

// Selector retains the k extremal records of everything pushed into it.
type Selector struct {
	k int
	h recordHeap
}

// New creates a selector for the k best records. k may be zero, in which
// case nothing is ever retained. With reverse set, "best" flips from
// greatest to smallest.
func New(k int, reverse bool) *Selector {
	s := &Selector{k: k}
	s.h.reverse = reverse
	if k > 0 {
		s.h.items = make([]Record, 0, k)
	}
	return s
}

// Push offers one record to the selector.
func (s *Selector) Push(rec Record) {
	if s.k == 0 {
		return
	}
	if len(s.h.items) < s.k {
		heap.Push(&s.h, rec)
		return
	}
	// Evict the weakest kept record only if rec strictly beats it.
	// On a tie the kept record stays.
	if s.h.stronger(rec, s.h.items[0]) {
		s.h.items[0] = rec
		heap.Fix(&s.h, 0)
	}
}

// Len returns the number of records currently retained.
func (s *Selector) Len() int {
	return len(s.h.items)
}

// Records returns the retained records in arbitrary order.
func (s *Selector) Records() []Record {
	out := make([]Record, len(s.h.items))
	copy(out, s.h.items)
	return out
}

// Sorted returns the retained records in ascending comparison order.
// Ties keep their heap order.
func (s *Selector) Sorted() []Record {
	out := s.Records()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key.Compare(out[j].Key) < 0
	})
	return out
}

// recordHeap is a min-heap under the effective ordering: its root is the
// weakest retained record, the next candidate for eviction.
type recordHeap struct {
	items   []Record
	reverse bool
}

// stronger reports whether a beats b under the effective ordering.
func (h *recordHeap) stronger(a, b Record) bool {
	c := a.Key.Compare(b.Key)
	if h.reverse {
		return c < 0
	}
	return c > 0
}

func (h *recordHeap) Len() int           { return len(h.items) }
func (h *recordHeap) Less(i, j int) bool { return h.stronger(h.items[j], h.items[i]) }
func (h *recordHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *recordHeap) Push(x interface{}) {
	h.items = append(h.items, x.(Record))
}

func (h *recordHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	rec := old[n-1]
	h.items = old[:n-1]
	return rec
}
