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

// Package bsq answers point queries against a line database sorted by
// an index field, by binary search over raw byte offsets. No line
// structure is built up front: each bisection step lands at an
// arbitrary offset and scans to the enclosing line's boundaries, so a
// lookup touches O(log n) lines of an arbitrarily large database. Keys compare as raw
// bytes, the same order the database must be sorted in.
package bsq

import (
	"bytes"
	"fmt"
)

// Mode selects how a query matches the index field.
type Mode int

const (
	// Prefix matches every line whose index field starts with the
	// query. Default.
	Prefix Mode = iota
	// Exact matches only lines whose index field equals the query.
	Exact
)

// Searcher runs queries against one sorted database.
type Searcher struct {
	db    []byte
	delim byte
	idx   int // 0-based index field
	mode  Mode
}

// New creates a searcher over db, which must be sorted by the 1-based
// keyField under byte order. db is retained, not copied.
func New(db []byte, keyField int, mode Mode, delim byte) (*Searcher, error) {
	if keyField < 1 {
		return nil, fmt.Errorf("index field must be positive, got %d", keyField)
	}
	return &Searcher{db: db, delim: delim, idx: keyField - 1, mode: mode}, nil
}

// Find returns all lines matching query, in database order. The
// returned slices alias the database buffer.
func (s *Searcher) Find(query string) [][]byte {
	q := []byte(query)
	var out [][]byte
	for pos := s.lowerBound(q); pos < len(s.db); {
		end := lineEnd(s.db, pos)
		if !s.match(s.db[pos:end], q) {
			break
		}
		out = append(out, s.db[pos:end])
		pos = end + 1
	}
	return out
}

func (s *Searcher) match(line, q []byte) bool {
	key, ok := fieldAt(line, s.idx, s.delim)
	if !ok {
		return false
	}
	if s.mode == Exact {
		return bytes.Equal(key, q)
	}
	return bytes.HasPrefix(key, q)
}

// lowerBound returns the offset of the first line whose index field is
// >= q in byte order, or len(db) if no such line exists. A line missing
// the index field sorts as if its key were empty.
func (s *Searcher) lowerBound(q []byte) int {
	lo, hi := 0, len(s.db)
	for lo < hi {
		mid := (lo + hi) / 2
		start := lineStart(s.db, mid)
		end := lineEnd(s.db, start)
		key, _ := fieldAt(s.db[start:end], s.idx, s.delim)
		if bytes.Compare(key, q) < 0 {
			lo = end + 1
		} else {
			hi = start
		}
	}
	if lo > len(s.db) {
		lo = len(s.db)
	}
	return lo
}

// lineStart returns the offset of the first byte of the line containing
// pos.
func lineStart(db []byte, pos int) int {
	if i := bytes.LastIndexByte(db[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// lineEnd returns the offset of the newline terminating the line that
// starts at or after pos, or len(db) for an unterminated final line.
func lineEnd(db []byte, pos int) int {
	if i := bytes.IndexByte(db[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(db)
}

// fieldAt returns the idx-th (0-based) delimiter-separated field of
// line. ok is false when the line has fewer fields.
func fieldAt(line []byte, idx int, delim byte) (field []byte, ok bool) {
	lo := 0
	for ; idx > 0; idx-- {
		i := bytes.IndexByte(line[lo:], delim)
		if i < 0 {
			return nil, false
		}
		lo += i + 1
	}
	if i := bytes.IndexByte(line[lo:], delim); i >= 0 {
		return line[lo : lo+i], true
	}
	return line[lo:], true
}
