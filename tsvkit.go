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

package tsvkit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tsvkit/tsvkit/condition"
	"github.com/tsvkit/tsvkit/count"
	"github.com/tsvkit/tsvkit/fields"
	"github.com/tsvkit/tsvkit/group"
	"github.com/tsvkit/tsvkit/topk"
)

// ErrFieldIndex reports a compare field index of zero or one past the
// fields a line actually has.
var ErrFieldIndex = errors.New("compare field out of range")

// maxLineSize bounds a single input line. Lines are records here, not
// documents; 1 MiB is far beyond any sane record.
const maxLineSize = 1 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

func newFilter(cfg *config) (condition.Condition, error) {
	if cfg.where == "" {
		return nil, nil
	}
	return condition.New(cfg.where)
}

func pass(cond condition.Condition, line string, fs []string) bool {
	if cond == nil {
		return true
	}
	return cond.Evaluate(condition.Env(line, fs))
}

// Group reads (key, value) lines from r and writes one line per group
// to w: the key, the field delimiter, then the group's tokens joined by
// the token delimiter. The default engine assumes input sorted by key
// and runs in memory bounded by the largest run; WithHashmap lifts the
// ordering assumption. WithInverse performs the exact inverse transform
// instead, expanding grouped lines back into (key, token) pairs.
//
// A line without the field delimiter is a fatal error. Empty input
// produces empty output.
func Group(r io.Reader, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	cond, err := newFilter(cfg)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	var eng group.Grouper
	var ungr *group.Ungrouper
	switch {
	case cfg.inverse:
		cfg.log.Debug("group: ungrouping, unique=%v", cfg.unique)
		ungr = &group.Ungrouper{
			TokenDelim: cfg.tokenDelim,
			Unique:     cfg.unique,
			Emit: func(key, token string) error {
				return writeLine(bw, fields.Join([]string{key, token}, cfg.fieldDelim))
			},
		}
	case cfg.hashmap:
		cfg.log.Debug("group: hash engine, unique=%v", cfg.unique)
		eng = group.NewHash(emitGroup(bw, cfg), cfg.unique)
	default:
		cfg.log.Debug("group: merge engine, unique=%v", cfg.unique)
		eng = group.NewMerge(emitGroup(bw, cfg), cfg.unique)
	}

	sc := newScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		key, value, err := fields.SplitKV(line, cfg.fieldDelim)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		if cond != nil && !pass(cond, line, fields.Split(line, cfg.fieldDelim)) {
			continue
		}
		if cfg.inverse {
			err = ungr.Expand(key, value)
		} else {
			err = eng.Add(key, value)
		}
		if err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if eng != nil {
		if err := eng.Flush(); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func emitGroup(bw *bufio.Writer, cfg *config) group.Emit {
	return func(key string, tokens []string) error {
		joined := fields.Join(tokens, cfg.tokenDelim)
		return writeLine(bw, fields.Join([]string{key, joined}, cfg.fieldDelim))
	}
}

// TopK reads delimiter-separated lines from r and writes the k records
// whose comparison field is greatest under the configured interpretation
// (smallest with WithReverse). Exactly min(k, n) lines come out.
// Emission order is arbitrary unless WithSortOutput is set, in which
// case records are emitted in ascending comparison order. Memory is
// O(k) regardless of input size.
//
// A compare field that a line does not have, and a field that fails
// int64/float64 parsing, are fatal errors.
func TopK(r io.Reader, w io.Writer, k int, opts ...Option) error {
	cfg := newConfig(opts)
	if k < 0 {
		return fmt.Errorf("k must be non-negative, got %d", k)
	}
	if cfg.compareField < 1 {
		return fmt.Errorf("%w: field index %d", ErrFieldIndex, cfg.compareField)
	}
	cond, err := newFilter(cfg)
	if err != nil {
		return err
	}

	cfg.log.Debug("topk: k=%d compare=%s field=%d reverse=%v", k, cfg.kind, cfg.compareField, cfg.reverse)

	sel := topk.New(k, cfg.reverse)
	idx := cfg.compareField - 1

	sc := newScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		fs := fields.Split(line, cfg.fieldDelim)
		if idx >= len(fs) {
			return fmt.Errorf("line %d: %w: field %d of %d", lineno, ErrFieldIndex, cfg.compareField, len(fs))
		}
		if !pass(cond, line, fs) {
			continue
		}
		key, err := cfg.kind.Parse(fs[idx])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		sel.Push(topk.Record{Key: key, Line: line})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	recs := sel.Records()
	if cfg.sortOutput {
		recs = sel.Sorted()
	}

	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		if err := writeLine(bw, rec.Line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Count reads lines from r and writes one line per distinct input line:
// the occurrence count, the field delimiter, then the line. Input does
// not need to be sorted; output is in first-seen order.
func Count(r io.Reader, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	cond, err := newFilter(cfg)
	if err != nil {
		return err
	}

	ctr := count.New(cfg.suppressEmpty)

	sc := newScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !pass(cond, line, fields.Split(line, cfg.fieldDelim)) {
			continue
		}
		ctr.Add(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, e := range ctr.Entries() {
		out := fields.Join([]string{strconv.Itoa(e.N), e.Line}, cfg.fieldDelim)
		if err := writeLine(bw, out); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeLine(bw *bufio.Writer, line string) error {
	if _, err := bw.WriteString(line); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}
