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
	"github.com/tsvkit/tsvkit/compare"
	"github.com/tsvkit/tsvkit/logger"
)

// Option configures one run of Group, TopK or Count.
type Option func(*config)

type config struct {
	fieldDelim    byte
	tokenDelim    byte
	unique        bool
	hashmap       bool
	inverse       bool
	compareField  int // 1-based
	kind          compare.Kind
	reverse       bool
	sortOutput    bool
	where         string
	suppressEmpty bool
	log           logger.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		fieldDelim:   '\t',
		tokenDelim:   ',',
		compareField: 1,
		kind:         compare.Bytes,
		log:          logger.GetDefault(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFieldDelim sets the byte separating fields. Default is tab.
func WithFieldDelim(d byte) Option {
	return func(c *config) { c.fieldDelim = d }
}

// WithTokenDelim sets the byte separating grouped tokens. Default is comma.
func WithTokenDelim(d byte) Option {
	return func(c *config) { c.tokenDelim = d }
}

// WithUnique de-duplicates tokens, first occurrence wins.
func WithUnique() Option {
	return func(c *config) { c.unique = true }
}

// WithHashmap selects the unsorted-input grouping engine. It guarantees
// one group per distinct key at the cost of holding every group in
// memory until end of input.
func WithHashmap() Option {
	return func(c *config) { c.hashmap = true }
}

// WithInverse makes Group expand grouped records instead of collapsing
// them.
func WithInverse() Option {
	return func(c *config) { c.inverse = true }
}

// WithCompareField sets the 1-based column TopK compares on. Default 1.
func WithCompareField(n int) Option {
	return func(c *config) { c.compareField = n }
}

// WithCompare sets the value interpretation TopK orders by.
func WithCompare(kind compare.Kind) Option {
	return func(c *config) { c.kind = kind }
}

// WithReverse flips TopK to bottom-k selection.
func WithReverse() Option {
	return func(c *config) { c.reverse = true }
}

// WithSortOutput emits TopK results in ascending comparison order
// instead of arbitrary order.
func WithSortOutput() Option {
	return func(c *config) { c.sortOutput = true }
}

// WithWhere filters input lines through a boolean expression before any
// processing. The expression sees `line` (the raw line), `fields` (the
// line split on the field delimiter, in every mode) and `nf` (the field
// count).
func WithWhere(expression string) Option {
	return func(c *config) { c.where = expression }
}

// WithSuppressEmpty makes Count ignore empty input lines.
func WithSuppressEmpty() Option {
	return func(c *config) { c.suppressEmpty = true }
}

// WithLogger routes diagnostics to a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithDiscardLog disables diagnostics for this run.
func WithDiscardLog() Option {
	return func(c *config) { c.log = logger.NewDiscardLogger() }
}
