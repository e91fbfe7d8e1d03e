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

// Package group collapses (key, value) record streams into
// (key, token list) groups and expands them back.
//
// Two grouping engines exist behind one interface. The merge engine
// assumes equal keys are contiguous in the input and holds a single open
// group, so its memory is bounded by the largest run. The hash engine
// makes no ordering assumption and accumulates every key until the end
// of input, emitting groups in first-appearance order. If the merge
// engine is fed unsorted input, a key that reappears after a different
// key starts a second, separate group for that key. That behavior is
// part of the contract: it is exactly the gap the hash engine exists to
// close, and callers choose between the two by constructing the engine
// they want.
package group

// Emit receives one finished group. Token order is insertion order.
// The tokens slice is owned by the engine and only valid for the call.
type Emit func(key string, tokens []string) error

// Grouper accumulates (key, value) records into groups. Flush must be
// called once after the last Add to release any open group.
type Grouper interface {
	Add(key, value string) error
	Flush() error
}

// mergeGrouper is the sorted-input engine. At most one group is open at
// any time.
type mergeGrouper struct {
	emit   Emit
	unique bool

	open   bool
	key    string
	tokens []string
	seen   map[string]struct{}
}

// NewMerge creates a grouping engine for input sorted by key. With
// unique set, duplicate tokens within a group are dropped, first
// occurrence wins.
func NewMerge(emit Emit, unique bool) Grouper {
	return &mergeGrouper{emit: emit, unique: unique}
}

func (g *mergeGrouper) Add(key, value string) error {
	if g.open && key != g.key {
		if err := g.emit(g.key, g.tokens); err != nil {
			return err
		}
		g.open = false
	}
	if !g.open {
		g.open = true
		g.key = key
		g.tokens = g.tokens[:0]
		if g.unique {
			g.seen = make(map[string]struct{})
		}
	}
	g.append(value)
	return nil
}

func (g *mergeGrouper) append(value string) {
	if g.unique {
		if _, dup := g.seen[value]; dup {
			return
		}
		g.seen[value] = struct{}{}
	}
	g.tokens = append(g.tokens, value)
}

func (g *mergeGrouper) Flush() error {
	if !g.open {
		return nil
	}
	g.open = false
	return g.emit(g.key, g.tokens)
}

// hashGrouper is the unsorted-input engine. It holds every group until
// Flush and emits them in first-appearance order of their keys.
type hashGrouper struct {
	emit   Emit
	unique bool

	groups map[string][]string
	seen   map[string]map[string]struct{}
	order  []string
}

// NewHash creates a grouping engine for arbitrarily ordered input.
// Memory grows with the number of distinct keys and total tokens.
func NewHash(emit Emit, unique bool) Grouper {
	g := &hashGrouper{
		emit:   emit,
		unique: unique,
		groups: make(map[string][]string),
	}
	if unique {
		g.seen = make(map[string]map[string]struct{})
	}
	return g
}

func (g *hashGrouper) Add(key, value string) error {
	tokens, ok := g.groups[key]
	if !ok {
		g.order = append(g.order, key)
		if g.unique {
			g.seen[key] = make(map[string]struct{})
		}
	}
	if g.unique {
		if _, dup := g.seen[key][value]; dup {
			return nil
		}
		g.seen[key][value] = struct{}{}
	}
	g.groups[key] = append(tokens, value)
	return nil
}

func (g *hashGrouper) Flush() error {
	for _, key := range g.order {
		if err := g.emit(key, g.groups[key]); err != nil {
			return err
		}
	}
	g.groups = make(map[string][]string)
	g.order = nil
	if g.unique {
		g.seen = make(map[string]map[string]struct{})
	}
	return nil
}
