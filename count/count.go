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

// Package count tallies occurrences of identical lines. Input does not
// need to be sorted; results come back in first-seen order so output is
// deterministic.
package count

// Entry is one distinct line with its occurrence count.
type Entry struct {
	Line string
	N    int
}

// Counter accumulates line occurrence counts.
type Counter struct {
	counts        map[string]int
	order         []string
	suppressEmpty bool
}

// New creates a counter. With suppressEmpty set, empty lines are ignored.
func New(suppressEmpty bool) *Counter {
	return &Counter{
		counts:        make(map[string]int),
		suppressEmpty: suppressEmpty,
	}
}

// Add records one occurrence of line.
func (c *Counter) Add(line string) {
	if c.suppressEmpty && line == "" {
		return
	}
	if _, ok := c.counts[line]; !ok {
		c.order = append(c.order, line)
	}
	c.counts[line]++
}

// Entries returns all distinct lines with their counts, in the order the
// lines first appeared.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, line := range c.order {
		out = append(out, Entry{Line: line, N: c.counts[line]})
	}
	return out
}
