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

package count

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterFirstSeenOrder(t *testing.T) {
	c := New(false)
	for _, line := range []string{"three", "one", "two", "three", "two", "three"} {
		c.Add(line)
	}

	assert.Equal(t, []Entry{
		{"three", 3},
		{"one", 1},
		{"two", 2},
	}, c.Entries())
}

func TestCounterEmptyInput(t *testing.T) {
	c := New(false)
	assert.Empty(t, c.Entries())
}

func TestCounterCountsEmptyLines(t *testing.T) {
	c := New(false)
	c.Add("")
	c.Add("x")
	c.Add("")

	assert.Equal(t, []Entry{{"", 2}, {"x", 1}}, c.Entries())
}

func TestCounterSuppressEmpty(t *testing.T) {
	c := New(true)
	c.Add("")
	c.Add("x")
	c.Add("")

	assert.Equal(t, []Entry{{"x", 1}}, c.Entries())
}
