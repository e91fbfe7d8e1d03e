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

/*
Package tsvkit processes unbounded streams of delimiter-separated
key/value text records under explicit memory bounds.

Three transforms are provided, each reading lines from an io.Reader and
writing lines to an io.Writer in a single pass:

  - Group collapses (key, value) lines into (key, token list) lines, or
    expands them back with WithInverse. The default engine expects input
    sorted by key and holds one open group at a time; WithHashmap
    handles arbitrary order by accumulating all groups.
  - TopK keeps only the k extremal records under a configurable
    comparison (raw bytes, UTF-8 codepoints, int64 or float64; top or
    bottom), in O(k) space. This replaces sort-then-head over large
    inputs without ever sorting the whole input.
  - Count tallies occurrences of identical lines in first-seen order.

# Example

Group sorted input:

	input := strings.NewReader("1\ta\n1\tc\n1\ta\n2\tb\n")
	tsvkit.Group(input, os.Stdout)
	// Output:
	// 1	a,c,a
	// 2	b

Keep the three largest values of column one:

	tsvkit.TopK(input, os.Stdout, 3,
		tsvkit.WithCompare(compare.Int64),
		tsvkit.WithSortOutput())

Every transform is a one-shot batch run: the first malformed line,
unparsable comparison field or out-of-range field index aborts the run
with an error that names the offending line number.
*/
package tsvkit
