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

// Command topk prints only the k records whose comparison field is
// greatest, in O(k) memory. By default fields compare as raw bytes;
// -c, -i and -f switch to UTF-8 codepoint, int64 and float64
// comparison. -r selects the k smallest records instead.
//
//	$ cat input
//	1	one
//	9	nine
//	11	eleven
//
//	$ topk -i 2 input
//	9	nine
//	11	eleven
//
//	# bottom-2, fully sorted
//	$ topk -i -r -s 2 input
//	1	one
//	9	nine
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/tsvkit/tsvkit"
	"github.com/tsvkit/tsvkit/compare"
	"github.com/tsvkit/tsvkit/logger"
)

func parseDelim(s string) (byte, error) {
	if s == `\t` {
		return '\t', nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single byte, got %q", s)
	}
	return s[0], nil
}

func openInput(args []string) (*os.File, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, nil
	}
	return os.Open(args[0])
}

func fatal(format string, args ...interface{}) {
	logger.Error(format, args...)
	os.Exit(1)
}

func compareKind(chars, ints, floats bool) (compare.Kind, error) {
	n := 0
	for _, b := range []bool{chars, ints, floats} {
		if b {
			n++
		}
	}
	if n > 1 {
		return compare.Bytes, fmt.Errorf("cannot specify more than one of -c, -i, -f")
	}
	switch {
	case chars:
		return compare.Chars, nil
	case ints:
		return compare.Int64, nil
	case floats:
		return compare.Float64, nil
	}
	return compare.Bytes, nil
}

func main() {
	fieldDelim := pflag.StringP("field-delim", "t", "\t", "field delimiter byte")
	field := pflag.IntP("field", "k", 1, "compare by the given 1-based field")
	chars := pflag.BoolP("chars", "c", false, "compare as UTF-8 codepoint sequences")
	ints := pflag.BoolP("int", "i", false, "compare as 64-bit integers")
	floats := pflag.BoolP("float", "f", false, "compare as 64-bit floats")
	reverse := pflag.BoolP("reverse", "r", false, "bottom-k instead of top-k")
	sortOut := pflag.BoolP("sort", "s", false, "emit results in ascending compare order")
	where := pflag.StringP("where", "w", "", "filter expression over line / fields / nf")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	if *verbose {
		logger.GetDefault().SetLevel(logger.DEBUG)
	}

	args := pflag.Args()
	if len(args) == 0 {
		fatal("topk: missing required argument k")
	}
	k, err := strconv.Atoi(args[0])
	if err != nil || k < 0 {
		fatal("topk: k must be a non-negative integer, got %q", args[0])
	}

	fd, err := parseDelim(*fieldDelim)
	if err != nil {
		fatal("topk: %v", err)
	}
	kind, err := compareKind(*chars, *ints, *floats)
	if err != nil {
		fatal("topk: %v", err)
	}

	in, err := openInput(args[1:])
	if err != nil {
		fatal("topk: %v", err)
	}
	defer in.Close()

	opts := []tsvkit.Option{
		tsvkit.WithFieldDelim(fd),
		tsvkit.WithCompareField(*field),
		tsvkit.WithCompare(kind),
	}
	if *reverse {
		opts = append(opts, tsvkit.WithReverse())
	}
	if *sortOut {
		opts = append(opts, tsvkit.WithSortOutput())
	}
	if *where != "" {
		opts = append(opts, tsvkit.WithWhere(*where))
	}

	if err := tsvkit.TopK(in, os.Stdout, k, opts...); err != nil {
		fatal("topk: %v", err)
	}
}
