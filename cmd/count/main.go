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

// Command count prints the occurrence count of each distinct input
// line, in first-seen order. Input does not need to be sorted.
//
//	$ cat input
//	three
//	one
//	three
//
//	$ count input
//	2	three
//	1	one
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tsvkit/tsvkit"
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

func main() {
	delim := pflag.StringP("delimiter", "d", "\t", "output delimiter between count and line")
	suppress := pflag.BoolP("suppress", "s", false, "ignore empty input lines")
	where := pflag.StringP("where", "w", "", "filter expression over line / fields / nf")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	if *verbose {
		logger.GetDefault().SetLevel(logger.DEBUG)
	}

	d, err := parseDelim(*delim)
	if err != nil {
		fatal("count: %v", err)
	}

	in, err := openInput(pflag.Args())
	if err != nil {
		fatal("count: %v", err)
	}
	defer in.Close()

	opts := []tsvkit.Option{tsvkit.WithFieldDelim(d)}
	if *suppress {
		opts = append(opts, tsvkit.WithSuppressEmpty())
	}
	if *where != "" {
		opts = append(opts, tsvkit.WithWhere(*where))
	}

	if err := tsvkit.Count(in, os.Stdout, opts...); err != nil {
		fatal("count: %v", err)
	}
}
