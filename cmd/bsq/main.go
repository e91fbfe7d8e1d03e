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

// Command bsq binary-searches a database of lines sorted by an index
// field and prints the lines matching the query. With no query
// argument, queries are read from stdin one per line.
//
//	$ cat database
//	1	one
//	19	nineteen
//	19	another nineteen
//	192	one hundred ninety two
//	24	twenty four
//	3	three
//	64	sixty four
//
//	# matches the prefix of the index by default
//	$ bsq database 19
//	19	nineteen
//	19	another nineteen
//	192	one hundred ninety two
//
//	# -w matches the entire index
//	$ bsq -w database 19
//	19	nineteen
//	19	another nineteen
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tsvkit/tsvkit/bsq"
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

func fatal(format string, args ...interface{}) {
	logger.Error(format, args...)
	os.Exit(1)
}

func main() {
	delim := pflag.StringP("delimiter", "d", "\t", "field delimiter byte")
	exact := pflag.BoolP("word", "w", false, "match the entire index field instead of its prefix")
	field := pflag.IntP("field", "f", 1, "1-based index field the database is sorted by")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	if *verbose {
		logger.GetDefault().SetLevel(logger.DEBUG)
	}

	args := pflag.Args()
	if len(args) == 0 {
		fatal("bsq: missing required database argument")
	}

	d, err := parseDelim(*delim)
	if err != nil {
		fatal("bsq: %v", err)
	}

	db, err := os.ReadFile(args[0])
	if err != nil {
		fatal("bsq: %v", err)
	}

	mode := bsq.Prefix
	if *exact {
		mode = bsq.Exact
	}
	searcher, err := bsq.New(db, *field, mode, d)
	if err != nil {
		fatal("bsq: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	query := func(q string) {
		for _, line := range searcher.Find(q) {
			out.Write(line)
			out.WriteByte('\n')
		}
	}

	if len(args) > 1 {
		query(args[1])
	} else {
		sc := bufio.NewScanner(os.Stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for sc.Scan() {
			query(sc.Text())
		}
		if err := sc.Err(); err != nil {
			fatal("bsq: read queries: %v", err)
		}
	}

	if err := out.Flush(); err != nil {
		fatal("bsq: %v", err)
	}
}
