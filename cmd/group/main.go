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

// Command group collapses sorted (key, value) lines into (key, token
// list) lines, or the inverse with -i. Reads the named file or stdin.
//
//	$ cat input
//	1	a
//	1	c
//	1	a
//	2	b
//
//	$ group input
//	1	a,c,a
//	2	b
//
//	$ group -u input
//	1	a,c
//	2	b
//
//	# unsorted input needs the hashmap engine
//	$ group -m unsorted-input
//
//	# inverse operation, i.e. un-group
//	$ group -i grouped-input
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

// openInput opens the first positional argument, with "-" or no
// argument meaning stdin.
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
	fieldDelim := pflag.StringP("field-delim", "f", "\t", "field delimiter byte")
	tokenDelim := pflag.StringP("token-delim", "t", ",", "token delimiter byte for grouped values")
	inverse := pflag.BoolP("inverse", "i", false, "inverse operation, un-group the input")
	unique := pflag.BoolP("unique", "u", false, "drop duplicate tokens, first occurrence wins")
	hashmap := pflag.BoolP("hashmap", "m", false, "handle unsorted input (holds all groups in memory)")
	where := pflag.StringP("where", "w", "", "filter expression over line / fields / nf")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	if *verbose {
		logger.GetDefault().SetLevel(logger.DEBUG)
	}

	fd, err := parseDelim(*fieldDelim)
	if err != nil {
		fatal("group: %v", err)
	}
	td, err := parseDelim(*tokenDelim)
	if err != nil {
		fatal("group: %v", err)
	}

	in, err := openInput(pflag.Args())
	if err != nil {
		fatal("group: %v", err)
	}
	defer in.Close()

	opts := []tsvkit.Option{
		tsvkit.WithFieldDelim(fd),
		tsvkit.WithTokenDelim(td),
	}
	if *inverse {
		opts = append(opts, tsvkit.WithInverse())
	}
	if *unique {
		opts = append(opts, tsvkit.WithUnique())
	}
	if *hashmap {
		opts = append(opts, tsvkit.WithHashmap())
	}
	if *where != "" {
		opts = append(opts, tsvkit.WithWhere(*where))
	}

	if err := tsvkit.Group(in, os.Stdout, opts...); err != nil {
		fatal("group: %v", err)
	}
}
