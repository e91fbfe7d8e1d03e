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

// Package condition compiles record filter expressions.
//
// A filter is an expr-lang boolean expression evaluated once per input
// line against an environment exposing the raw line and its split
// fields. A line for which the expression is false is dropped before it
// reaches any engine. Besides the expr-lang builtins, a like_match
// function provides SQL LIKE matching with % and _ wildcards.
package condition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Condition decides whether one record passes the filter.
type Condition interface {
	Evaluate(env interface{}) bool
}

// ExprCondition is a Condition backed by a compiled expr program.
type ExprCondition struct {
	program *vm.Program
}

// New compiles expression into a Condition. Compilation errors are
// returned immediately; evaluation errors at runtime make the condition
// false for that record.
func New(expression string) (Condition, error) {
	options := []expr.Option{
		expr.Function("like_match", func(params ...any) (any, error) {
			if len(params) != 2 {
				return false, fmt.Errorf("like_match requires 2 parameters")
			}
			text, ok1 := params[0].(string)
			pattern, ok2 := params[1].(string)
			if !ok1 || !ok2 {
				return false, fmt.Errorf("like_match requires string parameters")
			}
			return likeMatch(text, pattern), nil
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return &ExprCondition{program: program}, nil
}

func (ec *ExprCondition) Evaluate(env interface{}) bool {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Env builds the evaluation environment for one input line.
func Env(line string, fieldList []string) map[string]interface{} {
	return map[string]interface{}{
		"line":   line,
		"fields": fieldList,
		"nf":     len(fieldList),
	}
}

// likeMatch implements SQL LIKE semantics: % matches any run of
// characters including none, _ matches exactly one byte, everything
// else matches itself. Iterative with single-level backtracking on the
// last % seen.
func likeMatch(text, pattern string) bool {
	ti, pi := 0, 0
	star, mark := -1, 0

	for ti < len(text) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '_' || pattern[pi] == text[ti]):
			ti++
			pi++
		case pi < len(pattern) && pattern[pi] == '%':
			star = pi
			mark = ti
			pi++
		case star >= 0:
			// Backtrack: let the last % absorb one more byte.
			mark++
			ti = mark
			pi = star + 1
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '%' {
		pi++
	}
	return pi == len(pattern)
}
