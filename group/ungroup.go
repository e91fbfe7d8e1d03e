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

package group

import "github.com/tsvkit/tsvkit/fields"

// Ungrouper expands (key, joined tokens) records back into one
// (key, token) pair per token. It is stateless across records: two
// input records sharing a key are expanded independently, with
// independent uniqueness state, mirroring the shape the merge engine
// produces for non-contiguous keys.
type Ungrouper struct {
	// TokenDelim separates tokens inside the joined value.
	TokenDelim byte
	// Unique drops repeated tokens within one record, first wins.
	Unique bool
	// Emit receives each expanded (key, token) pair in token order.
	Emit func(key, token string) error
}

// Expand splits joined on the token delimiter and emits one pair per
// surviving token.
func (u *Ungrouper) Expand(key, joined string) error {
	tokens := fields.Split(joined, u.TokenDelim)
	var seen map[string]struct{}
	if u.Unique {
		seen = make(map[string]struct{}, len(tokens))
	}
	for _, token := range tokens {
		if u.Unique {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
		}
		if err := u.Emit(key, token); err != nil {
			return err
		}
	}
	return nil
}
