/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/mapper/internal/segmenttrie"
)

// freezeInt makes an immutable copy of a builder map.
func freezeInt(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a builder map, converting ints into
// typed gRPC codes.
func freezeGRPC(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// buildTrie compiles prefix rules into a trie, converting values with conv.
// It returns nil when there are no rules.
func buildTrie[T any](kind string, rules []prefixRule, conv func(int) T) (*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, err := normalizeAndValidatePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s code prefix %q: %w", kind, r.prefix, err)
		}
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s prefix %q: %w", kind, p, err)
		}
	}
	return t, nil
}

// normalizeAndValidatePrefix brings a family prefix to canonical form.
// Surrounding space is dropped and letters are upper-cased; structure is
// left to the trie.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(raw))
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	for _, seg := range strings.Split(p, "_") {
		if seg == "" {
			return "", fmt.Errorf("empty segment")
		}
	}
	return p, nil
}

// grpcName renders a gRPC code the way codes are written here, e.g.
// "NOT_FOUND(5)".
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", code.Normalize(c.String()), int(c))
}
