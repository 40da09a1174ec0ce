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

// Package segmenttrie indexes code families for longest-prefix lookups.
package segmenttrie

import (
	"errors"
	"strings"
)

// Sep separates the segments of a code ("USER_NOT_FOUND" has three).
const Sep = '_'

// Wildcard matches exactly one segment.
const Wildcard = "*"

// Trie is a segment-aware prefix index for underscore-separated codes.
// Each node represents one segment; the wildcard "*" matches exactly one
// segment. Lookups are longest-prefix-match on segment boundaries, so
// "USER_NOT" never matches "USER_NOTE".
type Trie[T any] struct {
	// children contains next segments, including "*".
	children map[string]*Trie[T]
	// hasVal marks that a prefix ends at this node.
	hasVal bool
	val    T
	// pattern is the prefix as inserted, kept for Explain.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains characters outside [A-Z0-9], or consists only
// of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a prefix to the trie and associates it with val.
//
// Examples:
//
//	"USER"
//	"USER_NOT_FOUND"
//	"*_NOT_FOUND"
//
// Re-inserting a prefix replaces its value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, s := range segs {
		if s != Wildcard {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the value of the deepest prefix of c.
func (t *Trie[T]) Match(c string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(c)
	return v, ok
}

// MatchWithPattern is Match that also reports the matched prefix as it was
// inserted. At equal depth an exact segment beats the wildcard.
func (t *Trie[T]) MatchWithPattern(c string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(c) {
			return
		}
		i := off
		for i < len(c) && c[i] != Sep {
			if !segmentByte(c[i]) {
				return
			}
			i++
		}
		if i == off {
			return // empty segment
		}
		seg := c[off:i]
		next := i
		if next < len(c) {
			next++ // skip separator
		}

		// exact first so that it wins ties
		if child, ok := n.children[seg]; ok {
			dfs(child, next, depth+1)
		}
		if child, ok := n.children[Wildcard]; ok {
			dfs(child, next, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// splitAndValidate splits a prefix into segments. Every segment must be
// "*" or match [A-Z0-9]+.
func splitAndValidate(s string) ([]string, bool) {
	if s == "" {
		return nil, false
	}
	segs := strings.Split(s, string(Sep))
	for _, seg := range segs {
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == Wildcard {
		return true
	}
	for i := 0; i < len(seg); i++ {
		if !segmentByte(seg[i]) {
			return false
		}
	}
	return true
}

func segmentByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
