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

// Package placeholder expands positional "$N" references in rule templates
// with the capture groups of a regular expression match.
//
// The syntax is small: a dollar sign followed by one or more
// decimal digits. There is no escaping, no named groups and no nesting.
package placeholder

import (
	"regexp"
	"strconv"
	"strings"
)

// Match is the result of a regular expression match, addressed by group
// number. Group 0 is the whole match.
type Match struct {
	input string
	loc   []int
}

// NewMatch wraps the output of (*regexp.Regexp).FindStringSubmatchIndex for
// input. A nil loc means "no match".
func NewMatch(input string, loc []int) Match {
	return Match{input: input, loc: loc}
}

// Find runs re against s and returns the match and whether there was one.
func Find(re *regexp.Regexp, s string) (Match, bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return Match{}, false
	}
	return NewMatch(s, loc), true
}

// Group returns the text of group n and whether that group took part in
// the match. Out-of-range groups report false.
func (m Match) Group(n int) (string, bool) {
	if n < 0 || 2*n+1 >= len(m.loc) {
		return "", false
	}
	start, end := m.loc[2*n], m.loc[2*n+1]
	if start < 0 || end < 0 {
		return "", false
	}
	return m.input[start:end], true
}

// Groups returns the number of groups in the match, counting group 0.
func (m Match) Groups() int {
	return len(m.loc) / 2
}

// placeholderRe finds "$" followed by digits.
var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// Substitute replaces every "$N" in template with group N of m.
//
// A reference to a group that does not exist, or that did not participate
// in the match, is left in place as literal text, and so is a multi-digit
// reference with a leading zero ("$01"). Substituted text is not scanned
// again.
func Substitute(template string, m Match) string {
	if !strings.Contains(template, "$") {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(ref string) string {
		digits := ref[1:]
		if len(digits) > 1 && digits[0] == '0' {
			return ref
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return ref
		}
		if g, ok := m.Group(n); ok {
			return g
		}
		return ref
	})
}
