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

// Package value infers typed values from the untyped strings produced by
// template substitution.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Coerce maps a raw string token to a typed value:
//
//	""              -> undefined (ok == false)
//	"null"          -> nil
//	"true", "false" -> bool
//	numeric         -> float64
//	anything else   -> the string, unchanged
//
// A string is numeric when its trimmed form parses completely as a decimal
// or exponent float, or as an integer with a 0x, 0o or 0b prefix. NaN and
// infinities are not numbers here: they cannot be carried in JSON.
//
// Values that are not strings are returned unchanged with ok == true, so
// Coerce is safe to apply to mixed-type templates.
func Coerce(v any) (any, bool) {
	s, isString := v.(string)
	if !isString {
		return v, true
	}
	switch s {
	case "":
		return nil, false
	case "null":
		return nil, true
	case "true":
		return true, true
	case "false":
		return false, true
	}
	if n, ok := parseNumber(s); ok {
		return n, true
	}
	return s, true
}

func parseNumber(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	if n, ok := parsePrefixedInt(t); ok {
		return n, true
	}
	// ParseFloat also accepts Go hex floats and "Inf"/"NaN" spellings;
	// hex floats are rejected to stay with the decimal grammar.
	if strings.ContainsAny(t, "xXpP_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parsePrefixedInt handles 0x/0o/0b integers. Signs are not accepted with a
// prefix.
func parsePrefixedInt(t string) (float64, bool) {
	if len(t) < 3 || t[0] != '0' {
		return 0, false
	}
	var base int
	switch t[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}
	u, err := strconv.ParseUint(t[2:], base, 64)
	if err != nil {
		return 0, false
	}
	return float64(u), true
}
