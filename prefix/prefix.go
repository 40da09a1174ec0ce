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

// Package prefix recognizes the structured "<status> <CODE>: <message>"
// convention some upstream services embed in their error messages, e.g.
//
//	"404 NOT_FOUND: user missing"
//	"429 RATE_LIMIT: too many requests"
//
// The leading status and code are split off so that the rest of the
// pipeline works with a clean message and a machine-readable code.
package prefix

import (
	"regexp"
	"strconv"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/code"
)

// prefixFmt captures the status digits, the SCREAMING_CASE code and the
// remaining message.
const prefixFmt = `^(\d+)\s([A-Z_]+):\s(.*)$`

var prefixRe = regexp.MustCompile(prefixFmt)

// Result is the outcome of a successful extraction.
type Result struct {
	// Status is the leading number, as found. It is 0 when the digits do
	// not fit an int.
	Status int

	// Code is the SCREAMING_CASE token, used verbatim.
	Code code.Code

	// Message is the remainder after ": ".
	Message string
}

// Extract splits msg into its prefix parts. It reports false when msg does
// not follow the convention.
func Extract(msg string) (Result, bool) {
	m := prefixRe.FindStringSubmatch(msg)
	if m == nil {
		return Result{}, false
	}
	status, err := strconv.Atoi(m[1])
	if err != nil {
		status = 0
	}
	return Result{Status: status, Code: code.Code(m[2]), Message: m[3]}, true
}

// Apply returns e with its prefix extracted: the message is replaced by the
// remainder and the code is merged into the existing extensions, taking
// precedence over any code already present. Without a prefix e is returned
// as is.
func Apply(e *errfmt.Error) *errfmt.Error {
	r, ok := Extract(e.Message)
	if !ok {
		return e
	}
	return e.WithMessage(r.Message).WithExtension(errfmt.ExtensionCode, string(r.Code))
}
