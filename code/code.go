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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

// Code is the canonical representation of an error code.
//
// It is a distinct type so that packages can declare which values they
// expect, and so that raw user input is not silently mixed with codes.
type Code string

// MaxLength is the maximum length of a code accepted by Parse.
const MaxLength = 64

// codeFmt is the pattern a parsed code must satisfy: starts with an
// uppercase letter, continues with uppercase letters, digits or underscores.
const codeFmt = `^[A-Z][A-Z0-9_]*$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed as a code.
var ErrCodeInvalid = errors.New("errfmt: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It means "no code".
var Empty Code = ""

// Parse normalizes s and validates the result.
func Parse(s string) (Code, error) {
	n := Normalize(s)
	if err := validate(n); err != nil {
		return Empty, err
	}
	return Code(n), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize converts arbitrary text into SCREAMING_CASE.
//
// Every rune that is not an ASCII letter or digit acts as a word separator,
// camel-case humps are split, and the words are joined with underscores:
//
//	"Not Found"              -> "NOT_FOUND"
//	"I'm a teapot"           -> "I_M_A_TEAPOT"
//	"Request-URI Too Long"   -> "REQUEST_URI_TOO_LONG"
//	"DeadlineExceeded"       -> "DEADLINE_EXCEEDED"
//
// The result is not guaranteed to be valid; Parse checks it.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return strcase.ToScreamingSnake(s)
}

// FromStatusText derives a code from an HTTP reason phrase. An empty phrase
// yields Empty.
func FromStatusText(text string) Code {
	return Code(Normalize(text))
}

// ForStatus derives a code from an HTTP status using the standard reason
// phrase of net/http. Unknown statuses yield Empty.
func ForStatus(status int) Code {
	return FromStatusText(http.StatusText(status))
}

// Validate reports whether c is a well-formed, non-empty code.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// IsEmpty reports whether the code is absent.
func (c Code) IsEmpty() bool {
	return c == Empty
}

// MarshalText implements encoding.TextMarshaler. The empty code marshals to
// an empty slice.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Text is trimmed and stored verbatim: codes coming from configuration are
// never case-converted.
func (c *Code) UnmarshalText(text []byte) error {
	*c = Code(bytes.TrimSpace(text))
	return nil
}

func validate(s string) error {
	if len(s) == 0 || len(s) > MaxLength {
		return ErrCodeInvalid
	}
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
