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

package errfmt

import "dirpx.dev/errfmt/code"

// Option transforms an Error under construction. It always returns a
// (possibly new) *Error.
type Option func(*Error) *Error

// WithCodeOption sets the code. Intended for New.
func WithCodeOption(c code.Code) Option {
	return func(e *Error) *Error { return e.WithCode(c) }
}

// WithContextOption sets the context. Intended for New.
func WithContextOption(ctx any) Option {
	return func(e *Error) *Error { return e.WithContext(ctx) }
}

// WithExtensionsOption merges an extensions bag. Intended for New.
func WithExtensionsOption(kv map[string]any) Option {
	return func(e *Error) *Error { return e.WithExtensions(kv) }
}

// WithCauseOption attaches a cause. Intended for New.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}

// WithPathOption sets the response path of the failing field.
func WithPathOption(path ...any) Option {
	return func(e *Error) *Error {
		cp := *e
		cp.Path = append([]any(nil), path...)
		return &cp
	}
}

// WithLocationsOption sets the source locations of the failing field.
func WithLocationsOption(locs ...Location) Option {
	return func(e *Error) *Error {
		cp := *e
		cp.Locations = append([]Location(nil), locs...)
		return &cp
	}
}
