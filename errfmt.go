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

// Package errfmt defines the canonical normalized error of the gateway and
// the value operations the normalization pipeline is built from.
//
// An Error carries a human message, an optional machine-readable code, an
// optional structured context and a set of passthrough fields the host needs
// (locations, path, source text, cause). The code and the context together
// form the error "extensions". Any other extension key picked up on the way
// lives in Extra until Sanitize drops it.
//
// All WithX helpers return a shallow copy, so Error values can be shared
// between goroutines and rewritten in a functional style.
package errfmt

import (
	"fmt"

	"dirpx.dev/errfmt/code"
)

// Extension keys that survive sanitation.
const (
	ExtensionCode    = "code"
	ExtensionContext = "context"
)

// Location is a position in the source document of the failing operation.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Error is the normalized error flowing through the pipeline.
type Error struct {
	// Message is the human-readable description.
	Message string

	// Code is the machine-readable identifier. Empty means "no code".
	Code code.Code

	// Context is the structured auxiliary payload. Nil means "no context".
	// It is usually a map[string]any, but errors built from upstream
	// bodies may carry any JSON value here.
	Context any

	// Extra holds extension keys other than code and context. It is a
	// working area only: Sanitize removes it before the error is emitted.
	Extra map[string]any

	// Locations, Path and Source are opaque to errfmt and are carried
	// unchanged through every rewrite.
	Locations []Location
	Path      []any
	Source    string

	// Cause holds the wrapped original error, if any.
	Cause error
}

// New builds an Error with the given message and applies opts in order.
func New(msg string, opts ...Option) *Error {
	e := &Error{Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// FromExtensions builds an Error from a message and a loose extensions bag.
// The "code" (when it is a string) and "context" keys are lifted into the
// dedicated fields; everything else lands in Extra.
func FromExtensions(msg string, ext map[string]any) *Error {
	return (&Error{Message: msg}).WithExtensions(ext)
}

// Error implements the error interface.
//
// The format is "<CODE>: <message>", or just the message when there is no
// code.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Code.IsEmpty() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// WithMessage returns a copy of e with the message replaced.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCode returns a copy of e with the code replaced.
func (e *Error) WithCode(c code.Code) *Error {
	cp := *e
	cp.Code = c
	return &cp
}

// WithContext returns a copy of e with the context replaced. Passing nil
// removes the context.
func (e *Error) WithContext(ctx any) *Error {
	cp := *e
	cp.Context = ctx
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// WithExtension returns a copy of e with a single extension key set.
// "code" and "context" are routed to their fields; a non-string code value
// is stored in its fmt.Sprint form, and nil clears the code.
func (e *Error) WithExtension(k string, v any) *Error {
	return e.WithExtensions(map[string]any{k: v})
}

// WithExtensions returns a copy of e with kv merged into its extensions.
//
// Merge policy: keys present in kv win, every other key already on e is
// kept. The Extra map is copied, never shared with the input.
func (e *Error) WithExtensions(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	var extra map[string]any
	for k, v := range kv {
		switch k {
		case ExtensionCode:
			if s, ok := v.(string); ok {
				cp.Code = code.Code(s)
				continue
			}
			if c, ok := v.(code.Code); ok {
				cp.Code = c
				continue
			}
			if v == nil {
				cp.Code = code.Empty
				continue
			}
			cp.Code = code.Code(fmt.Sprint(v))
			continue
		case ExtensionContext:
			cp.Context = v
			continue
		}
		if extra == nil {
			extra = make(map[string]any, len(e.Extra)+len(kv))
			for k0, v0 := range e.Extra {
				extra[k0] = v0
			}
		}
		extra[k] = v
	}
	if extra != nil {
		cp.Extra = extra
	}
	return &cp
}

// Extensions returns a fresh map with every extension of e, including the
// transient Extra keys. Absent code and context are omitted.
func (e *Error) Extensions() map[string]any {
	out := make(map[string]any, len(e.Extra)+2)
	for k, v := range e.Extra {
		out[k] = v
	}
	if !e.Code.IsEmpty() {
		out[ExtensionCode] = string(e.Code)
	}
	if e.Context != nil {
		out[ExtensionContext] = e.Context
	}
	return out
}

// Sanitize returns a copy of e whose extensions are reduced to code and
// context. It is the last stage of the pipeline and is always applied.
func (e *Error) Sanitize() *Error {
	cp := *e
	cp.Extra = nil
	return &cp
}
