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

package apis

import (
	"context"
	"net/http"

	"dirpx.dev/errfmt"
)

// Call identifies the site of a field delegation.
type Call struct {
	// SourceName is the upstream source the field is delegated to.
	SourceName string

	// TypeName is the parent type of the field, "Query" or "Mutation".
	TypeName string

	// FieldName is the delegated root field.
	FieldName string
}

// Result is the outcome of a delegated field: either a value or an error.
type Result struct {
	Value any
	Err   *errfmt.Error
}

// Success wraps a value.
func Success(v any) Result {
	return Result{Value: v}
}

// Failure wraps an error.
func Failure(e *errfmt.Error) Result {
	return Result{Err: e}
}

// IsError reports whether r is the error variant.
func (r Result) IsError() bool {
	return r.Err != nil
}

// FetchHook observes an upstream HTTP response. A non-nil error is raised
// by the host as the upstream failure instead of decoding the response.
type FetchHook func(ctx context.Context, resp *http.Response) error

// DelegateHook observes and may replace the result of a delegated field.
type DelegateHook func(ctx context.Context, call Call, res Result) Result

// Host is the gateway that accepts interception hooks.
type Host interface {
	OnFetch(h FetchHook)
	OnDelegate(h DelegateHook)
}
