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

// Package adapter converts normalized errors into the shapes transport
// layers emit.
package adapter

import (
	"errors"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/code"
)

// ToDescriptor converts a normalized error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging and for the CLI. It
// carries both the logical code and the concrete transport statuses.
func ToDescriptor(e *errfmt.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       string(e.Code),
		Message:    e.Message,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Context:    e.Context,
	}
}

// ToView converts a normalized error into its emitted shape.
//
// Only the code and context extensions are exposed; Extra keys never reach
// the view even if the error was not sanitized. The extensions object is
// omitted when both are absent.
func ToView(e *errfmt.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Message: e.Message,
	}
	if len(e.Locations) > 0 {
		v.Locations = append([]errfmt.Location(nil), e.Locations...)
	}
	if len(e.Path) > 0 {
		v.Path = append([]any(nil), e.Path...)
	}
	if !e.Code.IsEmpty() || e.Context != nil {
		v.Extensions = &apis.ViewExtensions{
			Code:    string(e.Code),
			Context: e.Context,
		}
	}
	return v
}

// FromError turns an arbitrary error into a normalized one.
//
//   - a *errfmt.Error anywhere in the chain is returned as-is;
//   - an apis.CodedError keeps its message and gets its code normalized;
//   - anything else becomes an INTERNAL error with the original message.
//
// The original error is kept as the cause. A nil err yields nil.
func FromError(err error) *errfmt.Error {
	if err == nil {
		return nil
	}
	var fe *errfmt.Error
	if errors.As(err, &fe) {
		return fe
	}
	c := code.Internal
	var ce apis.CodedError
	if errors.As(err, &ce) {
		if n, perr := code.Parse(ce.ErrorCode()); perr == nil {
			c = n
		}
	}
	return errfmt.New(err.Error(), errfmt.WithCodeOption(c), errfmt.WithCauseOption(err))
}
