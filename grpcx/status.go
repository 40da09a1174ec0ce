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

package grpcx

import (
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/adapter"
	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/mapper"
)

// Domain is the ErrorInfo domain of statuses built by this package.
const Domain = "errfmt.dirpx.dev"

// MetadataHTTPStatus is the ErrorInfo metadata key holding the HTTP status.
const MetadataHTTPStatus = "http_status"

// ToStatus converts a normalized error into a gRPC status. The gRPC code is
// resolved via m (nil means mapper.Default()).
//
// If the details cannot be attached the bare status is returned.
func ToStatus(e *errfmt.Error, m apis.Mapper) *status.Status {
	if e == nil {
		return status.New(codes.OK, "")
	}
	if m == nil {
		m = mapper.Default()
	}
	st := m.Status(e.Code)
	base := status.New(st.GRPC, e.Message)

	info := &errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: map[string]string{MetadataHTTPStatus: strconv.Itoa(st.HTTP)},
	}
	with, err := base.WithDetails(info)
	if err != nil {
		return base
	}
	if e.Context != nil {
		if v, err := adapter.ContextValue(e.Context); err == nil {
			if withCtx, err := with.WithDetails(v); err == nil {
				with = withCtx
			}
		}
	}
	return with
}

// FromStatus converts a gRPC status into a normalized error.
//
// The code is the ErrorInfo reason when it is a valid code, otherwise the
// gRPC code name in SCREAMING_CASE ("NotFound" becomes "NOT_FOUND"). A
// google.protobuf.Value detail becomes the context.
func FromStatus(st *status.Status) *errfmt.Error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}
	c := code.Code(code.Normalize(st.Code().String()))
	var ctx any
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if err := code.Validate(code.Code(v.GetReason())); err == nil {
				c = code.Code(v.GetReason())
			}
		case *structpb.Value:
			ctx = v.AsInterface()
		}
	}
	return errfmt.New(st.Message(),
		errfmt.WithCodeOption(c),
		errfmt.WithContextOption(ctx),
		errfmt.WithCauseOption(st.Err()),
	)
}

// ExtractInfo pulls the ErrorInfo detail out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractContext pulls the context detail out of a gRPC error, if present.
func ExtractContext(err error) (any, bool) {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if v, ok := d.(*structpb.Value); ok {
			return v.AsInterface(), true
		}
	}
	return nil, false
}
