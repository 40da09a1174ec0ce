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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errfmt/code"
)

// defaultHTTP maps the codes the gateway derives on its own to HTTP statuses.
// HTTP-derived codes map back to the status they came from; gRPC-derived
// codes follow the usual gRPC to HTTP conventions.
var defaultHTTP = map[code.Code]int{
	// HTTP-derived.
	code.BadRequest:          http.StatusBadRequest,
	code.Unauthorized:        http.StatusUnauthorized,
	code.Forbidden:           http.StatusForbidden,
	code.NotFound:            http.StatusNotFound,
	code.MethodNotAllowed:    http.StatusMethodNotAllowed,
	code.RequestTimeout:      http.StatusRequestTimeout,
	code.Conflict:            http.StatusConflict,
	code.Gone:                http.StatusGone,
	code.PreconditionFailed:  http.StatusPreconditionFailed,
	code.UnprocessableEntity: http.StatusUnprocessableEntity,
	code.TooManyRequests:     http.StatusTooManyRequests,
	code.InternalServerError: http.StatusInternalServerError,
	code.NotImplemented:      http.StatusNotImplemented,
	code.BadGateway:          http.StatusBadGateway,
	code.ServiceUnavailable:  http.StatusServiceUnavailable,
	code.GatewayTimeout:      http.StatusGatewayTimeout,

	// gRPC-derived.
	// Note: 499 is a non-standard but widely used code (nginx) for "client closed request".
	code.Canceled:           499,
	code.Unknown:            http.StatusInternalServerError,
	code.InvalidArgument:    http.StatusBadRequest,
	code.DeadlineExceeded:   http.StatusGatewayTimeout,
	code.AlreadyExists:      http.StatusConflict,
	code.PermissionDenied:   http.StatusForbidden,
	code.ResourceExhausted:  http.StatusTooManyRequests,
	code.FailedPrecondition: http.StatusBadRequest,
	code.Aborted:            http.StatusConflict,
	code.OutOfRange:         http.StatusBadRequest,
	code.Unimplemented:      http.StatusNotImplemented,
	code.Internal:           http.StatusInternalServerError,
	code.Unavailable:        http.StatusServiceUnavailable,
	code.DataLoss:           http.StatusInternalServerError,
	code.Unauthenticated:    http.StatusUnauthorized,

	// Gateway.
	code.UpstreamError: http.StatusBadGateway,
}

// defaultGRPC maps the same codes to canonical gRPC status codes.
var defaultGRPC = map[code.Code]codes.Code{
	// HTTP-derived.
	code.BadRequest:          codes.InvalidArgument,
	code.Unauthorized:        codes.Unauthenticated,
	code.Forbidden:           codes.PermissionDenied,
	code.NotFound:            codes.NotFound,
	code.MethodNotAllowed:    codes.Unimplemented,
	code.RequestTimeout:      codes.DeadlineExceeded,
	code.Conflict:            codes.Aborted,
	code.Gone:                codes.NotFound, // gRPC has no 410
	code.PreconditionFailed:  codes.FailedPrecondition,
	code.UnprocessableEntity: codes.InvalidArgument,
	code.TooManyRequests:     codes.ResourceExhausted,
	code.InternalServerError: codes.Internal,
	code.NotImplemented:      codes.Unimplemented,
	code.BadGateway:          codes.Unavailable,
	code.ServiceUnavailable:  codes.Unavailable,
	code.GatewayTimeout:      codes.DeadlineExceeded,

	// gRPC-derived map to themselves.
	code.Canceled:           codes.Canceled,
	code.Unknown:            codes.Unknown,
	code.InvalidArgument:    codes.InvalidArgument,
	code.DeadlineExceeded:   codes.DeadlineExceeded,
	code.AlreadyExists:      codes.AlreadyExists,
	code.PermissionDenied:   codes.PermissionDenied,
	code.ResourceExhausted:  codes.ResourceExhausted,
	code.FailedPrecondition: codes.FailedPrecondition,
	code.Aborted:            codes.Aborted,
	code.OutOfRange:         codes.OutOfRange,
	code.Unimplemented:      codes.Unimplemented,
	code.Internal:           codes.Internal,
	code.Unavailable:        codes.Unavailable,
	code.DataLoss:           codes.DataLoss,
	code.Unauthenticated:    codes.Unauthenticated,

	// Gateway.
	code.UpstreamError: codes.Unavailable,
}
