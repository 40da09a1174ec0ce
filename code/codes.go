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

// HTTP-derived codes.
//
// These are the codes the HTTP entry point produces from standard reason
// phrases (see ForStatus). They are listed so that mappers and rule tables
// can refer to them without string literals.
const (
	BadRequest          Code = "BAD_REQUEST"           // 400
	Unauthorized        Code = "UNAUTHORIZED"          // 401
	Forbidden           Code = "FORBIDDEN"             // 403
	NotFound            Code = "NOT_FOUND"             // 404
	MethodNotAllowed    Code = "METHOD_NOT_ALLOWED"    // 405
	RequestTimeout      Code = "REQUEST_TIMEOUT"       // 408
	Conflict            Code = "CONFLICT"              // 409
	Gone                Code = "GONE"                  // 410
	PreconditionFailed  Code = "PRECONDITION_FAILED"   // 412
	UnprocessableEntity Code = "UNPROCESSABLE_ENTITY"  // 422
	TooManyRequests     Code = "TOO_MANY_REQUESTS"     // 429
	InternalServerError Code = "INTERNAL_SERVER_ERROR" // 500
	NotImplemented      Code = "NOT_IMPLEMENTED"       // 501
	BadGateway          Code = "BAD_GATEWAY"           // 502
	ServiceUnavailable  Code = "SERVICE_UNAVAILABLE"   // 503
	GatewayTimeout      Code = "GATEWAY_TIMEOUT"       // 504
)

// gRPC-derived codes.
//
// Upstream sources reached over gRPC report google.golang.org/grpc/codes
// values; their names normalized with Normalize give these codes.
const (
	Canceled           Code = "CANCELED"
	Unknown            Code = "UNKNOWN"
	InvalidArgument    Code = "INVALID_ARGUMENT"
	DeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	AlreadyExists      Code = "ALREADY_EXISTS"
	PermissionDenied   Code = "PERMISSION_DENIED"
	ResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	FailedPrecondition Code = "FAILED_PRECONDITION"
	Aborted            Code = "ABORTED"
	OutOfRange         Code = "OUT_OF_RANGE"
	Unimplemented      Code = "UNIMPLEMENTED"
	Internal           Code = "INTERNAL"
	Unavailable        Code = "UNAVAILABLE"
	DataLoss           Code = "DATA_LOSS"
	Unauthenticated    Code = "UNAUTHENTICATED"
)

// Gateway-level codes used when there is nothing better to report.
const (
	// UpstreamError is attached to upstream failures whose status has no
	// reason phrase at all.
	UpstreamError Code = "UPSTREAM_ERROR"
)
