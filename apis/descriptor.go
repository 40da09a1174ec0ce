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

// ErrorDescriptor is a flat, transport-friendly description of a normalized
// error together with the statuses it maps to.
//
// This type intentionally uses plain strings and ints so that it can be
// logged or marshaled without importing the code package.
type ErrorDescriptor struct {
	// Code is the normalized SCREAMING_CASE code, e.g. "USER_NOT_FOUND".
	// It is empty when the error carries no code.
	Code string `json:"code,omitempty"`

	// Message is the final, client-visible message.
	Message string `json:"message"`

	// HTTPStatus is the HTTP status the code maps to.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the gRPC status code (as integer) the code maps to.
	GRPCCode int `json:"grpc_code"`

	// Context is the sanitized context payload, if any.
	Context any `json:"context,omitempty"`
}

// CodedError is implemented by foreign errors that carry a machine-readable
// code. Adapters use it when turning arbitrary errors into normalized ones.
type CodedError interface {
	error

	// ErrorCode returns the code. It may be in any casing; adapters
	// normalize it.
	ErrorCode() string
}
