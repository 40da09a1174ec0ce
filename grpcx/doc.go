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

// Package grpcx is the gRPC side of the gateway error boundary.
//
// For upstream sources reached over gRPC, UnaryClientInterceptor turns a
// failed call into a normalized error, passes it through a delegate hook
// (normally the formatter) and turns the result back into a status.
//
// For services exposing normalized errors, UnaryServerInterceptor converts
// *errfmt.Error values returned by handlers into statuses.
//
// A status built here carries two details:
//
//   - a google.rpc.ErrorInfo whose reason is the code and whose metadata
//     holds the mapped HTTP status;
//   - a google.protobuf.Value holding the context, when there is one.
package grpcx
