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

// Package apis defines the public Go-level contracts between the error
// normalization engine and the gateway that hosts it.
//
// The gateway (the host) owns upstream transport and field delegation. It
// exposes two interception points:
//
//   - fetch: every upstream HTTP response passes through a FetchHook before
//     the host decodes it. A hook returning a non-nil error raises that error
//     as the upstream failure;
//   - delegate: every delegated root-field result passes through a
//     DelegateHook, which may replace the error variant of the result.
//
// The engine registers itself through the Host interface and never imports
// the concrete gateway. Transport adapters (httpx, grpcx) depend on the same
// contracts, as do the emitted view types.
//
// This package only contains interfaces and small value types.
package apis
