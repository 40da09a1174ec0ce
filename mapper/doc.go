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

// Package mapper provides deterministic, immutable mappings from normalized
// error codes (dirpx.dev/errfmt/code) to transport-level statuses for HTTP
// and gRPC.
//
// # Overview
//
// Normalized errors carry a SCREAMING_CASE code such as "USER_NOT_FOUND" or
// "SERVICE_UNAVAILABLE". Codes form families by their leading segments:
// "USER_NOT_FOUND" and "USER_SUSPENDED" both belong to "USER". Transport
// layers (the gateway's HTTP response writer, gRPC interceptors) need a
// concrete status for every code, including codes invented by rule tables.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. longest-prefix-match (LPM) over the code's family prefixes;
//  3. default for the code (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: codes are treated as "_"-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix("USER", http.StatusNotFound)
//	WithHTTPPrefix("*_NOT_FOUND", http.StatusNotFound)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The package ships with defaults for the codes the gateway itself produces:
// every HTTP-derived code maps back to its status (code.NotFound -> 404 /
// NotFound) and every gRPC-derived code maps to its canonical HTTP status
// (code.DeadlineExceeded -> 504 / DeadlineExceeded).
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Canceled, 408),
//	    mapper.WithHTTPPrefix("USER", 404),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status("USER_NOT_FOUND")
//	// st.HTTP == 404, st.GRPC == codes.Internal
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a code was resolved, including which tier matched and, for prefixes,
// which pattern was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. A Mapper is safe to share
// across handlers, goroutines, and requests.
package mapper
