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

// Package code provides the machine-readable error code type used by errfmt.
//
// A "code" is the top-level classification attached to a normalized error,
// such as "NOT_FOUND", "RATE_LIMIT" or "USER_NOT_FOUND". Codes follow the
// SCREAMING_CASE convention used by GraphQL gateways:
//
//   - uppercase ASCII letters and digits;
//   - words separated by a single underscore;
//   - suitable for JSON payloads and for lookup in status mappers.
//
// Codes coming out of rule tables and upstream message prefixes are used
// verbatim. Normalize is only applied where a code has to be derived from
// free text, e.g. from an HTTP reason phrase ("Not Found" -> "NOT_FOUND")
// or from a gRPC status name ("DeadlineExceeded" -> "DEADLINE_EXCEEDED").
//
// The empty code ("") means "no code" and is a valid value to carry on an
// error. Parse rejects it.
package code
