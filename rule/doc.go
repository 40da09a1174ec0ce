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

// Package rule compiles and applies formatter rules.
//
// A rule is a regular expression plus rewrite templates:
//
//	match:   "user (\\d+) not found"
//	message: "User $1 could not be located"
//	code:    USER_NOT_FOUND
//	context:
//	  userId: "$1"
//	  retryable: false
//
// When the pattern matches the current message of an error, the message is
// rewritten from its template, the code is replaced, and the context is
// rebuilt from its template. String context values have their "$N"
// references expanded and are then coerced to typed values ("42" becomes a
// number, "true" a boolean, "" removes the key). Other values are copied.
//
// Rules are applied in order and compose: every rule sees the error as the
// previous rule left it, including the rewritten message its captures are
// computed against. A rule whose pattern does not match is a no-op.
//
// # Legacy context projection
//
// A rule may name a MessageKey and/or a CodeKey. When the current context
// of the error is an object holding that key, its value replaces the
// message (or the code) before the pattern is evaluated. The projection is
// kept only if the rule then matches. Both keys are empty by default, which
// disables the projection.
//
// # Compilation
//
// Patterns use Go regexp (RE2) syntax and are compiled once by Compile.
// An invalid pattern is reported as ErrInvalidPattern at load time instead
// of being skipped at match time.
package rule
