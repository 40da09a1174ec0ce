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

// Package formatter is the normalization pipeline of the gateway.
//
// A Formatter is built once from a config.Config and is then read-only. It
// has two entry points, matching the two hooks of apis.Host:
//
//   - OnFetch classifies failed upstream HTTP responses into *errfmt.Error
//     values (see httpx.Classify);
//   - OnDelegate rewrites the error variant of a delegated field result:
//     prefix extraction, routing by call site, the routed rules in order,
//     and sanitation.
//
// Register installs both hooks on a host when the formatter is enabled.
package formatter
