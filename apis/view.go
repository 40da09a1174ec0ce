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

import "dirpx.dev/errfmt"

// ErrorView is the shape an error takes in the gateway response:
//
//	{
//	  "message": "User 42 could not be located",
//	  "locations": [{"line": 2, "column": 3}],
//	  "path": ["getUser"],
//	  "extensions": {"code": "USER_NOT_FOUND", "context": {"userId": 42}}
//	}
//
// Only the code and context extensions are ever emitted.
type ErrorView struct {
	Message    string            `json:"message"`
	Locations  []errfmt.Location `json:"locations,omitempty"`
	Path       []any             `json:"path,omitempty"`
	Extensions *ViewExtensions   `json:"extensions,omitempty"`
}

// ViewExtensions is the closed extension record of an emitted error.
type ViewExtensions struct {
	Code    string `json:"code,omitempty"`
	Context any    `json:"context,omitempty"`
}

// Response is the body written for a failed request.
type Response struct {
	Errors []ErrorView `json:"errors"`
}
