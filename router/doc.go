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

// Package router selects the ordered rule list that governs a delegation
// call site.
//
// # Overview
//
// A gateway delegates the resolution of root fields to named upstream
// sources. The rule table is a list of source entries, each keyed by:
//
//  1. the source name (e.g. "users");
//  2. the parent type name ("Query" or "Mutation");
//  3. a set of field names (e.g. "getUser", "listUsers").
//
// For a call site (source, type, field) the router returns the rules of the
// first entry, in declaration order, whose source and type are equal and
// whose field set contains the field. No matching entry is the common case
// and yields an empty list.
//
// # Building a router
//
// A Router is built once and reused:
//
//	r, err := router.New(
//	    router.WithSource(router.Source{
//	        Name:   "users",
//	        Type:   router.Query,
//	        Fields: []string{"getUser"},
//	        Rules:  []rule.Spec{{Match: "user missing", Code: "USER_NOT_FOUND"}},
//	    }),
//	)
//	if err != nil {
//	    // invalid rule pattern
//	}
//
//	rules := r.Route("users", router.Query, "getUser")
//
// All rule patterns are compiled during New; an invalid pattern makes New
// fail.
//
// # Diagnostics
//
// Router.Explain returns a human-readable trace of the routing decision for
// a call site. It is meant for logs and tests, not for machine parsing.
//
// # Immutability
//
// All inputs are copied during New. A Router is safe to share across
// goroutines.
package router
