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

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/mapper/internal/segmenttrie"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all family prefixes.
//  4. Build one segment trie per transport.
//  5. Freeze all maps into immutable copies.
//
// Errors returned from this function indicate invalid prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTrie("HTTP", b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTrie("gRPC", b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freezeInt(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeInt(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// Default returns a mapper with library defaults only.
func Default() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err) // defaults carry no prefixes
	}
	return m
}

// mapper combines per-code defaults, per-code exact overrides and family
// prefix tries. Lookups are O(segments) and safe for concurrent use once
// constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// httpTrie and grpcTrie resolve family prefixes ("_"-separated, with
	// "*" for one-segment wildcards). Nil when no prefix was registered.
	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	// fallbackHTTP and fallbackGRPC are used when nothing else matches.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. family longest-prefix-match;
//  3. per-code default;
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(c code.Code) int {
	v, _, _ := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	v, _, _ := m.resolveGRPC(c)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a code.
//
// Example output:
//
//	code="USER_NOT_FOUND"
//	http: source=prefix pattern="USER" -> 404
//	grpc: source=fallback -> INTERNAL(13)
//
// source is one of override, prefix, default or fallback. pattern is the
// rule as it was stored in the trie (may contain "*").
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)

	v, src, pat := m.resolveHTTP(c)
	if src == "prefix" {
		_, _ = fmt.Fprintf(&b, "http: source=prefix pattern=%q -> %d\n", pat, v)
	} else {
		_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, v)
	}

	g, src, pat := m.resolveGRPC(c)
	if src == "prefix" {
		_, _ = fmt.Fprintf(&b, "grpc: source=prefix pattern=%q -> %s", pat, grpcName(g))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", src, grpcName(g))
	}
	return b.String()
}

// resolveHTTP returns the status, the tier that produced it and, for
// prefix hits, the matched pattern.
func (m *mapper) resolveHTTP(c code.Code) (int, string, string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, "override", ""
	}
	if v, ok, pat := m.httpTrie.MatchWithPattern(string(c)); ok {
		return v, "prefix", pat
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, "default", ""
	}
	return m.fallbackHTTP, "fallback", ""
}

func (m *mapper) resolveGRPC(c code.Code) (codes.Code, string, string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, "override", ""
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(string(c)); ok {
		return v, "prefix", pat
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v, "default", ""
	}
	return m.fallbackGRPC, "fallback", ""
}
