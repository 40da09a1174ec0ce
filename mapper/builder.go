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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errfmt/code"
)

type prefixRule struct {
	// prefix is the raw family prefix (may contain "*").
	// It is normalized and validated when the trie is built.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	val int
}

type builder struct {
	// httpDefaults holds per-code HTTP defaults, seeded with library defaults.
	httpDefaults map[code.Code]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted in New().
	grpcDefaults map[code.Code]int

	// httpOverride holds exact per-code HTTP overrides.
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints.
	grpcOverride map[code.Code]int

	// httpPrefixes and grpcPrefixes hold family rules in insertion order.
	// A later rule for the same prefix replaces an earlier one.
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// global fallbacks used when nothing else matches.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),

		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
