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

package adapter

import (
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errfmt/apis"
)

// ToStruct renders a view as a protobuf Struct, so it can be marshaled with
// protojson or attached to a gRPC status.
//
// It fails when the context holds values structpb cannot represent.
func ToStruct(v apis.ErrorView) (*structpb.Struct, error) {
	return structpb.NewStruct(viewMap(v))
}

// ContextValue renders a context payload as a protobuf Value.
func ContextValue(ctx any) (*structpb.Value, error) {
	return structpb.NewValue(ctx)
}

func viewMap(v apis.ErrorView) map[string]any {
	m := map[string]any{"message": v.Message}
	if len(v.Locations) > 0 {
		locs := make([]any, 0, len(v.Locations))
		for _, l := range v.Locations {
			locs = append(locs, map[string]any{"line": l.Line, "column": l.Column})
		}
		m["locations"] = locs
	}
	if len(v.Path) > 0 {
		m["path"] = append([]any(nil), v.Path...)
	}
	if v.Extensions != nil {
		ext := map[string]any{}
		if v.Extensions.Code != "" {
			ext["code"] = v.Extensions.Code
		}
		if v.Extensions.Context != nil {
			ext["context"] = v.Extensions.Context
		}
		m["extensions"] = ext
	}
	return m
}
