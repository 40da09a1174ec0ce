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

package httpx

import (
	"encoding/json"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/adapter"
	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/mapper"
)

// Writer is a thin adapter that knows how to turn normalized errors into an
// HTTP response using the provided status mapper.
type Writer struct {
	// Mapper picks the status. Nil means mapper.Default().
	Mapper apis.Mapper
}

// Write renders errs as {"errors": [...]} and writes it to rw. The HTTP
// status is resolved from the code of the first error. Nil entries are
// skipped; with no errors left nothing is written.
//
// Every error goes through the emitted view, so only the code and context
// extensions are exposed.
func (w Writer) Write(rw http.ResponseWriter, errs ...*errfmt.Error) {
	views := make([]apis.ErrorView, 0, len(errs))
	first := code.Empty
	for _, e := range errs {
		if e == nil {
			continue
		}
		if len(views) == 0 {
			first = e.Code
		}
		views = append(views, adapter.ToView(e))
	}
	if len(views) == 0 {
		return
	}

	m := w.Mapper
	if m == nil {
		m = mapper.Default()
	}
	st := m.Status(first)

	b, err := marshalResponse(views)
	if err != nil {
		b, _ = json.Marshal(apis.Response{Errors: views})
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(b)
}

// marshalResponse encodes the response with protojson. It fails when a
// context holds values structpb cannot represent.
func marshalResponse(views []apis.ErrorView) ([]byte, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(views))}
	for _, v := range views {
		s, err := adapter.ToStruct(v)
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, structpb.NewStructValue(s))
	}
	root := &structpb.Struct{Fields: map[string]*structpb.Value{
		"errors": structpb.NewListValue(list),
	}}
	return protojson.Marshal(root)
}
