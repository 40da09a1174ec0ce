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
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/mapper"
)

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":1}`)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"404 USER_NOT_FOUND: user 42 missing"}`)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "stack trace here")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestTransport(t *testing.T) {
	srv := upstream(t)
	client := &http.Client{Transport: &Transport{}}

	t.Run("Should pass successful responses through", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/ok")
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"id":1}`, string(b))
	})

	t.Run("Should raise normalized errors", func(t *testing.T) {
		_, err := client.Get(srv.URL + "/missing")
		var fe *errfmt.Error
		require.True(t, errors.As(err, &fe), "got %v", err)
		assert.Equal(t, "404 USER_NOT_FOUND: user 42 missing", fe.Message)
		assert.Equal(t, code.NotFound, fe.Code)
	})

	t.Run("Should use a custom hook", func(t *testing.T) {
		var seen int
		c := &http.Client{Transport: &Transport{Hook: func(_ context.Context, resp *http.Response) error {
			seen = resp.StatusCode
			return nil
		}}}
		resp, err := c.Get(srv.URL + "/broken")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, seen)
	})
}

func TestRestyMiddleware(t *testing.T) {
	srv := upstream(t)
	client := resty.New().SetBaseURL(srv.URL).OnAfterResponse(RestyMiddleware())

	t.Run("Should pass successful responses through", func(t *testing.T) {
		resp, err := client.R().Get("/ok")
		require.NoError(t, err)
		assert.Equal(t, `{"id":1}`, resp.String())
	})

	t.Run("Should raise normalized errors", func(t *testing.T) {
		_, err := client.R().Get("/broken")
		var fe *errfmt.Error
		require.True(t, errors.As(err, &fe), "got %v", err)
		assert.Equal(t, "stack trace here", fe.Message)
		assert.Equal(t, code.InternalServerError, fe.Code)
	})
}

func TestWriter(t *testing.T) {
	t.Run("Should write the emitted view with the mapped status", func(t *testing.T) {
		m, err := mapper.New(mapper.WithHTTPPrefix("USER", 404), mapper.WithGRPCPrefix("USER", int(codes.NotFound)))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		e := errfmt.New("User 42 could not be located",
			errfmt.WithCodeOption("USER_NOT_FOUND"),
			errfmt.WithContextOption(map[string]any{"userId": 42.0}),
			errfmt.WithExtensionsOption(map[string]any{"stack": "secret"}),
			errfmt.WithPathOption("getUser"),
		)
		Writer{Mapper: m}.Write(rec, e)

		assert.Equal(t, 404, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, map[string]any{
			"errors": []any{map[string]any{
				"message": "User 42 could not be located",
				"path":    []any{"getUser"},
				"extensions": map[string]any{
					"code":    "USER_NOT_FOUND",
					"context": map[string]any{"userId": 42.0},
				},
			}},
		}, got)
	})

	t.Run("Should default the mapper and fall back to encoding/json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		type payload struct {
			N int `json:"n"`
		}
		Writer{}.Write(rec, nil, errfmt.New("bad", errfmt.WithCodeOption(code.BadRequest), errfmt.WithContextOption(payload{N: 1})))

		assert.Equal(t, 400, rec.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		errs := got["errors"].([]any)
		require.Len(t, errs, 1)
		ext := errs[0].(map[string]any)["extensions"].(map[string]any)
		assert.Equal(t, map[string]any{"n": 1.0}, ext["context"])
	})

	t.Run("Should write nothing without errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Writer{}.Write(rec, nil)
		assert.Equal(t, 0, rec.Body.Len())
	})
}
