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
	"bytes"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"

	"dirpx.dev/errfmt/apis"
)

// Transport is an http.RoundTripper that runs a fetch hook on every
// response. When the hook returns an error the response body is closed and
// the error is returned from RoundTrip, so http.Client callers see it
// wrapped in a *url.Error.
type Transport struct {
	// Base performs the request. Nil means http.DefaultTransport.
	Base http.RoundTripper

	// Hook inspects responses. Nil means ClassifyHook().
	Hook apis.FetchHook
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	hook := t.Hook
	if hook == nil {
		hook = ClassifyHook()
	}
	if err := hook(req.Context(), resp); err != nil {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, err
	}
	return resp, nil
}

// RestyMiddleware returns a resty response middleware that classifies
// failed responses. Register it with (*resty.Client).OnAfterResponse.
func RestyMiddleware(opts ...Option) resty.ResponseMiddleware {
	return RestyHook(ClassifyHook(opts...))
}

// RestyHook adapts a fetch hook to resty. resty has already read the body,
// so the hook sees a copy of the raw response backed by those bytes.
func RestyHook(hook apis.FetchHook) resty.ResponseMiddleware {
	return func(_ *resty.Client, r *resty.Response) error {
		if r == nil || r.RawResponse == nil {
			return nil
		}
		raw := *r.RawResponse
		raw.Body = io.NopCloser(bytes.NewReader(r.Body()))
		ctx := r.Request.Context()
		return hook(ctx, &raw)
	}
}
