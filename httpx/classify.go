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
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/code"
)

// ExtensionStatus is the transient extension carrying the upstream status.
const ExtensionStatus = "status"

// Option configures classification.
type Option func(*options)

type options struct {
	maxBody int64
}

// WithMaxBodyBytes bounds how much of the body is inspected. A larger body
// is ignored for classification, as if it were empty, and is handed back
// to the caller untouched. Zero or less means no limit.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) { o.maxBody = n }
}

// Classify inspects an upstream response.
//
// Responses below 400 yield (nil, nil) and are not touched. For failures the
// whole body is read and a normalized error is built by FromBody; the body
// is then restored on resp so the host can still read it.
//
// Reading honours ctx. When ctx ends first the body is closed and ctx.Err()
// is returned without any error value.
func Classify(ctx context.Context, resp *http.Response, opts ...Option) (*errfmt.Error, error) {
	if resp == nil || resp.StatusCode < http.StatusBadRequest {
		return nil, nil
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	body, err := readBody(ctx, resp, o.maxBody)
	if err != nil {
		return nil, err
	}
	return FromBody(resp.StatusCode, ReasonPhrase(resp), body), nil
}

// ClassifyHook adapts Classify to the host fetch hook.
func ClassifyHook(opts ...Option) apis.FetchHook {
	return func(ctx context.Context, resp *http.Response) error {
		e, err := Classify(ctx, resp, opts...)
		if err != nil {
			return err
		}
		if e != nil {
			return e
		}
		return nil
	}
}

// FromBody builds the error raised for a failed upstream response.
//
//   - message: the string "message" member of a JSON body; else the text of
//     a non-JSON, non-empty body; else the reason phrase;
//   - context: the parsed body when it is valid JSON, else {"message": message};
//   - code: the reason phrase in SCREAMING_CASE, or UPSTREAM_ERROR when
//     there is no phrase.
//
// The status is kept as a transient extension.
func FromBody(status int, reason string, body []byte) *errfmt.Error {
	msg := reason
	if msg == "" {
		msg = fmt.Sprintf("Upstream responded with status %d", status)
	}

	var ctx any
	if len(body) > 0 && gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		if m := parsed.Get("message"); parsed.IsObject() && m.Type == gjson.String {
			msg = m.String()
		}
		ctx = parsed.Value()
	} else {
		if len(body) > 0 {
			msg = string(body)
		}
		ctx = map[string]any{"message": msg}
	}

	c := code.FromStatusText(reason)
	if c.IsEmpty() {
		c = code.UpstreamError
	}
	return errfmt.New(msg,
		errfmt.WithCodeOption(c),
		errfmt.WithContextOption(ctx),
		errfmt.WithExtensionsOption(map[string]any{ExtensionStatus: status}),
	)
}

// ReasonPhrase returns the reason phrase of resp: the text after the status
// code in resp.Status, or the standard phrase when Status carries none.
func ReasonPhrase(resp *http.Response) string {
	s := strings.TrimSpace(resp.Status)
	s = strings.TrimSpace(strings.TrimPrefix(s, strconv.Itoa(resp.StatusCode)))
	if s != "" {
		return s
	}
	return http.StatusText(resp.StatusCode)
}

type readResult struct {
	data     []byte
	tooLarge bool
	err      error
}

// readBody reads the whole body, or nothing. The body is always restored
// on resp, except on error.
func readBody(ctx context.Context, resp *http.Response, limit int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil, nil
	}
	orig := resp.Body

	done := make(chan readResult, 1)
	go func() {
		var r io.Reader = orig
		if limit > 0 {
			r = io.LimitReader(orig, limit+1)
		}
		data, err := io.ReadAll(r)
		done <- readResult{
			data:     data,
			tooLarge: limit > 0 && int64(len(data)) > limit,
			err:      err,
		}
	}()

	select {
	case <-ctx.Done():
		_ = orig.Close()
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			_ = orig.Close()
			return nil, fmt.Errorf("httpx: read upstream body: %w", res.err)
		}
		if res.tooLarge {
			resp.Body = readCloser{
				Reader: io.MultiReader(bytes.NewReader(res.data), orig),
				Closer: orig,
			}
			return nil, nil
		}
		_ = orig.Close()
		resp.Body = io.NopCloser(bytes.NewReader(res.data))
		return res.data, nil
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}
