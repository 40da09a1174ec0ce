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

package formatter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/config"
	"dirpx.dev/errfmt/httpx"
	"dirpx.dev/errfmt/logger"
	"dirpx.dev/errfmt/mapper"
	"dirpx.dev/errfmt/metrics"
	"dirpx.dev/errfmt/prefix"
	"dirpx.dev/errfmt/router"
	"dirpx.dev/errfmt/rule"
)

// Formatter is an immutable, concurrency-safe normalization pipeline.
type Formatter struct {
	enabled bool
	router  *router.Router
	mapper  apis.Mapper
	log     logger.Logger
	metrics *metrics.Metrics
	maxBody int64
}

// New validates cfg and compiles it into a Formatter. A nil cfg means
// config.DefaultConfig().
//
// Invalid rule patterns are reported here, wrapping rule.ErrInvalidPattern.
func New(cfg *config.Config, opts ...Option) (*Formatter, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("formatter: %w", err)
	}

	r, err := router.New(cfg.RouterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("formatter: %w", err)
	}

	m := b.mapper
	if m == nil {
		mopts, err := cfg.MapperOptions()
		if err != nil {
			return nil, fmt.Errorf("formatter: %w", err)
		}
		if m, err = mapper.New(mopts...); err != nil {
			return nil, fmt.Errorf("formatter: %w", err)
		}
	}

	log := b.log
	if log == nil {
		log = logger.NewLogger(cfg.LoggerConfig())
	}

	return &Formatter{
		enabled: cfg.Enabled.Resolve(b.lookup),
		router:  r,
		mapper:  m,
		log:     log,
		metrics: b.metrics,
		maxBody: cfg.HTTP.MaxBodyBytes,
	}, nil
}

// Enabled reports whether the enabled flag resolved to true.
func (f *Formatter) Enabled() bool { return f != nil && f.enabled }

// Router returns the compiled route table.
func (f *Formatter) Router() *router.Router { return f.router }

// Mapper returns the code to status mapper.
func (f *Formatter) Mapper() apis.Mapper { return f.mapper }

// Normalize runs e through the delegation pipeline for call: prefix
// extraction, the rules routed to call in order, then Sanitize. e is not
// modified. A nil e yields nil.
func (f *Formatter) Normalize(ctx context.Context, call apis.Call, e *errfmt.Error) *errfmt.Error {
	if e == nil {
		return nil
	}
	cur := prefix.Apply(e)

	rules := f.router.Route(call.SourceName, router.TypeName(call.TypeName), call.FieldName)
	if len(rules) == 0 {
		f.log.Debug("no rules routed",
			"source", call.SourceName, "type", call.TypeName, "field", call.FieldName)
		return cur.Sanitize()
	}

	cur = rule.ApplyFunc(cur, rules, func(i int, r *rule.Rule, out *errfmt.Error) {
		f.metrics.RuleFired(ctx, call, i)
		f.log.Debug("rule fired",
			"source", call.SourceName, "field", call.FieldName,
			"rule", i, "match", r.Pattern(), "code", out.Code)
	})
	return cur.Sanitize()
}

// OnDelegate is the delegation hook. The error variant of res is
// normalized; a success passes through unchanged.
func (f *Formatter) OnDelegate(ctx context.Context, call apis.Call, res apis.Result) apis.Result {
	if !res.IsError() {
		return res
	}
	start := time.Now()
	out := f.Normalize(ctx, call, res.Err)
	f.metrics.Normalized(ctx, call, out.Code, time.Since(start))
	return apis.Failure(out)
}

// OnFetch is the fetch hook. A response with status >= 400 is raised as a
// normalized *errfmt.Error; other responses yield nil. When ctx ends while
// the body is read, ctx.Err() is returned.
func (f *Formatter) OnFetch(ctx context.Context, resp *http.Response) error {
	e, err := httpx.Classify(ctx, resp, httpx.WithMaxBodyBytes(f.maxBody))
	if err != nil {
		return err
	}
	if e == nil {
		return nil
	}
	f.metrics.UpstreamFailure(ctx, resp.StatusCode, e.Code)
	f.log.Warn("upstream request failed",
		"status", resp.StatusCode, "code", e.Code, "url", requestURL(resp))
	return e
}

// Register installs OnFetch and OnDelegate on host. A disabled formatter
// registers nothing and reports false.
func (f *Formatter) Register(host apis.Host) bool {
	if !f.Enabled() || host == nil {
		return false
	}
	host.OnFetch(f.OnFetch)
	host.OnDelegate(f.OnDelegate)
	f.log.Info("error formatter registered", "routes", f.router.Len())
	return true
}

func requestURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.Redacted()
}
