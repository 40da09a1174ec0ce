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

// Package metrics instruments the normalization pipeline with OpenTelemetry
// counters. A nil *Metrics is valid and records nothing.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/code"
)

// ScopeName is the instrumentation scope callers should request a meter for.
const ScopeName = "dirpx.dev/errfmt"

const labelNone = "none"

// Metrics holds the pipeline instruments.
type Metrics struct {
	upstreamFailures metric.Int64Counter
	normalized       metric.Int64Counter
	rulesFired       metric.Int64Counter
	duration         metric.Float64Histogram
}

// New registers the instruments on meter. A nil meter yields a Metrics that
// records nothing.
func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	if meter == nil {
		return m, nil
	}
	counterDefs := []struct {
		target      *metric.Int64Counter
		name        string
		description string
	}{
		{&m.upstreamFailures, "errfmt.upstream.failures", "Upstream HTTP responses raised as errors"},
		{&m.normalized, "errfmt.normalized", "Delegated errors passed through the normalization pipeline"},
		{&m.rulesFired, "errfmt.rules.fired", "Rules whose pattern matched"},
	}
	for _, def := range counterDefs {
		c, err := meter.Int64Counter(def.name, metric.WithDescription(def.description), metric.WithUnit("1"))
		if err != nil {
			return nil, fmt.Errorf("metrics: create %s counter: %w", def.name, err)
		}
		*def.target = c
	}
	h, err := meter.Float64Histogram(
		"errfmt.normalize.duration",
		metric.WithDescription("Time spent normalizing one delegated error"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(.00001, .00005, .0001, .0005, .001, .005, .01),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: create duration histogram: %w", err)
	}
	m.duration = h
	return m, nil
}

// UpstreamFailure counts an upstream response raised as an error.
func (m *Metrics) UpstreamFailure(ctx context.Context, status int, c code.Code) {
	if m == nil || m.upstreamFailures == nil {
		return
	}
	m.upstreamFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", strconv.Itoa(status)),
		attribute.String("code", codeLabel(c)),
	))
}

// Normalized counts a delegated error that left the pipeline and records
// how long it took.
func (m *Metrics) Normalized(ctx context.Context, call apis.Call, c code.Code, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("source", call.SourceName),
		attribute.String("type", call.TypeName),
		attribute.String("field", call.FieldName),
		attribute.String("code", codeLabel(c)),
	)
	if m.normalized != nil {
		m.normalized.Add(ctx, 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx, d.Seconds(), attrs)
	}
}

// RuleFired counts a matching rule, identified by its position in the
// route.
func (m *Metrics) RuleFired(ctx context.Context, call apis.Call, index int) {
	if m == nil || m.rulesFired == nil {
		return
	}
	m.rulesFired.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", call.SourceName),
		attribute.String("field", call.FieldName),
		attribute.Int("rule", index),
	))
}

func codeLabel(c code.Code) string {
	if c.IsEmpty() {
		return labelNone
	}
	return string(c)
}
