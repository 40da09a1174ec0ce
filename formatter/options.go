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
	"os"

	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/config"
	"dirpx.dev/errfmt/logger"
	"dirpx.dev/errfmt/metrics"
)

// Option configures a Formatter.
type Option func(*builder)

type builder struct {
	log     logger.Logger
	metrics *metrics.Metrics
	mapper  apis.Mapper
	lookup  config.LookupFunc
}

func newBuilder() *builder {
	return &builder{lookup: os.LookupEnv}
}

// WithLogger sets the logger. By default one is built from the logging
// section of the configuration.
func WithLogger(l logger.Logger) Option {
	return func(b *builder) { b.log = l }
}

// WithMetrics sets the instruments. Nil records nothing.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *builder) { b.metrics = m }
}

// WithMapper replaces the mapper built from the mapping section.
func WithMapper(m apis.Mapper) Option {
	return func(b *builder) { b.mapper = m }
}

// WithLookup sets the environment lookup used to resolve the enabled flag.
// It defaults to os.LookupEnv.
func WithLookup(fn config.LookupFunc) Option {
	return func(b *builder) {
		if fn != nil {
			b.lookup = fn
		}
	}
}
