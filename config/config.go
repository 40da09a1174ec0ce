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

// Package config loads the declarative rule table and the settings around
// it from YAML.
//
// A minimal file:
//
//	enabled: "{env.ERRORS_FORMATTER_ENABLED}"
//	sources:
//	  - sourceName: users
//	    typeName: Query
//	    fields: [getUser]
//	    formatters:
//	      - match: "^user missing$"
//	        message: "User could not be located"
//	        code: USER_NOT_FOUND
package config

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/logger"
	"dirpx.dev/errfmt/mapper"
	"dirpx.dev/errfmt/router"
	"dirpx.dev/errfmt/rule"
)

var (
	// ErrInvalidSource is returned by Validate for malformed source entries.
	ErrInvalidSource = errors.New("config: invalid source")

	// ErrInvalidMapping is returned for unknown gRPC code names or bad
	// HTTP statuses in the mapping section.
	ErrInvalidMapping = errors.New("config: invalid mapping")
)

// FormatterConfig is one rule as written in the configuration.
type FormatterConfig = rule.Spec

// Config is the complete configuration.
type Config struct {
	Enabled Flag           `yaml:"enabled"`
	Sources []SourceConfig `yaml:"sources"`
	HTTP    HTTPConfig     `yaml:"http"`
	Logging LoggingConfig  `yaml:"logging"`
	Mapping MappingConfig  `yaml:"mapping"`
}

// SourceConfig routes errors raised by some fields of one upstream source
// to an ordered rule list.
type SourceConfig struct {
	SourceName string            `yaml:"sourceName"`
	TypeName   string            `yaml:"typeName"`
	Fields     []string          `yaml:"fields"`
	Formatters []FormatterConfig `yaml:"formatters"`
}

// HTTPConfig tunes upstream response classification.
type HTTPConfig struct {
	// MaxBodyBytes bounds how much of a failed response body is inspected.
	// Zero means no limit.
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`
}

// LoggingConfig selects the log level and format.
type LoggingConfig struct {
	Level logger.LogLevel `yaml:"level"`
	JSON  bool            `yaml:"json"`
}

// MappingConfig adjusts how codes map to transport statuses.
//
//	mapping:
//	  overrides:
//	    USER_NOT_FOUND: {http: 404, grpc: NOT_FOUND}
//	  prefixes:
//	    BILLING: {http: 402}
type MappingConfig struct {
	Overrides map[string]StatusConfig `yaml:"overrides"`
	Prefixes  map[string]StatusConfig `yaml:"prefixes"`
}

// StatusConfig is a status pair. Zero or empty members are not applied.
type StatusConfig struct {
	HTTP int    `yaml:"http"`
	GRPC string `yaml:"grpc"`
}

// DefaultConfig returns the configuration used when a file leaves a
// setting out. The formatter is off and has no sources: a missing
// enabled key behaves like an explicit null.
func DefaultConfig() *Config {
	return &Config{
		Enabled: Bool(false),
		Logging: LoggingConfig{Level: logger.InfoLevel},
	}
}

// Validate checks the structure of the source list and the mapping
// section. Rule patterns are compiled later, by the router.
func (c *Config) Validate() error {
	for i, s := range c.Sources {
		if s.SourceName == "" {
			return fmt.Errorf("%w: source #%d: sourceName is required", ErrInvalidSource, i)
		}
		switch router.TypeName(s.TypeName) {
		case router.Query, router.Mutation:
		default:
			return fmt.Errorf("%w: source #%d %q: typeName must be Query or Mutation, got %q",
				ErrInvalidSource, i, s.SourceName, s.TypeName)
		}
	}
	if c.HTTP.MaxBodyBytes < 0 {
		return fmt.Errorf("config: http.maxBodyBytes must not be negative")
	}
	_, err := c.MapperOptions()
	return err
}

// RouterOptions converts the source list into router options.
func (c *Config) RouterOptions() []router.Option {
	sources := make([]router.Source, 0, len(c.Sources))
	for _, s := range c.Sources {
		sources = append(sources, router.Source{
			Name:   s.SourceName,
			Type:   router.TypeName(s.TypeName),
			Fields: s.Fields,
			Rules:  s.Formatters,
		})
	}
	return []router.Option{router.WithSources(sources...)}
}

// MapperOptions converts the mapping section into mapper options.
func (c *Config) MapperOptions() ([]mapper.Option, error) {
	var opts []mapper.Option
	for k, st := range c.Mapping.Overrides {
		cd := code.Code(strings.TrimSpace(k))
		if err := code.Validate(cd); err != nil {
			return nil, fmt.Errorf("%w: override %q: %v", ErrInvalidMapping, k, err)
		}
		httpOpt, grpcOpt, err := st.options(
			func(v int) mapper.Option { return mapper.WithHTTPOverride(cd, v) },
			func(v codes.Code) mapper.Option { return mapper.WithGRPCOverride(cd, int(v)) },
		)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", k, err)
		}
		opts = append(opts, httpOpt...)
		opts = append(opts, grpcOpt...)
	}
	for k, st := range c.Mapping.Prefixes {
		p := k
		httpOpt, grpcOpt, err := st.options(
			func(v int) mapper.Option { return mapper.WithHTTPPrefix(p, v) },
			func(v codes.Code) mapper.Option { return mapper.WithGRPCPrefix(p, int(v)) },
		)
		if err != nil {
			return nil, fmt.Errorf("prefix %q: %w", k, err)
		}
		opts = append(opts, httpOpt...)
		opts = append(opts, grpcOpt...)
	}
	return opts, nil
}

// LoggerConfig converts the logging section.
func (c *Config) LoggerConfig() *logger.Config {
	cfg := logger.DefaultConfig()
	if c.Logging.Level != "" {
		cfg.Level = c.Logging.Level
	}
	cfg.JSON = c.Logging.JSON
	return cfg
}

func (s StatusConfig) options(
	httpOpt func(int) mapper.Option,
	grpcOpt func(codes.Code) mapper.Option,
) ([]mapper.Option, []mapper.Option, error) {
	var h, g []mapper.Option
	if s.HTTP != 0 {
		if s.HTTP < 100 || s.HTTP > 599 {
			return nil, nil, fmt.Errorf("%w: http status %d out of range", ErrInvalidMapping, s.HTTP)
		}
		h = append(h, httpOpt(s.HTTP))
	}
	if s.GRPC != "" {
		gc, err := ParseGRPCCode(s.GRPC)
		if err != nil {
			return nil, nil, err
		}
		g = append(g, grpcOpt(gc))
	}
	return h, g, nil
}

// ParseGRPCCode accepts a gRPC code name in any casing ("NOT_FOUND",
// "NotFound", "not found").
func ParseGRPCCode(name string) (codes.Code, error) {
	want := code.Normalize(name)
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		if code.Normalize(c.String()) == want {
			return c, nil
		}
	}
	return codes.Unknown, fmt.Errorf("%w: unknown gRPC code %q", ErrInvalidMapping, name)
}
