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

package router

import "dirpx.dev/errfmt/rule"

// TypeName is the parent type of a delegated root field.
type TypeName string

// Root operation types.
const (
	Query    TypeName = "Query"
	Mutation TypeName = "Mutation"
)

// Source is the declarative routing entry for one upstream source.
type Source struct {
	// Name is the upstream source name.
	Name string

	// Type is the parent type of the governed fields.
	Type TypeName

	// Fields lists the governed root fields. Duplicates are harmless.
	Fields []string

	// Rules are applied in order to errors raised at these call sites.
	Rules []rule.Spec
}

// Option configures a Router at build time.
type Option func(*builder)

// WithSource appends one routing entry. Entries keep the order in which
// they were added; the first matching entry wins.
func WithSource(s Source) Option {
	return func(b *builder) { b.sources = append(b.sources, s) }
}

// WithSources appends several routing entries in order.
func WithSources(ss ...Source) Option {
	return func(b *builder) { b.sources = append(b.sources, ss...) }
}
