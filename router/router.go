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

import (
	"fmt"
	"strings"

	"dirpx.dev/errfmt/rule"
)

// key identifies one call site.
type key struct {
	source string
	typ    TypeName
	field  string
}

// entry is a compiled, frozen Source.
type entry struct {
	source string
	typ    TypeName
	fields []string
	rules  []*rule.Rule
}

// Router is an immutable routing table.
type Router struct {
	entries []entry

	// first maps a call site to the index of the first entry governing it.
	// It gives the same answer as a linear scan over entries.
	first map[key]int
}

// New compiles the configured sources into an immutable Router.
//
// Build process:
//
//  1. apply options to a fresh builder;
//  2. compile every rule pattern (failing on the first invalid one);
//  3. copy field lists and index each (source, type, field) to the first
//     entry that declares it.
func New(opts ...Option) (*Router, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	r := &Router{
		entries: make([]entry, 0, len(b.sources)),
		first:   make(map[key]int),
	}
	for i, s := range b.sources {
		rules, err := rule.CompileAll(s.Rules)
		if err != nil {
			return nil, fmt.Errorf("router: source #%d %q %s: %w", i, s.Name, s.Type, err)
		}
		fields := append([]string(nil), s.Fields...)
		r.entries = append(r.entries, entry{
			source: s.Name,
			typ:    s.Type,
			fields: fields,
			rules:  rules,
		})
		for _, f := range fields {
			k := key{source: s.Name, typ: s.Type, field: f}
			if _, seen := r.first[k]; !seen {
				r.first[k] = i
			}
		}
	}
	return r, nil
}

// Route returns the ordered rules for a call site, or nil when no entry
// governs it. The returned slice must not be modified.
func (r *Router) Route(source string, typ TypeName, field string) []*rule.Rule {
	i, ok := r.Lookup(source, typ, field)
	if !ok {
		return nil
	}
	return r.entries[i].rules
}

// Lookup returns the index of the entry governing a call site.
func (r *Router) Lookup(source string, typ TypeName, field string) (int, bool) {
	if r == nil {
		return 0, false
	}
	i, ok := r.first[key{source: source, typ: typ, field: field}]
	return i, ok
}

// Len returns the number of routing entries.
func (r *Router) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Summary describes one routing entry.
type Summary struct {
	Source string
	Type   TypeName
	Fields []string
	Rules  int
}

// Summaries returns a description of every entry, in declaration order.
func (r *Router) Summaries() []Summary {
	if r == nil {
		return nil
	}
	out := make([]Summary, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, Summary{
			Source: e.source,
			Type:   e.typ,
			Fields: append([]string(nil), e.fields...),
			Rules:  len(e.rules),
		})
	}
	return out
}

// Explain renders how a call site was routed.
//
// Example output:
//
//	site source="users" type="Query" field="getUser"
//	route: entry=#0 rules=2
//	  rule #0 match="user missing"
//	  rule #1 match="^User"
//
// Without a governing entry the second line reads "route: none".
func (r *Router) Explain(source string, typ TypeName, field string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "site source=%q type=%q field=%q\n", source, typ, field)

	i, ok := r.Lookup(source, typ, field)
	if !ok {
		_, _ = fmt.Fprint(&b, "route: none")
		return b.String()
	}
	rules := r.entries[i].rules
	_, _ = fmt.Fprintf(&b, "route: entry=#%d rules=%d", i, len(rules))
	for j, ru := range rules {
		_, _ = fmt.Fprintf(&b, "\n  rule #%d match=%q", j, ru.Pattern())
	}
	return b.String()
}
