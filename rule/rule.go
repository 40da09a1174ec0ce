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

package rule

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/mohae/deepcopy"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/placeholder"
	"dirpx.dev/errfmt/value"
)

// ErrInvalidPattern is returned by Compile when a rule's match expression is
// empty or does not compile.
var ErrInvalidPattern = errors.New("errfmt: invalid rule pattern")

// Spec is the declarative form of a rule, as found in configuration.
type Spec struct {
	// Match is the regular expression evaluated against the message.
	Match string `yaml:"match" json:"match"`

	// Message is the rewrite template for the message. Empty keeps the
	// current message.
	Message string `yaml:"message,omitempty" json:"message,omitempty"`

	// Code replaces the current code. Empty keeps it.
	Code code.Code `yaml:"code,omitempty" json:"code,omitempty"`

	// Context is the template the new context is built from. Nil keeps the
	// current context.
	Context map[string]any `yaml:"context,omitempty" json:"context,omitempty"`

	// MessageKey and CodeKey enable the legacy context projection.
	MessageKey string `yaml:"messageKey,omitempty" json:"messageKey,omitempty"`
	CodeKey    string `yaml:"codeKey,omitempty" json:"codeKey,omitempty"`
}

// Rule is a compiled Spec. It is immutable and safe for concurrent use.
type Rule struct {
	spec Spec
	re   *regexp.Regexp
}

// Compile validates s and precompiles its pattern. The context template is
// deep-copied, so later changes to s do not leak into the rule.
func Compile(s Spec) (*Rule, error) {
	if s.Match == "" {
		return nil, fmt.Errorf("%w: empty match expression", ErrInvalidPattern)
	}
	re, err := regexp.Compile(s.Match)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, s.Match, err)
	}
	if s.Context != nil {
		s.Context = deepcopy.Copy(s.Context).(map[string]any)
	}
	return &Rule{spec: s, re: re}, nil
}

// MustCompile is the panic-on-error variant of Compile.
func MustCompile(s Spec) *Rule {
	r, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return r
}

// CompileAll compiles specs in order. The first failure is returned with the
// index of the offending rule.
func CompileAll(specs []Spec) ([]*Rule, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]*Rule, 0, len(specs))
	for i, s := range specs {
		r, err := Compile(s)
		if err != nil {
			return nil, fmt.Errorf("rule #%d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Pattern returns the source of the match expression.
func (r *Rule) Pattern() string { return r.spec.Match }

// Spec returns a copy of the declarative form of r.
func (r *Rule) Spec() Spec {
	s := r.spec
	if s.Context != nil {
		s.Context = deepcopy.Copy(s.Context).(map[string]any)
	}
	return s
}

// Apply evaluates r against e. It returns the rewritten error and true when
// the pattern matched, or e itself and false otherwise. e is never modified.
func (r *Rule) Apply(e *errfmt.Error) (*errfmt.Error, bool) {
	cur := r.project(e)

	m, ok := placeholder.Find(r.re, cur.Message)
	if !ok {
		return e, false
	}

	out := cur
	if r.spec.Message != "" {
		out = out.WithMessage(placeholder.Substitute(r.spec.Message, m))
	}
	if !r.spec.Code.IsEmpty() {
		out = out.WithCode(r.spec.Code)
	}
	if r.spec.Context != nil {
		out = out.WithContext(r.render(m))
	}
	return out, true
}

// project applies the legacy MessageKey/CodeKey projection.
func (r *Rule) project(e *errfmt.Error) *errfmt.Error {
	if r.spec.MessageKey == "" && r.spec.CodeKey == "" {
		return e
	}
	ctx, ok := e.Context.(map[string]any)
	if !ok {
		return e
	}
	out := e
	if r.spec.MessageKey != "" {
		if v, ok := ctx[r.spec.MessageKey]; ok {
			out = out.WithMessage(stringify(v))
		}
	}
	if r.spec.CodeKey != "" {
		if v, ok := ctx[r.spec.CodeKey]; ok {
			out = out.WithCode(code.Code(stringify(v)))
		}
	}
	return out
}

// render builds a fresh context from the rule's template.
func (r *Rule) render(m placeholder.Match) map[string]any {
	out := make(map[string]any, len(r.spec.Context))
	for k, v := range r.spec.Context {
		s, ok := v.(string)
		if !ok {
			out[k] = deepcopy.Copy(v)
			continue
		}
		if cv, ok := value.Coerce(placeholder.Substitute(s, m)); ok {
			out[k] = cv
		}
	}
	return out
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
