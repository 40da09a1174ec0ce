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

import "dirpx.dev/errfmt"

// FiredFunc is notified about every rule that matched during ApplyFunc, with
// the rule's position in the list and the error it produced.
type FiredFunc func(index int, r *Rule, out *errfmt.Error)

// Apply runs rules over e in order and returns the final error. Each rule
// receives the output of the previous one.
func Apply(e *errfmt.Error, rules []*Rule) *errfmt.Error {
	return ApplyFunc(e, rules, nil)
}

// ApplyFunc is Apply with a callback for matched rules. fired may be nil.
func ApplyFunc(e *errfmt.Error, rules []*Rule, fired FiredFunc) *errfmt.Error {
	cur := e
	for i, r := range rules {
		if r == nil {
			continue
		}
		next, ok := r.Apply(cur)
		if !ok {
			continue
		}
		if fired != nil {
			fired(i, r, next)
		}
		cur = next
	}
	return cur
}
