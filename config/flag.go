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

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// envRe matches "{env.NAME}" placeholders.
var envRe = regexp.MustCompile(`\{\s*env\.([A-Za-z_][A-Za-z0-9_]*)\s*\}`)

// LookupFunc resolves an environment variable.
type LookupFunc func(name string) (string, bool)

// Flag is a boolean switch that may be given as a YAML bool or as a string.
// Strings are interpolated against the environment and the flag is on only
// when the result is exactly "true".
//
//	enabled: true
//	enabled: "{env.ERRORS_FORMATTER_ENABLED}"
type Flag struct {
	raw string
}

// Bool returns a flag with a fixed value.
func Bool(b bool) Flag {
	return Flag{raw: strconv.FormatBool(b)}
}

// String returns a flag evaluated from s.
func String(s string) Flag {
	return Flag{raw: s}
}

// Raw returns the flag as written.
func (f Flag) Raw() string {
	return f.raw
}

// Resolve interpolates the flag with lookup and reports whether it is on.
// A nil lookup reads the process environment.
func (f Flag) Resolve(lookup LookupFunc) bool {
	return Interpolate(f.raw, lookup) == "true"
}

// Enabled resolves the flag against the process environment.
func (f Flag) Enabled() bool {
	return f.Resolve(os.LookupEnv)
}

// UnmarshalYAML accepts a bool or a string scalar. An explicit null turns
// the flag off.
func (f *Flag) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: flag must be a bool or a string, got %s", kindName(n.Kind))
	}
	switch n.Tag {
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		*f = Bool(b)
	case "!!str":
		*f = String(n.Value)
	case "!!null":
		*f = Bool(false)
	default:
		return fmt.Errorf("config: flag must be a bool or a string, got %s", n.Tag)
	}
	return nil
}

// MarshalYAML writes fixed values as bools and everything else as a string.
func (f Flag) MarshalYAML() (any, error) {
	if f.raw == "true" || f.raw == "false" {
		return f.raw == "true", nil
	}
	return f.raw, nil
}

// Interpolate replaces "{env.NAME}" placeholders using lookup. Unset
// variables become empty strings. A nil lookup reads the process
// environment.
func Interpolate(s string, lookup LookupFunc) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return envRe.ReplaceAllStringFunc(s, func(m string) string {
		name := envRe.FindStringSubmatch(m)[1]
		v, _ := lookup(name)
		return v
	})
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
