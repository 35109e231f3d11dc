// Copyright 2025 The Blueforge Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

// Params is the free-form parameter bag passed to node constructors.
// Values follow encoding/json conventions (numbers are float64).
type Params map[string]any

// String returns the named string parameter.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// StringOr returns the named string parameter, or def if absent.
func (p Params) StringOr(key, def string) string {
	if s, ok := p.String(key); ok {
		return s
	}
	return def
}

// Float returns the named numeric parameter.
func (p Params) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// FloatOr returns the named numeric parameter, or def if absent.
func (p Params) FloatOr(key string, def float64) float64 {
	if f, ok := p.Float(key); ok {
		return f
	}
	return def
}

// IntOr returns the named numeric parameter truncated to int, or def.
func (p Params) IntOr(key string, def int) int {
	if f, ok := p.Float(key); ok {
		return int(f)
	}
	return def
}

// Strings returns the named parameter as a slice of strings, dropping
// non-string elements.
func (p Params) Strings(key string) []string {
	vs, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// BoolOr returns the named boolean parameter, or def if absent.
func (p Params) BoolOr(key string, def bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return def
}
