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

// Package api defines the wire documents exchanged with clients: the
// command envelope, the per-command request structs, and response
// construction.
package api

import (
	"encoding/json"

	"github.com/blueforge/blueforge/errors"
)

// Command is the request envelope. Params stays raw until the command
// type selects a request struct to decode it into.
type Command struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params"`
}

// ParseCommand decodes a raw request into an envelope. A request that is
// not a JSON object, or has no type, is rejected before dispatch.
func ParseCommand(raw []byte) (*Command, error) {
	var c Command
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, errors.InvalidParams("malformed request: %v", err)
	}
	if c.Type == "" {
		return nil, errors.MissingParameter("type")
	}
	return &c, nil
}

// Response is the wire response document.
type Response map[string]any

// OK builds a success response carrying the given result fields.
func OK(fields map[string]any) Response {
	r := Response{"success": true}
	for k, v := range fields {
		r[k] = v
	}
	return r
}

// Fail builds a failure response from an error. Coded errors carry their
// code and details onto the wire; anything else reports INVALID_PARAMS.
func Fail(err error) Response {
	r := Response{
		"success":    false,
		"error":      err.Error(),
		"error_code": string(errors.CodeOf(err)),
	}
	if e, ok := err.(*errors.Error); ok {
		r["error"] = e.Message
		if len(e.Details) > 0 {
			r["details"] = e.Details
		}
	}
	return r
}
