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

// Package errors provides the coded error type surfaced in failure
// responses. Every error except a transport error is recovered at the
// dispatcher boundary and reported to the caller; the connection stays up.
package errors

import "fmt"

// Error is a coded, reportable error.
type Error struct {
	// Code is the machine-readable code.
	Code Code `json:"code"`
	// Message is a human-readable description naming the offending entity.
	Message string `json:"message"`
	// Details carries optional structured context.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// WithDetail attaches a single detail and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates an Error with an arbitrary code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the code from an error, or CodeInvalidParams if the error
// is not an *Error. A nil error has no code and returns "".
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return CodeInvalidParams
}

// MissingParameter reports the first absent required field.
func MissingParameter(field string) *Error {
	return New(CodeMissingParameter, "missing %q parameter", field).WithDetail("parameter", field)
}

// UnknownCommand reports an unrecognized command type.
func UnknownCommand(commandType string) *Error {
	return New(CodeUnknownCommand, "unknown command: %s", commandType).WithDetail("command_type", commandType)
}

// InvalidParams reports parameters that are present but unusable.
func InvalidParams(format string, args ...any) *Error {
	return New(CodeInvalidParams, format, args...)
}

// UnknownNodeType reports a node type tag with no registered constructor.
func UnknownNodeType(typeTag string) *Error {
	return New(CodeUnknownNodeType, "unknown node type: %s", typeTag).WithDetail("node_type", typeTag)
}

// NodeNotFound reports a node id with no node in the graph.
func NodeNotFound(id string) *Error {
	return New(CodeNodeNotFound, "node not found: %s", id).WithDetail("node_id", id)
}

// PinNotFound reports a missing pin, naming both the node and the pin.
func PinNotFound(nodeID, pin string) *Error {
	return New(CodePinNotFound, "no pin %q on node %s", pin, nodeID).
		WithDetail("node_id", nodeID).
		WithDetail("pin", pin)
}

// IncompatiblePins reports a link attempt between type-incompatible pins.
func IncompatiblePins(sourceType, targetType string) *Error {
	return New(CodeIncompatiblePins, "pins not compatible: %s vs %s", sourceType, targetType)
}

// LinkNotFound reports a disconnect with no matching link.
func LinkNotFound(sourceNode, sourcePin, targetNode, targetPin string) *Error {
	return New(CodeLinkNotFound, "no link from %s.%s to %s.%s", sourceNode, sourcePin, targetNode, targetPin)
}

// UnsupportedProperty reports a property no handler recognized.
func UnsupportedProperty(property string) *Error {
	return New(CodeUnsupportedProperty, "property not supported or invalid value: %s", property).
		WithDetail("property", property)
}

// NotFound reports a missing named document-level entity.
func NotFound(entity, name string) *Error {
	return New(CodeNotFound, "%s not found: %s", entity, name).WithDetail(entity, name)
}

// AlreadyExists reports a name collision on a document-level entity.
func AlreadyExists(entity, name string) *Error {
	return New(CodeAlreadyExists, "%s %q already exists", entity, name).WithDetail(entity, name)
}

// Transport wraps a connection-fatal send/receive failure.
func Transport(cause error) *Error {
	return &Error{Code: CodeTransportError, Message: "transport failure", Cause: cause}
}
