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

package errors

// Code is a machine-readable error code carried in failure responses.
type Code string

// Command validation errors.
const (
	// CodeMissingParameter indicates a required command parameter is absent.
	CodeMissingParameter Code = "MISSING_PARAMETER"
	// CodeUnknownCommand indicates the command type is not registered.
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"
	// CodeInvalidParams indicates parameters are present but unusable.
	CodeInvalidParams Code = "INVALID_PARAMS"
)

// Graph structure errors.
const (
	// CodeUnknownNodeType indicates the node type tag has no constructor.
	CodeUnknownNodeType Code = "UNKNOWN_NODE_TYPE"
	// CodeNodeNotFound indicates no node with the given id exists in the graph.
	CodeNodeNotFound Code = "NODE_NOT_FOUND"
	// CodePinNotFound indicates the named pin does not exist on the node
	// in the expected direction.
	CodePinNotFound Code = "PIN_NOT_FOUND"
	// CodeIncompatiblePins indicates the two pins cannot be linked.
	CodeIncompatiblePins Code = "INCOMPATIBLE_PINS"
	// CodeLinkNotFound indicates no link exists between the named endpoints.
	CodeLinkNotFound Code = "LINK_NOT_FOUND"
	// CodeUnsupportedProperty indicates no property handler accepted the
	// (node kind, property name, value type) combination.
	CodeUnsupportedProperty Code = "UNSUPPORTED_PROPERTY"
)

// Document errors.
const (
	// CodeNotFound indicates a named document-level entity (blueprint,
	// graph, variable, function) was not found.
	CodeNotFound Code = "NOT_FOUND"
	// CodeAlreadyExists indicates the entity name is already taken.
	CodeAlreadyExists Code = "ALREADY_EXISTS"
)

// Transport errors. These are connection-fatal; everything above is
// recovered at the dispatcher boundary.
const (
	// CodeTransportError indicates a send or receive failed partway.
	CodeTransportError Code = "TRANSPORT_ERROR"
)
