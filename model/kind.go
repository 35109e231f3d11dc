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

import (
	"strings"

	"github.com/blueforge/blueforge/model/pin"
)

// Kind abstracts the behaviour of a node. A Kind instance holds the
// type-specific configuration of one node and derives its pin set.
type Kind interface {
	// TypeKey returns the "type" of node.
	TypeKey() string

	// Clone returns a copy of this kind.
	Clone() Kind

	// Init validates params and configures the kind. Init must not touch
	// the document or graph: a failing Init leaves no trace.
	Init(doc *Document, params Params) error

	// Pins returns the pins this kind exposes, in display order.
	Pins() []*pin.Definition
}

// PinCounter is implemented by kinds whose pin count can change after
// creation (sequences, make-array, switches).
type PinCounter interface {
	Kind

	// AddPin grows the pin set by one and returns the new pin's name.
	AddPin() string

	// RemovePin shrinks the pin set by one and returns the removed pin's
	// name. It fails when the count is at the kind's structural minimum.
	RemovePin() (string, error)

	// MinPins is the structural minimum pin count.
	MinPins() int
}

// KindType is the factory entry for a node type.
type KindType struct {
	New func() Kind
}

// KindTypes translates node type tags into factories. Keys are stored
// lowercase; use LookupKindType for case-insensitive resolution.
var KindTypes = make(map[string]*KindType)

// RegisterKindType adds a kind to the KindTypes map.
// This should be used by kinds during init.
func RegisterKindType(name string, kt *KindType) {
	KindTypes[strings.ToLower(name)] = kt
}

// LookupKindType resolves a type tag case-insensitively.
func LookupKindType(name string) *KindType {
	return KindTypes[strings.ToLower(name)]
}
