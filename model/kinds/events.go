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

package kinds

import (
	bferrors "github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model"
	"github.com/blueforge/blueforge/model/pin"
)

func init() {
	model.RegisterKindType("Event", &model.KindType{New: func() model.Kind { return &Event{} }})
	model.RegisterKindType("CustomEvent", &model.KindType{New: func() model.Kind { return &CustomEvent{} }})
}

// Event is an entry point bound to a named engine trigger. BeginPlay and
// Tick carry fixed payload pins; any other name is treated as a custom
// trigger with a bare exec output.
type Event struct {
	EventType string `json:"event_type"`
}

// TypeKey returns the "type" of node.
func (e *Event) TypeKey() string { return "Event" }

// Clone returns a copy of this kind.
func (e *Event) Clone() model.Kind { e0 := *e; return &e0 }

// Init configures the trigger. Absent event_type defaults to BeginPlay,
// matching the original editor.
func (e *Event) Init(doc *model.Document, params model.Params) error {
	e.EventType = params.StringOr("event_type", "BeginPlay")
	return nil
}

// Pins derives the output set from the trigger.
func (e *Event) Pins() []*pin.Definition {
	defs := []*pin.Definition{{Name: "then", Direction: pin.Output, Type: pin.TypeExec}}
	switch e.EventType {
	case "Tick":
		defs = append(defs, &pin.Definition{Name: "delta_seconds", Direction: pin.Output, Type: pin.TypeReal})
	case "ActorBeginOverlap", "ActorEndOverlap":
		defs = append(defs, &pin.Definition{Name: "other_actor", Direction: pin.Output, Type: pin.ObjectType("Actor")})
	}
	return defs
}

// CustomEvent is a caller-defined entry point.
type CustomEvent struct {
	Name string `json:"name"`
}

// TypeKey returns the "type" of node.
func (e *CustomEvent) TypeKey() string { return "CustomEvent" }

// Clone returns a copy of this kind.
func (e *CustomEvent) Clone() model.Kind { e0 := *e; return &e0 }

// Init requires an event_name.
func (e *CustomEvent) Init(doc *model.Document, params model.Params) error {
	name, ok := params.String("event_name")
	if !ok {
		return bferrors.InvalidParams("CustomEvent requires an event_name")
	}
	e.Name = name
	return nil
}

// Pins is a bare exec output.
func (e *CustomEvent) Pins() []*pin.Definition {
	return []*pin.Definition{{Name: "then", Direction: pin.Output, Type: pin.TypeExec}}
}
