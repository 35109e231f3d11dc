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
	model.RegisterKindType("SpawnActor", &model.KindType{New: func() model.Kind { return &SpawnActor{} }})
	model.RegisterKindType("ConstructObject", &model.KindType{New: func() model.Kind { return &ConstructObject{} }})
	model.RegisterKindType("AddComponent", &model.KindType{New: func() model.Kind { return &AddComponent{} }})
	model.RegisterKindType("GetDataTableRow", &model.KindType{New: func() model.Kind { return &GetDataTableRow{} }})
	model.RegisterKindType("Timeline", &model.KindType{New: func() model.Kind { return &Timeline{} }})
}

// SpawnActor spawns an actor of a given class at a transform.
type SpawnActor struct {
	Class string `json:"class"`
}

// TypeKey returns the "type" of node.
func (s *SpawnActor) TypeKey() string { return "SpawnActor" }

// Clone returns a copy of this kind.
func (s *SpawnActor) Clone() model.Kind { s0 := *s; return &s0 }

// Init requires an actor_class.
func (s *SpawnActor) Init(doc *model.Document, params model.Params) error {
	class, ok := params.String("actor_class")
	if !ok {
		return bferrors.InvalidParams("SpawnActor requires an actor_class")
	}
	s.Class = class
	return nil
}

// Pins takes a spawn transform and yields the spawned actor.
func (s *SpawnActor) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "spawn_transform", Direction: pin.Input, Type: pin.StructType("Transform")},
		{Name: "then", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "return_value", Direction: pin.Output, Type: pin.ObjectType(s.Class)},
	}
}

// ConstructObject constructs an object of a given class with an outer.
type ConstructObject struct {
	Class string `json:"class"`
}

// TypeKey returns the "type" of node.
func (c *ConstructObject) TypeKey() string { return "ConstructObject" }

// Clone returns a copy of this kind.
func (c *ConstructObject) Clone() model.Kind { c0 := *c; return &c0 }

// Init requires an object_class.
func (c *ConstructObject) Init(doc *model.Document, params model.Params) error {
	class, ok := params.String("object_class")
	if !ok {
		return bferrors.InvalidParams("ConstructObject requires an object_class")
	}
	c.Class = class
	return nil
}

// Pins takes the outer object and yields the constructed object.
func (c *ConstructObject) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "outer", Direction: pin.Input, Type: pin.ObjectType("")},
		{Name: "then", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "return_value", Direction: pin.Output, Type: pin.ObjectType(c.Class)},
	}
}

// AddComponent attaches a component of a given class to an actor.
type AddComponent struct {
	Class string `json:"class"`
}

// TypeKey returns the "type" of node.
func (a *AddComponent) TypeKey() string { return "AddComponent" }

// Clone returns a copy of this kind.
func (a *AddComponent) Clone() model.Kind { a0 := *a; return &a0 }

// Init requires a component_class.
func (a *AddComponent) Init(doc *model.Document, params model.Params) error {
	class, ok := params.String("component_class")
	if !ok {
		return bferrors.InvalidParams("AddComponent requires a component_class")
	}
	a.Class = class
	return nil
}

// Pins takes the target actor and yields the new component.
func (a *AddComponent) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "target", Direction: pin.Input, Type: pin.ObjectType("Actor")},
		{Name: "then", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "return_value", Direction: pin.Output, Type: pin.ObjectType(a.Class)},
	}
}

// GetDataTableRow looks a row up in a named data table, branching on
// whether the row exists.
type GetDataTableRow struct {
	Table   string `json:"table"`
	RowType string `json:"row_type"`
}

// TypeKey returns the "type" of node.
func (g *GetDataTableRow) TypeKey() string { return "GetDataTableRow" }

// Clone returns a copy of this kind.
func (g *GetDataTableRow) Clone() model.Kind { g0 := *g; return &g0 }

// Init requires a data_table; row_type is optional.
func (g *GetDataTableRow) Init(doc *model.Document, params model.Params) error {
	table, ok := params.String("data_table")
	if !ok {
		return bferrors.InvalidParams("GetDataTableRow requires a data_table")
	}
	g.Table = table
	g.RowType = params.StringOr("row_type", "")
	return nil
}

// Pins branches on row presence and yields the row struct.
func (g *GetDataTableRow) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "row_name", Direction: pin.Input, Type: pin.TypeString},
		{Name: "row_found", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "row_not_found", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "out_row", Direction: pin.Output, Type: pin.StructType(g.RowType)},
	}
}

// Timeline drives a value over time with play/stop control.
type Timeline struct {
	Name string `json:"name"`
}

// TypeKey returns the "type" of node.
func (t *Timeline) TypeKey() string { return "Timeline" }

// Clone returns a copy of this kind.
func (t *Timeline) Clone() model.Kind { t0 := *t; return &t0 }

// Init reads an optional timeline name.
func (t *Timeline) Init(doc *model.Document, params model.Params) error {
	t.Name = params.StringOr("timeline_name", "Timeline")
	return nil
}

// Pins is the standard timeline control surface.
func (t *Timeline) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "play", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "play_from_start", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "stop", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "update", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "finished", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "output", Direction: pin.Output, Type: pin.TypeReal},
	}
}
