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
	model.RegisterKindType("Cast", &model.KindType{New: func() model.Kind { return &Cast{} }})
	model.RegisterKindType("ClassCast", &model.KindType{New: func() model.Kind { return &ClassCast{} }})
	model.RegisterKindType("ByteToEnum", &model.KindType{New: func() model.Kind { return &ByteToEnum{} }})
}

// Cast attempts a dynamic cast of an object to a target class, branching
// on success.
type Cast struct {
	TargetClass string `json:"target_class"`
}

// TypeKey returns the "type" of node.
func (c *Cast) TypeKey() string { return "Cast" }

// Clone returns a copy of this kind.
func (c *Cast) Clone() model.Kind { c0 := *c; return &c0 }

// Init requires a target_class.
func (c *Cast) Init(doc *model.Document, params model.Params) error {
	class, ok := params.String("target_class")
	if !ok {
		return bferrors.InvalidParams("Cast requires a target_class")
	}
	c.TargetClass = class
	return nil
}

// Pins branches control flow and yields the cast object.
func (c *Cast) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "object", Direction: pin.Input, Type: pin.ObjectType("")},
		{Name: "cast_succeeded", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "cast_failed", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "as_" + c.TargetClass, Direction: pin.Output, Type: pin.ObjectType(c.TargetClass)},
	}
}

// ClassCast is the class-reference flavour of Cast.
type ClassCast struct {
	TargetClass string `json:"target_class"`
}

// TypeKey returns the "type" of node.
func (c *ClassCast) TypeKey() string { return "ClassCast" }

// Clone returns a copy of this kind.
func (c *ClassCast) Clone() model.Kind { c0 := *c; return &c0 }

// Init requires a target_class.
func (c *ClassCast) Init(doc *model.Document, params model.Params) error {
	class, ok := params.String("target_class")
	if !ok {
		return bferrors.InvalidParams("ClassCast requires a target_class")
	}
	c.TargetClass = class
	return nil
}

// Pins branches control flow and yields the cast class reference.
func (c *ClassCast) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "class", Direction: pin.Input, Type: pin.ObjectType("Class")},
		{Name: "cast_succeeded", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "cast_failed", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "as_" + c.TargetClass, Direction: pin.Output, Type: pin.ObjectType(c.TargetClass)},
	}
}

// ByteToEnum reinterprets a byte as a value of a named enumeration. The
// enumeration must be registered.
type ByteToEnum struct {
	Enum string `json:"enum"`
}

// TypeKey returns the "type" of node.
func (b *ByteToEnum) TypeKey() string { return "ByteToEnum" }

// Clone returns a copy of this kind.
func (b *ByteToEnum) Clone() model.Kind { b0 := *b; return &b0 }

// Init resolves the named enumeration; an unknown one fails construction.
func (b *ByteToEnum) Init(doc *model.Document, params model.Params) error {
	name, ok := params.String("enum")
	if !ok {
		return bferrors.InvalidParams("ByteToEnum requires an enum")
	}
	if _, err := LookupEnum(name); err != nil {
		return err
	}
	b.Enum = name
	return nil
}

// Pins is a pure byte-to-enum conversion.
func (b *ByteToEnum) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "byte", Direction: pin.Input, Type: pin.TypeInt},
		{Name: "enum", Direction: pin.Output, Type: pin.Type{Category: pin.Int, Sub: b.Enum}},
	}
}
