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
	"fmt"

	bferrors "github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model"
	"github.com/blueforge/blueforge/model/pin"
)

func init() {
	model.RegisterKindType("VariableGet", &model.KindType{New: func() model.Kind { return &VariableGet{} }})
	model.RegisterKindType("VariableSet", &model.KindType{New: func() model.Kind { return &VariableSet{} }})
	model.RegisterKindType("MakeArray", &model.KindType{New: func() model.Kind { return &MakeArray{} }})
	model.RegisterKindType("Select", &model.KindType{New: func() model.Kind { return &Select{} }})
	model.RegisterKindType("Knot", &model.KindType{New: func() model.Kind { return &Knot{} }})
	model.RegisterKindType("Self", &model.KindType{New: func() model.Kind { return &Self{} }})
}

// VariableGet reads a document variable. The reference is by name; the
// pin type is resolved from the variable at construction or retarget time.
type VariableGet struct {
	Variable string   `json:"variable"`
	Type     pin.Type `json:"type"`
}

// TypeKey returns the "type" of node.
func (v *VariableGet) TypeKey() string { return "VariableGet" }

// Clone returns a copy of this kind.
func (v *VariableGet) Clone() model.Kind { v0 := *v; return &v0 }

// VariableName returns the referenced variable's name.
func (v *VariableGet) VariableName() string { return v.Variable }

// Init resolves the named variable; an unknown name fails construction.
func (v *VariableGet) Init(doc *model.Document, params model.Params) error {
	name, ok := params.String("variable_name")
	if !ok {
		return bferrors.InvalidParams("VariableGet requires a variable_name")
	}
	return v.Retarget(doc, name)
}

// Retarget re-resolves the reference against the document, updating the
// pin type to the (possibly different) variable's type.
func (v *VariableGet) Retarget(doc *model.Document, name string) error {
	vr, err := doc.Variable(name)
	if err != nil {
		return err
	}
	v.Variable = vr.Name
	v.Type = vr.Type
	return nil
}

// Pins is a single typed output.
func (v *VariableGet) Pins() []*pin.Definition {
	return []*pin.Definition{{Name: "value", Direction: pin.Output, Type: v.Type}}
}

// VariableSet writes a document variable and passes the value through.
type VariableSet struct {
	Variable string   `json:"variable"`
	Type     pin.Type `json:"type"`
}

// TypeKey returns the "type" of node.
func (v *VariableSet) TypeKey() string { return "VariableSet" }

// Clone returns a copy of this kind.
func (v *VariableSet) Clone() model.Kind { v0 := *v; return &v0 }

// VariableName returns the referenced variable's name.
func (v *VariableSet) VariableName() string { return v.Variable }

// Init resolves the named variable; an unknown name fails construction.
func (v *VariableSet) Init(doc *model.Document, params model.Params) error {
	name, ok := params.String("variable_name")
	if !ok {
		return bferrors.InvalidParams("VariableSet requires a variable_name")
	}
	return v.Retarget(doc, name)
}

// Retarget re-resolves the reference against the document.
func (v *VariableSet) Retarget(doc *model.Document, name string) error {
	vr, err := doc.Variable(name)
	if err != nil {
		return err
	}
	v.Variable = vr.Name
	v.Type = vr.Type
	return nil
}

// Pins is exec in/out, the typed value input, and a pass-through output.
func (v *VariableSet) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "value", Direction: pin.Input, Type: v.Type},
		{Name: "then", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "output", Direction: pin.Output, Type: v.Type},
	}
}

// MakeArray collects elements into an array. The element count can grow
// and shrink but never drops below one.
type MakeArray struct {
	Elements    int      `json:"elements"`
	ElementType pin.Type `json:"element_type"`
}

// TypeKey returns the "type" of node.
func (m *MakeArray) TypeKey() string { return "MakeArray" }

// Clone returns a copy of this kind.
func (m *MakeArray) Clone() model.Kind { m0 := *m; return &m0 }

// Init reads an optional element count (default 1) and element type
// (default wildcard).
func (m *MakeArray) Init(doc *model.Document, params model.Params) error {
	m.Elements = params.IntOr("elements", 1)
	if m.Elements < m.MinPins() {
		return bferrors.InvalidParams("a make-array needs at least %d element", m.MinPins())
	}
	if t, ok := params.String("element_type"); ok {
		m.ElementType = pin.ParseType(t)
	} else {
		m.ElementType = pin.TypeWild
	}
	return nil
}

// Pins is the numbered element inputs and the array output.
func (m *MakeArray) Pins() []*pin.Definition {
	defs := make([]*pin.Definition, 0, m.Elements+1)
	for i := 0; i < m.Elements; i++ {
		defs = append(defs, &pin.Definition{Name: fmt.Sprintf("item_%d", i), Direction: pin.Input, Type: m.ElementType})
	}
	defs = append(defs, &pin.Definition{Name: "array", Direction: pin.Output, Type: m.ElementType})
	return defs
}

// AddPin appends an element input.
func (m *MakeArray) AddPin() string {
	m.Elements++
	return fmt.Sprintf("item_%d", m.Elements-1)
}

// RemovePin drops the last element input, never going below the minimum.
func (m *MakeArray) RemovePin() (string, error) {
	if m.Elements <= m.MinPins() {
		return "", bferrors.InvalidParams("a make-array retains at least %d element", m.MinPins())
	}
	m.Elements--
	return fmt.Sprintf("item_%d", m.Elements), nil
}

// MinPins is the structural minimum element count.
func (m *MakeArray) MinPins() int { return 1 }

// Select picks one of its option inputs by index.
type Select struct {
	Options int `json:"options"`
}

// TypeKey returns the "type" of node.
func (s *Select) TypeKey() string { return "Select" }

// Clone returns a copy of this kind.
func (s *Select) Clone() model.Kind { s0 := *s; return &s0 }

// Init reads an optional option count (default 2).
func (s *Select) Init(doc *model.Document, params model.Params) error {
	s.Options = params.IntOr("options", 2)
	if s.Options < s.MinPins() {
		return bferrors.InvalidParams("a select needs at least %d options", s.MinPins())
	}
	return nil
}

// Pins is the numbered options, the index, and the picked value.
func (s *Select) Pins() []*pin.Definition {
	defs := make([]*pin.Definition, 0, s.Options+2)
	for i := 0; i < s.Options; i++ {
		defs = append(defs, &pin.Definition{Name: fmt.Sprintf("option_%d", i), Direction: pin.Input, Type: pin.TypeWild})
	}
	defs = append(defs,
		&pin.Definition{Name: "index", Direction: pin.Input, Type: pin.TypeInt},
		&pin.Definition{Name: "return_value", Direction: pin.Output, Type: pin.TypeWild},
	)
	return defs
}

// AddPin appends an option input.
func (s *Select) AddPin() string {
	s.Options++
	return fmt.Sprintf("option_%d", s.Options-1)
}

// RemovePin drops the last option input, never going below the minimum.
func (s *Select) RemovePin() (string, error) {
	if s.Options <= s.MinPins() {
		return "", bferrors.InvalidParams("a select retains at least %d options", s.MinPins())
	}
	s.Options--
	return fmt.Sprintf("option_%d", s.Options), nil
}

// MinPins is the structural minimum option count.
func (s *Select) MinPins() int { return 2 }

// Knot is a wildcard reroute point with no behaviour of its own.
type Knot struct{}

// TypeKey returns the "type" of node.
func (k *Knot) TypeKey() string { return "Knot" }

// Clone returns a copy of this kind.
func (k *Knot) Clone() model.Kind { return &Knot{} }

// Init takes no parameters.
func (k *Knot) Init(doc *model.Document, params model.Params) error { return nil }

// Pins is a wildcard pass-through.
func (k *Knot) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "input", Direction: pin.Input, Type: pin.TypeWild},
		{Name: "output", Direction: pin.Output, Type: pin.TypeWild},
	}
}

// Self yields a reference to the owning object.
type Self struct{}

// TypeKey returns the "type" of node.
func (s *Self) TypeKey() string { return "Self" }

// Clone returns a copy of this kind.
func (s *Self) Clone() model.Kind { return &Self{} }

// Init takes no parameters.
func (s *Self) Init(doc *model.Document, params model.Params) error { return nil }

// Pins is a single object output.
func (s *Self) Pins() []*pin.Definition {
	return []*pin.Definition{{Name: "self", Direction: pin.Output, Type: pin.ObjectType("")}}
}
