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
	model.RegisterKindType("Branch", &model.KindType{New: func() model.Kind { return &Branch{} }})
	model.RegisterKindType("Sequence", &model.KindType{New: func() model.Kind { return &Sequence{} }})
	model.RegisterKindType("Comparison", &model.KindType{New: func() model.Kind { return &Comparison{} }})
	model.RegisterKindType("SwitchInteger", &model.KindType{New: func() model.Kind { return &SwitchInteger{} }})
	model.RegisterKindType("SwitchString", &model.KindType{New: func() model.Kind { return &SwitchString{} }})
	// "Switch" is the plain name for the named-case switch.
	model.RegisterKindType("Switch", &model.KindType{New: func() model.Kind { return &SwitchString{} }})
	model.RegisterKindType("SwitchEnum", &model.KindType{New: func() model.Kind { return &SwitchEnum{} }})
}

// Branch routes control flow on a boolean condition.
type Branch struct{}

// TypeKey returns the "type" of node.
func (b *Branch) TypeKey() string { return "Branch" }

// Clone returns a copy of this kind.
func (b *Branch) Clone() model.Kind { return &Branch{} }

// Init takes no parameters.
func (b *Branch) Init(doc *model.Document, params model.Params) error { return nil }

// Pins is the fixed branch shape.
func (b *Branch) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "condition", Direction: pin.Input, Type: pin.TypeBool},
		{Name: "then", Direction: pin.Output, Type: pin.TypeExec},
		{Name: "else", Direction: pin.Output, Type: pin.TypeExec},
	}
}

// Sequence fires its outgoing branches in order. The branch count can grow
// and shrink after creation but never drops below one.
type Sequence struct {
	Branches int `json:"branches"`
}

// TypeKey returns the "type" of node.
func (s *Sequence) TypeKey() string { return "Sequence" }

// Clone returns a copy of this kind.
func (s *Sequence) Clone() model.Kind { s0 := *s; return &s0 }

// Init reads an optional branch count (default 2).
func (s *Sequence) Init(doc *model.Document, params model.Params) error {
	s.Branches = params.IntOr("branches", 2)
	if s.Branches < s.MinPins() {
		return bferrors.InvalidParams("a sequence needs at least %d branch", s.MinPins())
	}
	return nil
}

// Pins is one exec input plus the numbered branches.
func (s *Sequence) Pins() []*pin.Definition {
	defs := []*pin.Definition{{Name: "execute", Direction: pin.Input, Type: pin.TypeExec}}
	for i := 0; i < s.Branches; i++ {
		defs = append(defs, &pin.Definition{Name: fmt.Sprintf("then_%d", i), Direction: pin.Output, Type: pin.TypeExec})
	}
	return defs
}

// AddPin appends a branch.
func (s *Sequence) AddPin() string {
	s.Branches++
	return fmt.Sprintf("then_%d", s.Branches-1)
}

// RemovePin drops the last branch, never going below the minimum.
func (s *Sequence) RemovePin() (string, error) {
	if s.Branches <= s.MinPins() {
		return "", bferrors.InvalidParams("a sequence retains at least %d branch", s.MinPins())
	}
	s.Branches--
	return fmt.Sprintf("then_%d", s.Branches), nil
}

// MinPins is the structural minimum branch count.
func (s *Sequence) MinPins() int { return 1 }

// Comparison compares two operands of a caller-chosen type. It is pure: no
// exec pins.
type Comparison struct {
	Operator    string   `json:"operator"`
	OperandType pin.Type `json:"operand_type"`
}

var comparisonOperators = map[string]bool{
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
}

// TypeKey returns the "type" of node.
func (c *Comparison) TypeKey() string { return "Comparison" }

// Clone returns a copy of this kind.
func (c *Comparison) Clone() model.Kind { c0 := *c; return &c0 }

// Init resolves the operator (default ==) and operand type (default float).
func (c *Comparison) Init(doc *model.Document, params model.Params) error {
	c.Operator = params.StringOr("operator", "==")
	if !comparisonOperators[c.Operator] {
		return bferrors.InvalidParams("unknown comparison operator %q", c.Operator)
	}
	c.OperandType = pin.ParseType(params.StringOr("operand_type", "float"))
	return nil
}

// Pins is two typed inputs and a boolean result.
func (c *Comparison) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "a", Direction: pin.Input, Type: c.OperandType},
		{Name: "b", Direction: pin.Input, Type: c.OperandType},
		{Name: "result", Direction: pin.Output, Type: pin.TypeBool},
	}
}

// SwitchInteger routes on an integer selection over numbered cases.
type SwitchInteger struct {
	Cases int `json:"cases"`
}

// TypeKey returns the "type" of node.
func (s *SwitchInteger) TypeKey() string { return "SwitchInteger" }

// Clone returns a copy of this kind.
func (s *SwitchInteger) Clone() model.Kind { s0 := *s; return &s0 }

// Init reads an optional case count (default 2).
func (s *SwitchInteger) Init(doc *model.Document, params model.Params) error {
	s.Cases = params.IntOr("cases", 2)
	if s.Cases < s.MinPins() {
		return bferrors.InvalidParams("a switch needs at least %d case", s.MinPins())
	}
	return nil
}

// Pins is exec in, the integer selection, numbered case outputs, and a
// default output.
func (s *SwitchInteger) Pins() []*pin.Definition {
	defs := []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "selection", Direction: pin.Input, Type: pin.TypeInt},
	}
	for i := 0; i < s.Cases; i++ {
		defs = append(defs, &pin.Definition{Name: fmt.Sprintf("case_%d", i), Direction: pin.Output, Type: pin.TypeExec})
	}
	defs = append(defs, &pin.Definition{Name: "default", Direction: pin.Output, Type: pin.TypeExec})
	return defs
}

// AddPin appends a case.
func (s *SwitchInteger) AddPin() string {
	s.Cases++
	return fmt.Sprintf("case_%d", s.Cases-1)
}

// RemovePin drops the last case, never going below the minimum.
func (s *SwitchInteger) RemovePin() (string, error) {
	if s.Cases <= s.MinPins() {
		return "", bferrors.InvalidParams("a switch retains at least %d case", s.MinPins())
	}
	s.Cases--
	return fmt.Sprintf("case_%d", s.Cases), nil
}

// MinPins is the structural minimum case count.
func (s *SwitchInteger) MinPins() int { return 1 }

// SwitchString routes on a string selection over named cases.
type SwitchString struct {
	Cases []string `json:"cases"`
}

// TypeKey returns the "type" of node.
func (s *SwitchString) TypeKey() string { return "SwitchString" }

// Clone returns a copy of this kind.
func (s *SwitchString) Clone() model.Kind {
	s0 := &SwitchString{Cases: append([]string(nil), s.Cases...)}
	return s0
}

// Init reads the case labels; at least one is required.
func (s *SwitchString) Init(doc *model.Document, params model.Params) error {
	s.Cases = params.Strings("cases")
	if len(s.Cases) < s.MinPins() {
		return bferrors.InvalidParams("a string switch needs at least %d named case", s.MinPins())
	}
	return nil
}

// Pins is exec in, the string selection, one output per case, and a
// default output.
func (s *SwitchString) Pins() []*pin.Definition {
	defs := []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "selection", Direction: pin.Input, Type: pin.TypeString},
	}
	for _, c := range s.Cases {
		defs = append(defs, &pin.Definition{Name: c, Direction: pin.Output, Type: pin.TypeExec})
	}
	defs = append(defs, &pin.Definition{Name: "default", Direction: pin.Output, Type: pin.TypeExec})
	return defs
}

// AddPin appends a generated case label.
func (s *SwitchString) AddPin() string {
	name := fmt.Sprintf("case_%d", len(s.Cases))
	s.Cases = append(s.Cases, name)
	return name
}

// RemovePin drops the last case, never going below the minimum.
func (s *SwitchString) RemovePin() (string, error) {
	if len(s.Cases) <= s.MinPins() {
		return "", bferrors.InvalidParams("a string switch retains at least %d case", s.MinPins())
	}
	name := s.Cases[len(s.Cases)-1]
	s.Cases = s.Cases[:len(s.Cases)-1]
	return name, nil
}

// MinPins is the structural minimum case count.
func (s *SwitchString) MinPins() int { return 1 }

// SwitchEnum routes on the values of a named enumeration. The enumeration
// must be registered; the case set is fixed by it.
type SwitchEnum struct {
	Enum   string   `json:"enum"`
	Values []string `json:"values"`
}

// TypeKey returns the "type" of node.
func (s *SwitchEnum) TypeKey() string { return "SwitchEnum" }

// Clone returns a copy of this kind.
func (s *SwitchEnum) Clone() model.Kind {
	return &SwitchEnum{Enum: s.Enum, Values: append([]string(nil), s.Values...)}
}

// Init resolves the named enumeration. An unknown enumeration fails
// construction and leaves the graph untouched.
func (s *SwitchEnum) Init(doc *model.Document, params model.Params) error {
	name, ok := params.String("enum")
	if !ok {
		return bferrors.InvalidParams("SwitchEnum requires an enum")
	}
	values, err := LookupEnum(name)
	if err != nil {
		return err
	}
	s.Enum = name
	s.Values = values
	return nil
}

// Pins is exec in, the enum selection, and one output per enum value.
func (s *SwitchEnum) Pins() []*pin.Definition {
	defs := []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "selection", Direction: pin.Input, Type: pin.Type{Category: pin.Int, Sub: s.Enum}},
	}
	for _, v := range s.Values {
		defs = append(defs, &pin.Definition{Name: v, Direction: pin.Output, Type: pin.TypeExec})
	}
	return defs
}
