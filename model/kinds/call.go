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
	"strconv"
	"strings"

	bferrors "github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model"
	"github.com/blueforge/blueforge/model/pin"
)

func init() {
	model.RegisterKindType("Print", &model.KindType{New: func() model.Kind { return &Print{} }})
	model.RegisterKindType("CallFunction", &model.KindType{New: func() model.Kind { return &CallFunction{} }})
}

// Print writes a message to the debug output. The message and duration
// live as pin defaults, so the property editor can change them later.
type Print struct {
	Message  string  `json:"message"`
	Duration float64 `json:"duration"`
}

// TypeKey returns the "type" of node.
func (p *Print) TypeKey() string { return "Print" }

// Clone returns a copy of this kind.
func (p *Print) Clone() model.Kind { p0 := *p; return &p0 }

// Init reads the optional message and duration.
func (p *Print) Init(doc *model.Document, params model.Params) error {
	p.Message = params.StringOr("message", "Hello")
	p.Duration = params.FloatOr("duration", 2)
	return nil
}

// Pins carries the message and duration as input defaults.
func (p *Print) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "execute", Direction: pin.Input, Type: pin.TypeExec},
		{Name: "in_string", Direction: pin.Input, Type: pin.TypeString, Default: p.Message},
		{Name: "duration", Direction: pin.Input, Type: pin.TypeReal, Default: strconv.FormatFloat(p.Duration, 'g', -1, 64)},
		{Name: "then", Direction: pin.Output, Type: pin.TypeExec},
	}
}

// SetMessage updates the stored message.
func (p *Print) SetMessage(s string) { p.Message = s }

// SetDuration updates the stored duration.
func (p *Print) SetDuration(d float64) { p.Duration = d }

// librarySignature describes one built-in callable.
type librarySignature struct {
	Inputs  []*model.Param
	Outputs []*model.Param
	Pure    bool
}

// library is the built-in function catalogue, keyed lowercase. Document
// functions shadow it.
var library = map[string]*librarySignature{
	"printstring": {
		Inputs: []*model.Param{
			{Name: "in_string", Type: pin.TypeString},
			{Name: "duration", Type: pin.TypeReal},
		},
	},
	"delay": {
		Inputs: []*model.Param{{Name: "duration", Type: pin.TypeReal}},
	},
	"randomfloatinrange": {
		Inputs: []*model.Param{
			{Name: "min", Type: pin.TypeReal},
			{Name: "max", Type: pin.TypeReal},
		},
		Outputs: []*model.Param{{Name: "return_value", Type: pin.TypeReal}},
		Pure:    true,
	},
	"makevector": {
		Inputs: []*model.Param{
			{Name: "x", Type: pin.TypeReal},
			{Name: "y", Type: pin.TypeReal},
			{Name: "z", Type: pin.TypeReal},
		},
		Outputs: []*model.Param{{Name: "return_value", Type: pin.StructType("Vector")}},
		Pure:    true,
	},
	"getactorlocation": {
		Inputs:  []*model.Param{{Name: "target", Type: pin.ObjectType("Actor")}},
		Outputs: []*model.Param{{Name: "return_value", Type: pin.StructType("Vector")}},
		Pure:    true,
	},
}

// CallFunction invokes a document function or a built-in library function
// by name. Resolution happens at construction; an unknown name fails
// without registering a node.
type CallFunction struct {
	Target string `json:"target"`

	local   bool
	inputs  []*model.Param
	outputs []*model.Param
	pure    bool
}

// TypeKey returns the "type" of node.
func (c *CallFunction) TypeKey() string { return "CallFunction" }

// Clone returns a copy of this kind.
func (c *CallFunction) Clone() model.Kind { c0 := *c; return &c0 }

// FunctionName returns the referenced document function name, or "" when
// the target is a built-in.
func (c *CallFunction) FunctionName() string {
	if c.local {
		return c.Target
	}
	return ""
}

// Init resolves the callee. Document functions are tried first, then the
// built-in library.
func (c *CallFunction) Init(doc *model.Document, params model.Params) error {
	name, ok := params.String("target_function")
	if !ok {
		return bferrors.InvalidParams("CallFunction requires a target_function")
	}
	if f, err := doc.Function(name); err == nil {
		c.Target = f.Name
		c.local = true
		c.inputs = f.Inputs
		c.outputs = f.Outputs
		return nil
	}
	sig, ok := library[strings.ToLower(name)]
	if !ok {
		return bferrors.NotFound("function", name)
	}
	c.Target = name
	c.inputs = sig.Inputs
	c.outputs = sig.Outputs
	c.pure = sig.Pure
	return nil
}

// Pins derives the pin set from the resolved signature. Pure functions
// have no exec pins.
func (c *CallFunction) Pins() []*pin.Definition {
	var defs []*pin.Definition
	if !c.pure {
		defs = append(defs, &pin.Definition{Name: "execute", Direction: pin.Input, Type: pin.TypeExec})
	}
	for _, p := range c.inputs {
		defs = append(defs, &pin.Definition{Name: p.Name, Direction: pin.Input, Type: p.Type})
	}
	if !c.pure {
		defs = append(defs, &pin.Definition{Name: "then", Direction: pin.Output, Type: pin.TypeExec})
	}
	for _, p := range c.outputs {
		defs = append(defs, &pin.Definition{Name: p.Name, Direction: pin.Output, Type: p.Type})
	}
	return defs
}
