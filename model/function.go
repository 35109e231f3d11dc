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

	"github.com/google/uuid"

	"github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model/pin"
)

// Param is one input or output parameter of a function signature.
type Param struct {
	Name string
	Type pin.Type
}

// Function is a named graph with an explicit signature. The entry node
// exposes the inputs, the result node the outputs.
type Function struct {
	Name     string
	Graph    *Graph
	EntryID  string
	ResultID string
	Inputs   []*Param
	Outputs  []*Param
}

// CreateFunction adds a function graph with entry and result nodes.
// returnType may be empty or "void" for no return value.
func (d *Document) CreateFunction(name, returnType string) (*Function, error) {
	if _, err := d.Function(name); err == nil {
		return nil, errors.AlreadyExists("function", name)
	}
	f := &Function{
		Name:  name,
		Graph: NewGraph(name),
	}
	if returnType != "" && !strings.EqualFold(returnType, "void") {
		f.Outputs = append(f.Outputs, &Param{Name: "ReturnValue", Type: pin.ParseType(returnType)})
	}
	entry := newNode(&FunctionEntry{fn: f}, 0, 0)
	result := newNode(&FunctionResult{fn: f}, 600, 0)
	f.Graph.Nodes[entry.ID] = entry
	f.Graph.Nodes[result.ID] = result
	f.EntryID = entry.ID
	f.ResultID = result.ID
	d.Functions[name] = f
	d.MarkDirty()
	return f, nil
}

// DeleteFunction removes a function and its graph. CallFunction nodes that
// reference it by name are left alone; the dangling reference surfaces as a
// compile diagnostic.
func (d *Document) DeleteFunction(name string) error {
	f, err := d.Function(name)
	if err != nil {
		return err
	}
	delete(d.Functions, f.Name)
	d.MarkDirty()
	return nil
}

// RenameFunction renames a function. Call sites referencing the old name
// are not rewritten.
func (d *Document) RenameFunction(oldName, newName string) error {
	f, err := d.Function(oldName)
	if err != nil {
		return err
	}
	if _, err := d.Function(newName); err == nil {
		return errors.AlreadyExists("function", newName)
	}
	delete(d.Functions, f.Name)
	f.Name = newName
	f.Graph.Name = newName
	d.Functions[newName] = f
	d.MarkDirty()
	return nil
}

// AddInput appends an input parameter and rebuilds the entry node's pins.
func (f *Function) AddInput(name, typeString string) (*Param, error) {
	if f.paramNamed(f.Inputs, name) != nil {
		return nil, errors.AlreadyExists("parameter", name)
	}
	p := &Param{Name: name, Type: pin.ParseType(typeString)}
	f.Inputs = append(f.Inputs, p)
	f.Graph.RefreshNodePins(f.Graph.Nodes[f.EntryID])
	return p, nil
}

// AddOutput appends an output parameter and rebuilds the result node's pins.
func (f *Function) AddOutput(name, typeString string) (*Param, error) {
	if f.paramNamed(f.Outputs, name) != nil {
		return nil, errors.AlreadyExists("parameter", name)
	}
	p := &Param{Name: name, Type: pin.ParseType(typeString)}
	f.Outputs = append(f.Outputs, p)
	f.Graph.RefreshNodePins(f.Graph.Nodes[f.ResultID])
	return p, nil
}

func (f *Function) paramNamed(ps []*Param, name string) *Param {
	for _, p := range ps {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

func newNode(k Kind, x, y float64) *Node {
	n := &Node{ID: uuid.NewString(), Kind: k, X: x, Y: y}
	n.buildPins()
	return n
}

// FunctionEntry is the node holding a function's input parameters. One per
// function graph, created with the function.
type FunctionEntry struct {
	fn *Function
}

// TypeKey returns the "type" of node.
func (e *FunctionEntry) TypeKey() string { return "FunctionEntry" }

// Clone returns a copy of this kind.
func (e *FunctionEntry) Clone() Kind { e0 := *e; return &e0 }

// Function returns the function whose inputs this node exposes.
func (e *FunctionEntry) Function() *Function { return e.fn }

// Init resolves the owning function by name.
func (e *FunctionEntry) Init(doc *Document, params Params) error {
	name, ok := params.String("function_name")
	if !ok {
		return errors.InvalidParams("FunctionEntry requires a function_name")
	}
	f, err := doc.Function(name)
	if err != nil {
		return err
	}
	e.fn = f
	return nil
}

// Pins exposes an exec output plus one data output per input parameter.
func (e *FunctionEntry) Pins() []*pin.Definition {
	defs := []*pin.Definition{{Name: "then", Direction: pin.Output, Type: pin.TypeExec}}
	for _, p := range e.fn.Inputs {
		defs = append(defs, &pin.Definition{Name: p.Name, Direction: pin.Output, Type: p.Type})
	}
	return defs
}

// FunctionResult is the node holding a function's output parameters.
type FunctionResult struct {
	fn *Function
}

// TypeKey returns the "type" of node.
func (r *FunctionResult) TypeKey() string { return "FunctionResult" }

// Clone returns a copy of this kind.
func (r *FunctionResult) Clone() Kind { r0 := *r; return &r0 }

// Function returns the function whose outputs this node exposes.
func (r *FunctionResult) Function() *Function { return r.fn }

// Init resolves the owning function by name.
func (r *FunctionResult) Init(doc *Document, params Params) error {
	name, ok := params.String("function_name")
	if !ok {
		return errors.InvalidParams("FunctionResult requires a function_name")
	}
	f, err := doc.Function(name)
	if err != nil {
		return err
	}
	r.fn = f
	return nil
}

// Pins exposes an exec input plus one data input per output parameter.
func (r *FunctionResult) Pins() []*pin.Definition {
	defs := []*pin.Definition{{Name: "execute", Direction: pin.Input, Type: pin.TypeExec}}
	for _, p := range r.fn.Outputs {
		defs = append(defs, &pin.Definition{Name: p.Name, Direction: pin.Input, Type: p.Type})
	}
	return defs
}

func init() {
	RegisterKindType("FunctionEntry", &KindType{New: func() Kind { return &FunctionEntry{} }})
	RegisterKindType("FunctionResult", &KindType{New: func() Kind { return &FunctionResult{} }})
}
