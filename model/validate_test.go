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
	"testing"

	"github.com/blueforge/blueforge/model/pin"
)

func init() {
	RegisterKindType("VarRef", &KindType{New: func() Kind { return new(VarRefKind) }})
}

// VarRefKind holds a name-based variable reference like a getter node.
type VarRefKind struct {
	Var string
}

func (v *VarRefKind) TypeKey() string { return "VarRef" }
func (v *VarRefKind) Clone() Kind     { v0 := *v; return &v0 }

func (v *VarRefKind) Init(doc *Document, params Params) error {
	v.Var = params.StringOr("variable_name", "")
	return nil
}

func (v *VarRefKind) Pins() []*pin.Definition {
	return []*pin.Definition{{Name: "value", Direction: pin.Output, Type: pin.TypeReal}}
}

func (v *VarRefKind) VariableName() string { return v.Var }

func severities(diags []Diagnostic) (errs, warns int) {
	for _, d := range diags {
		if d.Severity == SeverityError {
			errs++
		} else {
			warns++
		}
	}
	return errs, warns
}

func TestCompileCleanGraph(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	a, _ := g.CreateNode(d, "Fake", nil)
	b, _ := g.CreateNode(d, "Fake", nil)
	g.Connect(a.ID, "output", b.ID, "input")

	diags := Compile(d)
	if len(diags) != 0 {
		t.Errorf("Compile = %v, want no diagnostics", diags)
	}
	if d.Dirty() {
		t.Error("d.Dirty() = true after clean compile, want false")
	}
}

func TestCompileMissingPinIsError(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	n, _ := g.CreateNode(d, "Growable", Params{"count": 2.0})
	sink, _ := g.CreateNode(d, "Fake", nil)
	if _, err := g.Connect(n.ID, "out_1", sink.ID, "input"); err != nil {
		t.Fatalf("Connect = error %v", err)
	}

	// Shrink the kind behind the graph's back: the stale link becomes a
	// structural error.
	n.Kind.(*GrowableKind).Count = 1
	n.buildPins()

	diags := Compile(d)
	errs, _ := severities(diags)
	if errs != 1 {
		t.Errorf("Compile = %v, want 1 error", diags)
	}
	if !d.Dirty() {
		t.Error("d.Dirty() = false after failed compile, want true")
	}
}

func TestCompileFanInIsWarning(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	a, _ := g.CreateNode(d, "Fake", nil)
	b, _ := g.CreateNode(d, "Fake", nil)
	c, _ := g.CreateNode(d, "Fake", nil)
	g.Connect(a.ID, "output", c.ID, "input")
	g.Connect(b.ID, "output", c.ID, "input")

	diags := Compile(d)
	errs, warns := severities(diags)
	if errs != 0 || warns != 1 {
		t.Errorf("Compile = %v, want exactly 1 warning", diags)
	}
	// Warnings don't block the dirty flag from clearing.
	if d.Dirty() {
		t.Error("d.Dirty() = true after warning-only compile, want false")
	}
}

func TestCompileDanglingVariableReference(t *testing.T) {
	d := NewDocument("bp")
	if err := d.CreateVariable(&Variable{Name: "Health", Type: pin.TypeReal}); err != nil {
		t.Fatalf("CreateVariable = error %v", err)
	}
	g := d.EventGraph
	if _, err := g.CreateNode(d, "VarRef", Params{"variable_name": "Health"}); err != nil {
		t.Fatalf("CreateNode = error %v", err)
	}

	if diags := Compile(d); len(diags) != 0 {
		t.Fatalf("Compile = %v, want no diagnostics", diags)
	}

	// Deleting the variable does not cascade; it surfaces on compile.
	if err := d.DeleteVariable("Health"); err != nil {
		t.Fatalf("DeleteVariable = error %v", err)
	}
	diags := Compile(d)
	errs, warns := severities(diags)
	if errs != 0 || warns != 1 {
		t.Errorf("Compile = %v, want exactly 1 warning", diags)
	}
}
