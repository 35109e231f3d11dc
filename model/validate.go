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
	"fmt"

	"github.com/blueforge/blueforge/model/pin"
)

// Severity of a compile diagnostic.
type Severity string

// Diagnostic severities. Errors indicate a structurally broken graph;
// warnings indicate soft-reference or convention issues.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one finding from structural validation.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Graph    string   `json:"graph"`
	Node     string   `json:"node,omitempty"`
	Message  string   `json:"message"`
}

// ReferencesVariable is implemented by kinds that hold a name-based soft
// reference to a document variable.
type ReferencesVariable interface {
	VariableName() string
}

// ReferencesFunction is implemented by kinds that hold a name-based soft
// reference to a function.
type ReferencesFunction interface {
	FunctionName() string
}

// Compile runs structural validation over every graph in the document and
// refreshes derived state. The dirty flag is cleared only when no
// error-severity diagnostics are found.
func Compile(d *Document) []Diagnostic {
	var diags []Diagnostic
	for _, g := range d.Graphs() {
		diags = append(diags, checkGraph(d, g)...)
	}
	hasErr := false
	for _, diag := range diags {
		if diag.Severity == SeverityError {
			hasErr = true
			break
		}
	}
	if !hasErr {
		d.ClearDirty()
	}
	return diags
}

func checkGraph(d *Document, g *Graph) []Diagnostic {
	var diags []Diagnostic
	fanIn := make(map[NodePin]int)

	for _, l := range g.Links {
		src := g.Nodes[l.Source.Node]
		dst := g.Nodes[l.Target.Node]
		if src == nil || dst == nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Graph:    g.Name,
				Message:  fmt.Sprintf("link %v -> %v references a missing node", l.Source, l.Target),
			})
			continue
		}
		sp := src.FindPin(l.Source.Pin, pin.Output)
		tp := dst.FindPin(l.Target.Pin, pin.Input)
		if sp == nil || tp == nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Graph:    g.Name,
				Node:     l.Source.Node,
				Message:  fmt.Sprintf("link %v -> %v references a missing pin", l.Source, l.Target),
			})
			continue
		}
		if !sp.Type.Compatible(tp.Type) {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Graph:    g.Name,
				Node:     l.Source.Node,
				Message:  fmt.Sprintf("link %v -> %v joins incompatible types %s and %s", l.Source, l.Target, sp.Type, tp.Type),
			})
		}
		if tp.Type.Category != pin.Exec {
			fanIn[l.Target]++
		}
	}

	// Fan-in on data inputs is not rejected at the model level; surface it
	// so callers relying on last-write-wins can see it.
	for np, count := range fanIn {
		if count > 1 {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Graph:    g.Name,
				Node:     np.Node,
				Message:  fmt.Sprintf("data input %s.%s has %d incoming links", np.Node, np.Pin, count),
			})
		}
	}

	for id, n := range g.Nodes {
		if rv, ok := n.Kind.(ReferencesVariable); ok {
			if _, err := d.Variable(rv.VariableName()); err != nil {
				diags = append(diags, Diagnostic{
					Severity: SeverityWarning,
					Graph:    g.Name,
					Node:     id,
					Message:  fmt.Sprintf("node references unknown variable %q", rv.VariableName()),
				})
			}
		}
		if rf, ok := n.Kind.(ReferencesFunction); ok {
			if name := rf.FunctionName(); name != "" {
				if _, err := d.Function(name); err != nil {
					diags = append(diags, Diagnostic{
						Severity: SeverityWarning,
						Graph:    g.Name,
						Node:     id,
						Message:  fmt.Sprintf("node references unknown function %q", name),
					})
				}
			}
		}
	}
	return diags
}
