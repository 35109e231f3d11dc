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

package api

import (
	"sort"

	"github.com/blueforge/blueforge/model"
)

// PinSummary is the wire view of one pin instance.
type PinSummary struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Type      string `json:"type"`
	Default   string `json:"default,omitempty"`
}

// NodeSummary is the wire view of one node.
type NodeSummary struct {
	ID      string       `json:"node_id"`
	Type    string       `json:"node_type"`
	X       float64      `json:"pos_x"`
	Y       float64      `json:"pos_y"`
	Comment string       `json:"comment,omitempty"`
	Pins    []PinSummary `json:"pins"`
}

// LinkSummary is the wire view of one link.
type LinkSummary struct {
	SourceNode string `json:"source_node"`
	SourcePin  string `json:"source_pin"`
	TargetNode string `json:"target_node"`
	TargetPin  string `json:"target_pin"`
	Type       string `json:"connection_type"`
}

// GraphSummary is the wire view of one graph.
type GraphSummary struct {
	Name  string        `json:"graph_name"`
	Nodes []NodeSummary `json:"nodes"`
	Links []LinkSummary `json:"links"`
}

// VariableSummary is the wire view of one document variable.
type VariableSummary struct {
	Name     string `json:"variable_name"`
	Type     string `json:"variable_type"`
	Default  string `json:"default_value,omitempty"`
	Public   bool   `json:"is_public"`
	Tooltip  string `json:"tooltip,omitempty"`
	Category string `json:"category"`
}

// ParamSummary is the wire view of one signature parameter.
type ParamSummary struct {
	Name string `json:"param_name"`
	Type string `json:"param_type"`
}

// FunctionSummary is the wire view of one function signature.
type FunctionSummary struct {
	Name    string         `json:"function_name"`
	Inputs  []ParamSummary `json:"inputs"`
	Outputs []ParamSummary `json:"outputs"`
}

// SummarizeNode flattens a node for the wire.
func SummarizeNode(n *model.Node) NodeSummary {
	s := NodeSummary{
		ID:      n.ID,
		Type:    n.Kind.TypeKey(),
		X:       n.X,
		Y:       n.Y,
		Comment: n.Comment,
		Pins:    make([]PinSummary, 0, len(n.Pins)),
	}
	for _, p := range n.Pins {
		s.Pins = append(s.Pins, PinSummary{
			Name:      p.Name,
			Direction: string(p.Direction),
			Type:      p.Type.String(),
			Default:   p.Default,
		})
	}
	return s
}

// SummarizeGraph flattens a graph for the wire. Nodes are ordered by id so
// repeated reads are stable.
func SummarizeGraph(g *model.Graph) GraphSummary {
	s := GraphSummary{
		Name:  g.Name,
		Nodes: make([]NodeSummary, 0, len(g.Nodes)),
		Links: make([]LinkSummary, 0, len(g.Links)),
	}
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s.Nodes = append(s.Nodes, SummarizeNode(g.Nodes[id]))
	}
	for _, l := range g.Links {
		s.Links = append(s.Links, LinkSummary{
			SourceNode: l.Source.Node,
			SourcePin:  l.Source.Pin,
			TargetNode: l.Target.Node,
			TargetPin:  l.Target.Pin,
			Type:       l.Type.String(),
		})
	}
	return s
}

// SummarizeVariable flattens a variable for the wire.
func SummarizeVariable(v *model.Variable) VariableSummary {
	return VariableSummary{
		Name:     v.Name,
		Type:     v.Type.String(),
		Default:  v.Default,
		Public:   v.Public,
		Tooltip:  v.Tooltip,
		Category: v.Category,
	}
}

// SummarizeFunction flattens a function signature for the wire.
func SummarizeFunction(f *model.Function) FunctionSummary {
	s := FunctionSummary{
		Name:    f.Name,
		Inputs:  make([]ParamSummary, 0, len(f.Inputs)),
		Outputs: make([]ParamSummary, 0, len(f.Outputs)),
	}
	for _, p := range f.Inputs {
		s.Inputs = append(s.Inputs, ParamSummary{Name: p.Name, Type: p.Type.String()})
	}
	for _, p := range f.Outputs {
		s.Outputs = append(s.Outputs, ParamSummary{Name: p.Name, Type: p.Type.String()})
	}
	return s
}
