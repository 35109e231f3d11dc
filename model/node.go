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

	"github.com/blueforge/blueforge/model/pin"
)

// Node is a typed unit of behaviour in a graph. Its ID is generated once at
// construction and never changes. This is the "real" model type for nodes.
type Node struct {
	ID      string
	Kind    Kind
	Comment string
	X, Y    float64
	Pins    []*Pin
}

// Pin is one connection point instance on a node. Pins are owned by their
// node and die with it. Default holds the literal used when no link is
// attached to a data input.
type Pin struct {
	Name      string
	Direction pin.Direction
	Type      pin.Type
	Default   string
}

// FindPin returns the pin with the given name and direction, or nil.
// Pin names match case-insensitively, like the original editor.
func (n *Node) FindPin(name string, dir pin.Direction) *Pin {
	for _, p := range n.Pins {
		if p.Direction == dir && strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// buildPins derives the node's pin instances from its kind, preserving
// defaults of same-named pins that survive the rebuild.
func (n *Node) buildPins() {
	old := n.Pins
	defs := n.Kind.Pins()
	pins := make([]*Pin, 0, len(defs))
	for _, d := range defs {
		p := &Pin{
			Name:      d.Name,
			Direction: d.Direction,
			Type:      d.Type,
			Default:   d.Default,
		}
		for _, o := range old {
			if o.Direction == p.Direction && strings.EqualFold(o.Name, p.Name) && o.Default != "" {
				p.Default = o.Default
			}
		}
		pins = append(pins, p)
	}
	n.Pins = pins
}
