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

// Graph is a container of nodes and links: the event graph or one function
// body. Every node belongs to exactly one graph.
type Graph struct {
	Name  string
	Nodes map[string]*Node // id -> node
	Links []*Link
}

// NodePin identifies one pin on one node.
type NodePin struct {
	Node string `json:"node"`
	Pin  string `json:"pin"`
}

// Link is a directed edge from an output pin to an input pin. Both
// endpoints have compatible types by construction.
type Link struct {
	Source NodePin
	Target NodePin
	Type   pin.Type
}

// NewGraph returns a new empty graph.
func NewGraph(name string) *Graph {
	return &Graph{
		Name:  name,
		Nodes: make(map[string]*Node),
	}
}

// Node looks a node up by id.
func (g *Graph) Node(id string) (*Node, error) {
	n := g.Nodes[id]
	if n == nil {
		return nil, errors.NodeNotFound(id)
	}
	return n, nil
}

// CreateNode constructs a node of the given type and registers it in the
// graph. Construction is all-or-nothing: a failing constructor leaves the
// graph unmodified and no node registered.
func (g *Graph) CreateNode(doc *Document, typeTag string, params Params) (*Node, error) {
	kt := LookupKindType(typeTag)
	if kt == nil {
		return nil, errors.UnknownNodeType(typeTag)
	}
	if params == nil {
		params = Params{}
	}
	k := kt.New()
	if err := k.Init(doc, params); err != nil {
		return nil, err
	}
	n := &Node{
		ID:   uuid.NewString(),
		Kind: k,
		X:    params.FloatOr("pos_x", 0),
		Y:    params.FloatOr("pos_y", 0),
	}
	n.buildPins()
	g.Nodes[n.ID] = n
	doc.MarkDirty()
	return n, nil
}

// Connect links an output pin on the source node to an input pin on the
// target node. Multiple links per output pin are legal; connecting
// already-linked compatible pins creates an additional link.
func (g *Graph) Connect(sourceNode, sourcePin, targetNode, targetPin string) (*Link, error) {
	src, err := g.Node(sourceNode)
	if err != nil {
		return nil, err
	}
	dst, err := g.Node(targetNode)
	if err != nil {
		return nil, err
	}
	sp := src.FindPin(sourcePin, pin.Output)
	if sp == nil {
		return nil, errors.PinNotFound(sourceNode, sourcePin)
	}
	tp := dst.FindPin(targetPin, pin.Input)
	if tp == nil {
		return nil, errors.PinNotFound(targetNode, targetPin)
	}
	if !sp.Type.Compatible(tp.Type) {
		return nil, errors.IncompatiblePins(sp.Type.String(), tp.Type.String())
	}
	l := &Link{
		Source: NodePin{Node: src.ID, Pin: sp.Name},
		Target: NodePin{Node: dst.ID, Pin: tp.Name},
		Type:   sp.Type,
	}
	g.Links = append(g.Links, l)
	return l, nil
}

// Disconnect removes the link between the named endpoints. Disconnecting a
// link that does not exist is an explicit, reported error.
func (g *Graph) Disconnect(sourceNode, sourcePin, targetNode, targetPin string) error {
	for i, l := range g.Links {
		if l.Source.Node == sourceNode && equalPin(l.Source.Pin, sourcePin) &&
			l.Target.Node == targetNode && equalPin(l.Target.Pin, targetPin) {
			g.Links = append(g.Links[:i], g.Links[i+1:]...)
			return nil
		}
	}
	return errors.LinkNotFound(sourceNode, sourcePin, targetNode, targetPin)
}

// DeleteNode severs every link touching any of the node's pins, then
// removes the node. The id is invalid for all future lookups afterwards.
func (g *Graph) DeleteNode(n *Node) {
	kept := g.Links[:0]
	for _, l := range g.Links {
		if l.Source.Node == n.ID || l.Target.Node == n.ID {
			continue
		}
		kept = append(kept, l)
	}
	g.Links = kept
	delete(g.Nodes, n.ID)
}

// DuplicateNode copies a node under a fresh id: the kind configuration is
// cloned, pin defaults and the comment carry over, links do not.
func (g *Graph) DuplicateNode(doc *Document, n *Node) *Node {
	dup := &Node{
		ID:      uuid.NewString(),
		Kind:    n.Kind.Clone(),
		Comment: n.Comment,
		X:       n.X,
		Y:       n.Y,
		Pins:    make([]*Pin, 0, len(n.Pins)),
	}
	for _, p := range n.Pins {
		p0 := *p
		dup.Pins = append(dup.Pins, &p0)
	}
	g.Nodes[dup.ID] = dup
	doc.MarkDirty()
	return dup
}

// LinksAt returns all links with an endpoint on the given node.
func (g *Graph) LinksAt(id string) []*Link {
	var out []*Link
	for _, l := range g.Links {
		if l.Source.Node == id || l.Target.Node == id {
			out = append(out, l)
		}
	}
	return out
}

// RefreshNodePins re-derives the node's pins from its kind. Use this after
// a mutation that can change the pin set (pin-count ops, reference
// retargets). Links to pins that vanished, or whose endpoint types no
// longer agree, are severed.
func (g *Graph) RefreshNodePins(n *Node) {
	n.buildPins()
	kept := g.Links[:0]
	for _, l := range g.Links {
		if !g.linkStillValid(l) {
			continue
		}
		kept = append(kept, l)
	}
	g.Links = kept
}

func (g *Graph) linkStillValid(l *Link) bool {
	src := g.Nodes[l.Source.Node]
	dst := g.Nodes[l.Target.Node]
	if src == nil || dst == nil {
		return false
	}
	sp := src.FindPin(l.Source.Pin, pin.Output)
	tp := dst.FindPin(l.Target.Pin, pin.Input)
	if sp == nil || tp == nil {
		return false
	}
	return sp.Type.Compatible(tp.Type)
}

// AddNodePin grows a pin-counted node by one pin and returns its name.
func (g *Graph) AddNodePin(n *Node) (string, error) {
	pc, ok := n.Kind.(PinCounter)
	if !ok {
		return "", errors.InvalidParams("node type %s does not support pin-count changes", n.Kind.TypeKey())
	}
	name := pc.AddPin()
	g.RefreshNodePins(n)
	return name, nil
}

// RemoveNodePin shrinks a pin-counted node by one pin, severing links to
// the removed pin. The kind's structural minimum is enforced; the call that
// would violate it fails and the pin set is unchanged.
func (g *Graph) RemoveNodePin(n *Node) (string, error) {
	pc, ok := n.Kind.(PinCounter)
	if !ok {
		return "", errors.InvalidParams("node type %s does not support pin-count changes", n.Kind.TypeKey())
	}
	name, err := pc.RemovePin()
	if err != nil {
		return "", err
	}
	g.RefreshNodePins(n)
	return name, nil
}

// Pin names are stored canonically; lookups may differ in case only.
func equalPin(a, b string) bool { return strings.EqualFold(a, b) }
