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
	"testing"

	"github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model/pin"
)

func init() {
	RegisterKindType("Fake", &KindType{New: func() Kind { return new(FakeKind) }})
	RegisterKindType("Growable", &KindType{New: func() Kind { return &GrowableKind{Count: 2} }})
	RegisterKindType("FakeBool", &KindType{New: func() Kind { return new(FakeBoolKind) }})
}

// FakeBoolKind has a single bool input.
type FakeBoolKind struct{}

func (f *FakeBoolKind) TypeKey() string                         { return "FakeBool" }
func (f *FakeBoolKind) Clone() Kind                             { return new(FakeBoolKind) }
func (f *FakeBoolKind) Init(doc *Document, params Params) error { return nil }
func (f *FakeBoolKind) Pins() []*pin.Definition {
	return []*pin.Definition{{Name: "condition", Direction: pin.Input, Type: pin.TypeBool}}
}

// FakeKind exposes one int input and one int output, and fails Init when
// told to.
type FakeKind struct{}

func (f *FakeKind) TypeKey() string { return "Fake" }
func (f *FakeKind) Clone() Kind     { return new(FakeKind) }

func (f *FakeKind) Init(doc *Document, params Params) error {
	if params.BoolOr("fail", false) {
		return errors.InvalidParams("told to fail")
	}
	return nil
}

func (f *FakeKind) Pins() []*pin.Definition {
	return []*pin.Definition{
		{Name: "input", Direction: pin.Input, Type: pin.TypeInt},
		{Name: "output", Direction: pin.Output, Type: pin.TypeInt},
	}
}

// GrowableKind has a mutable count of int outputs with a floor of one.
type GrowableKind struct {
	Count int
}

func (g *GrowableKind) TypeKey() string { return "Growable" }
func (g *GrowableKind) Clone() Kind     { g0 := *g; return &g0 }

func (g *GrowableKind) Init(doc *Document, params Params) error {
	g.Count = params.IntOr("count", 2)
	return nil
}

func (g *GrowableKind) Pins() []*pin.Definition {
	defs := []*pin.Definition{{Name: "input", Direction: pin.Input, Type: pin.TypeInt}}
	for i := 0; i < g.Count; i++ {
		defs = append(defs, &pin.Definition{Name: fmt.Sprintf("out_%d", i), Direction: pin.Output, Type: pin.TypeInt})
	}
	return defs
}

func (g *GrowableKind) AddPin() string {
	g.Count++
	return fmt.Sprintf("out_%d", g.Count-1)
}

func (g *GrowableKind) RemovePin() (string, error) {
	if g.Count <= g.MinPins() {
		return "", errors.InvalidParams("at minimum")
	}
	g.Count--
	return fmt.Sprintf("out_%d", g.Count), nil
}

func (g *GrowableKind) MinPins() int { return 1 }

func TestCreateNode(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph

	n, err := g.CreateNode(d, "Fake", nil)
	if err != nil {
		t.Fatalf("CreateNode(Fake) = error %v", err)
	}
	if n.ID == "" {
		t.Error("CreateNode(Fake): node has empty id")
	}
	if got, want := len(n.Pins), 2; got != want {
		t.Errorf("len(n.Pins) = %d, want %d", got, want)
	}
	got, err := g.Node(n.ID)
	if err != nil {
		t.Fatalf("g.Node(%q) = error %v", n.ID, err)
	}
	if got != n {
		t.Errorf("g.Node(%q) = %v, want %v", n.ID, got, n)
	}
	if !d.Dirty() {
		t.Error("d.Dirty() = false after CreateNode, want true")
	}

	// The tag resolves case-insensitively.
	if _, err := g.CreateNode(d, "fAkE", nil); err != nil {
		t.Errorf("CreateNode(fAkE) = error %v", err)
	}
}

func TestCreateNodeAllOrNothing(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph

	tests := []struct {
		name    string
		typeTag string
		params  Params
		code    errors.Code
	}{
		{"unknown type", "NoSuchKind", nil, errors.CodeUnknownNodeType},
		{"failing constructor", "Fake", Params{"fail": true}, errors.CodeInvalidParams},
	}
	for _, test := range tests {
		before := len(g.Nodes)
		if _, err := g.CreateNode(d, test.typeTag, test.params); errors.CodeOf(err) != test.code {
			t.Errorf("%s: CreateNode = error %v, want code %s", test.name, err, test.code)
		}
		if got := len(g.Nodes); got != before {
			t.Errorf("%s: node count changed %d -> %d", test.name, before, got)
		}
	}
}

func TestCreateNodePosition(t *testing.T) {
	d := NewDocument("bp")
	n, err := d.EventGraph.CreateNode(d, "Fake", Params{"pos_x": 100.0, "pos_y": -25.0})
	if err != nil {
		t.Fatalf("CreateNode = error %v", err)
	}
	if n.X != 100 || n.Y != -25 {
		t.Errorf("node at (%v, %v), want (100, -25)", n.X, n.Y)
	}
}

func TestConnect(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	src, _ := g.CreateNode(d, "Fake", nil)
	dst, _ := g.CreateNode(d, "Fake", nil)

	tests := []struct {
		name            string
		srcNode, srcPin string
		dstNode, dstPin string
		code            errors.Code
	}{
		{"ok", src.ID, "output", dst.ID, "input", ""},
		{"source node missing", "nope", "output", dst.ID, "input", errors.CodeNodeNotFound},
		{"target node missing", src.ID, "output", "nope", "input", errors.CodeNodeNotFound},
		{"source pin missing", src.ID, "nope", dst.ID, "input", errors.CodePinNotFound},
		{"target pin missing", src.ID, "output", dst.ID, "nope", errors.CodePinNotFound},
		// Directions are enforced: "input" is not an output pin.
		{"wrong direction", src.ID, "input", dst.ID, "input", errors.CodePinNotFound},
		// Fan-out is legal: a second link from the same output.
		{"fan-out", src.ID, "output", dst.ID, "input", ""},
		// Pin names match case-insensitively.
		{"case-insensitive pins", src.ID, "OUTPUT", dst.ID, "Input", ""},
	}
	for _, test := range tests {
		_, err := g.Connect(test.srcNode, test.srcPin, test.dstNode, test.dstPin)
		if got := errors.CodeOf(err); got != test.code {
			t.Errorf("%s: Connect = error %v, want code %q", test.name, err, test.code)
		}
	}
	if got, want := len(g.Links), 3; got != want {
		t.Errorf("len(g.Links) = %d, want %d", got, want)
	}
}

func TestConnectIncompatible(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	src, _ := g.CreateNode(d, "Fake", nil)
	dst, _ := g.CreateNode(d, "FakeBool", nil)

	_, err := g.Connect(src.ID, "output", dst.ID, "condition")
	if got, want := errors.CodeOf(err), errors.CodeIncompatiblePins; got != want {
		t.Errorf("Connect(int -> bool) = error %v, want code %s", err, want)
	}
	if len(g.Links) != 0 {
		t.Errorf("len(g.Links) = %d, want 0", len(g.Links))
	}
}

func TestDisconnect(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	src, _ := g.CreateNode(d, "Fake", nil)
	dst, _ := g.CreateNode(d, "Fake", nil)
	if _, err := g.Connect(src.ID, "output", dst.ID, "input"); err != nil {
		t.Fatalf("Connect = error %v", err)
	}

	if err := g.Disconnect(src.ID, "output", dst.ID, "input"); err != nil {
		t.Errorf("Disconnect = error %v", err)
	}
	if len(g.Links) != 0 {
		t.Errorf("len(g.Links) = %d, want 0", len(g.Links))
	}
	// The second disconnect is an explicit error, not a no-op.
	err := g.Disconnect(src.ID, "output", dst.ID, "input")
	if got, want := errors.CodeOf(err), errors.CodeLinkNotFound; got != want {
		t.Errorf("second Disconnect = error %v, want code %s", err, want)
	}
}

func TestDeleteNodeSeversLinks(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	a, _ := g.CreateNode(d, "Fake", nil)
	b, _ := g.CreateNode(d, "Fake", nil)
	c, _ := g.CreateNode(d, "Fake", nil)
	g.Connect(a.ID, "output", b.ID, "input")
	g.Connect(b.ID, "output", c.ID, "input")
	g.Connect(a.ID, "output", c.ID, "input")

	g.DeleteNode(b)

	if _, err := g.Node(b.ID); errors.CodeOf(err) != errors.CodeNodeNotFound {
		t.Errorf("g.Node(deleted) = error %v, want NODE_NOT_FOUND", err)
	}
	if got, want := len(g.Links), 1; got != want {
		t.Errorf("len(g.Links) = %d, want %d", got, want)
	}
	l := g.Links[0]
	if l.Source.Node != a.ID || l.Target.Node != c.ID {
		t.Errorf("surviving link %v -> %v, want %s -> %s", l.Source, l.Target, a.ID, c.ID)
	}
}

func TestDuplicateNode(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	n, err := g.CreateNode(d, "Growable", Params{"count": 2.0})
	if err != nil {
		t.Fatalf("CreateNode(Growable) = error %v", err)
	}
	n.Comment = "original"
	n.Pins[0].Default = "42"
	sink, _ := g.CreateNode(d, "Fake", nil)
	g.Connect(n.ID, "out_0", sink.ID, "input")

	dup := g.DuplicateNode(d, n)
	if dup.ID == n.ID || dup.ID == "" {
		t.Fatalf("dup.ID = %q, want fresh non-empty id", dup.ID)
	}
	if got, want := dup.Comment, "original"; got != want {
		t.Errorf("dup.Comment = %q, want %q", got, want)
	}
	if got, want := dup.Pins[0].Default, "42"; got != want {
		t.Errorf("dup pin default = %q, want %q", got, want)
	}
	// Links do not carry over.
	if got := g.LinksAt(dup.ID); len(got) != 0 {
		t.Errorf("LinksAt(dup) = %v, want none", got)
	}
	// The cloned kind is independent: growing the copy leaves the
	// original's pin set alone.
	if _, err := g.AddNodePin(dup); err != nil {
		t.Fatalf("AddNodePin(dup) = error %v", err)
	}
	if got, want := len(dup.Pins), 4; got != want {
		t.Errorf("len(dup.Pins) = %d, want %d", got, want)
	}
	if got, want := len(n.Pins), 3; got != want {
		t.Errorf("len(n.Pins) = %d, want %d", got, want)
	}
}

func TestAddRemoveNodePin(t *testing.T) {
	d := NewDocument("bp")
	g := d.EventGraph
	n, err := g.CreateNode(d, "Growable", Params{"count": 2.0})
	if err != nil {
		t.Fatalf("CreateNode(Growable) = error %v", err)
	}
	sink, _ := g.CreateNode(d, "Fake", nil)

	name, err := g.AddNodePin(n)
	if err != nil {
		t.Fatalf("AddNodePin = error %v", err)
	}
	if name != "out_2" {
		t.Errorf("AddNodePin = %q, want out_2", name)
	}
	if n.FindPin("out_2", pin.Output) == nil {
		t.Error("added pin not present on node")
	}

	// Link to the newest pin, then remove it: the link dies with the pin.
	if _, err := g.Connect(n.ID, "out_2", sink.ID, "input"); err != nil {
		t.Fatalf("Connect = error %v", err)
	}
	if name, err := g.RemoveNodePin(n); err != nil || name != "out_2" {
		t.Fatalf("RemoveNodePin = %q, %v; want out_2, nil", name, err)
	}
	if len(g.Links) != 0 {
		t.Errorf("len(g.Links) = %d, want 0", len(g.Links))
	}

	// Shrink to the floor, then one more: fails, pin set unchanged.
	if _, err := g.RemoveNodePin(n); err != nil {
		t.Fatalf("RemoveNodePin = error %v", err)
	}
	before := len(n.Pins)
	_, err = g.RemoveNodePin(n)
	if got, want := errors.CodeOf(err), errors.CodeInvalidParams; got != want {
		t.Errorf("RemoveNodePin at floor = error %v, want code %s", err, want)
	}
	if got := len(n.Pins); got != before {
		t.Errorf("pin count changed %d -> %d at floor", before, got)
	}

	// Fixed-shape kinds don't do pin-count changes.
	_, err = g.AddNodePin(sink)
	if got, want := errors.CodeOf(err), errors.CodeInvalidParams; got != want {
		t.Errorf("AddNodePin(Fake) = error %v, want code %s", err, want)
	}
}
