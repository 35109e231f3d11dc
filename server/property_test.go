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

package server

import (
	"testing"

	"github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model"
	"github.com/blueforge/blueforge/model/kinds"
	"github.com/blueforge/blueforge/model/pin"
)

func TestSetNodePropertyChain(t *testing.T) {
	d := model.NewDocument("bp")
	d.CreateVariable(&model.Variable{Name: "Health", Type: pin.TypeReal})
	d.CreateVariable(&model.Variable{Name: "Name", Type: pin.TypeString})
	g := d.EventGraph

	pr, err := g.CreateNode(d, "Print", nil)
	if err != nil {
		t.Fatalf("CreateNode(Print) = error %v", err)
	}
	get, err := g.CreateNode(d, "VariableGet", model.Params{"variable_name": "Health"})
	if err != nil {
		t.Fatalf("CreateNode(VariableGet) = error %v", err)
	}

	tests := []struct {
		name     string
		node     *model.Node
		property string
		value    any
		code     errors.Code
	}{
		{"print message", pr, "message", "Look out", ""},
		{"print duration", pr, "duration", 5.0, ""},
		{"print message wrong type", pr, "message", 7.0, errors.CodeUnsupportedProperty},
		{"print duration wrong type", pr, "duration", "long", errors.CodeUnsupportedProperty},
		{"retarget getter", get, "variable_name", "Name", ""},
		{"retarget to unknown", get, "variable_name", "Nope", errors.CodeNotFound},
		{"generic position", pr, "pos_x", 40.0, ""},
		{"generic position wrong type", pr, "pos_y", "up", errors.CodeUnsupportedProperty},
		{"generic comment", get, "comment", "reads the name", ""},
		{"unclaimed property", pr, "font_size", 12.0, errors.CodeUnsupportedProperty},
	}
	for _, test := range tests {
		err := SetNodeProperty(d, g, test.node, test.property, test.value)
		if got := errors.CodeOf(err); got != test.code {
			t.Errorf("%s: SetNodeProperty = error %v, want code %q", test.name, err, test.code)
		}
	}

	p := pr.Kind.(*kinds.Print)
	if p.Message != "Look out" || p.Duration != 5 {
		t.Errorf("print kind = %+v after edits", p)
	}
	if pr.X != 40 {
		t.Errorf("pr.X = %v, want 40", pr.X)
	}
	if get.Comment != "reads the name" {
		t.Errorf("get.Comment = %q", get.Comment)
	}
}

func TestRetargetSeversIncompatibleLinks(t *testing.T) {
	d := model.NewDocument("bp")
	d.CreateVariable(&model.Variable{Name: "Health", Type: pin.TypeReal})
	d.CreateVariable(&model.Variable{Name: "Name", Type: pin.TypeString})
	g := d.EventGraph

	get, _ := g.CreateNode(d, "VariableGet", model.Params{"variable_name": "Health"})
	pr, _ := g.CreateNode(d, "Print", nil)
	cmp, _ := g.CreateNode(d, "Comparison", model.Params{"operand_type": "float"})

	if _, err := g.Connect(get.ID, "value", cmp.ID, "a"); err != nil {
		t.Fatalf("Connect = error %v", err)
	}
	if _, err := g.Connect(get.ID, "value", pr.ID, "in_string"); err == nil {
		t.Fatal("Connect(real -> string) should fail before the retarget")
	}

	// Retargeting to a string variable changes the value pin's type: the
	// link into the float comparison dies.
	if err := SetNodeProperty(d, g, get, "variable_name", "Name"); err != nil {
		t.Fatalf("SetNodeProperty = error %v", err)
	}
	if got, want := len(g.Links), 0; got != want {
		t.Errorf("len(g.Links) = %d, want %d", got, want)
	}
	if _, err := g.Connect(get.ID, "value", pr.ID, "in_string"); err != nil {
		t.Errorf("Connect(string -> string) = error %v after retarget", err)
	}
}
