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
	"github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model"
	"github.com/blueforge/blueforge/model/kinds"
)

// propertyHandler tries to apply one property to one node. It returns
// false to pass the property to the next handler. Returning an error
// stops the chain.
type propertyHandler func(doc *model.Document, n *model.Node, name string, value any) (bool, error)

// propertyHandlers is the editing chain, tried in order. Kind-specific
// handlers come before the generic one.
var propertyHandlers = []propertyHandler{
	printProperty,
	variableRefProperty,
	genericProperty,
}

// SetNodeProperty runs the property chain. On success the document is
// marked dirty and the node's pins are re-derived, severing links the
// change invalidated. A property no handler claims, or a claimed property
// with a wrongly-typed value, fails with UNSUPPORTED_PROPERTY.
func SetNodeProperty(doc *model.Document, g *model.Graph, n *model.Node, name string, value any) error {
	for _, h := range propertyHandlers {
		handled, err := h(doc, n, name, value)
		if err != nil {
			return err
		}
		if !handled {
			continue
		}
		doc.MarkDirty()
		g.RefreshNodePins(n)
		return nil
	}
	return errors.UnsupportedProperty(name)
}

func printProperty(doc *model.Document, n *model.Node, name string, value any) (bool, error) {
	p, ok := n.Kind.(*kinds.Print)
	if !ok {
		return false, nil
	}
	switch name {
	case "message", "in_string":
		s, ok := value.(string)
		if !ok {
			return false, errors.UnsupportedProperty(name).WithDetail("expected", "string")
		}
		p.SetMessage(s)
		return true, nil
	case "duration":
		f, ok := value.(float64)
		if !ok {
			return false, errors.UnsupportedProperty(name).WithDetail("expected", "number")
		}
		p.SetDuration(f)
		return true, nil
	}
	return false, nil
}

func variableRefProperty(doc *model.Document, n *model.Node, name string, value any) (bool, error) {
	if name != "variable_name" {
		return false, nil
	}
	s, ok := value.(string)
	if !ok {
		return false, errors.UnsupportedProperty(name).WithDetail("expected", "string")
	}
	switch k := n.Kind.(type) {
	case *kinds.VariableGet:
		return true, k.Retarget(doc, s)
	case *kinds.VariableSet:
		return true, k.Retarget(doc, s)
	}
	return false, nil
}

func genericProperty(doc *model.Document, n *model.Node, name string, value any) (bool, error) {
	switch name {
	case "pos_x", "pos_y":
		f, ok := value.(float64)
		if !ok {
			return false, errors.UnsupportedProperty(name).WithDetail("expected", "number")
		}
		if name == "pos_x" {
			n.X = f
		} else {
			n.Y = f
		}
		return true, nil
	case "comment":
		s, ok := value.(string)
		if !ok {
			return false, errors.UnsupportedProperty(name).WithDetail("expected", "string")
		}
		n.Comment = s
		return true, nil
	}
	return false, nil
}
