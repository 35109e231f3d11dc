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
	"github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model/pin"
)

// Variable is a named, typed, document-scoped storage slot. Default holds a
// type-appropriate literal in string form.
type Variable struct {
	Name     string
	Type     pin.Type
	Default  string
	Public   bool
	Tooltip  string
	Category string
}

// CreateVariable adds a variable to the document. The name must be unused.
func (d *Document) CreateVariable(v *Variable) error {
	if _, err := d.Variable(v.Name); err == nil {
		return errors.AlreadyExists("variable", v.Name)
	}
	if v.Category == "" {
		v.Category = "Default"
	}
	d.Variables[v.Name] = v
	d.MarkDirty()
	return nil
}

// DeleteVariable removes a variable by name. VariableGet/VariableSet nodes
// referencing it by name are left alone; the dangling reference surfaces as
// a compile diagnostic.
func (d *Document) DeleteVariable(name string) error {
	v, err := d.Variable(name)
	if err != nil {
		return err
	}
	delete(d.Variables, v.Name)
	d.MarkDirty()
	return nil
}
