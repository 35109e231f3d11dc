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

// Package pin has types for describing pins (connection points).
package pin

import "strings"

// Direction describes which way information flows in a pin.
type Direction string

// The various directions.
const (
	Input  Direction = "in"
	Output Direction = "out"
)

// Category is the type category of a pin.
type Category string

// The pin type categories. Exec pins carry control flow; the rest carry
// data. Wildcard pins (reroute knots) match any category.
const (
	Exec     Category = "exec"
	Bool     Category = "bool"
	Int      Category = "int"
	Real     Category = "real"
	String   Category = "string"
	Struct   Category = "struct"
	Object   Category = "object"
	Wildcard Category = "wildcard"
)

// Type is a pin type: a category plus, for struct and object pins, the name
// of the struct or class.
type Type struct {
	Category Category `json:"category"`
	Sub      string   `json:"sub,omitempty"`
}

// Common data types.
var (
	TypeExec   = Type{Category: Exec}
	TypeBool   = Type{Category: Bool}
	TypeInt    = Type{Category: Int}
	TypeReal   = Type{Category: Real}
	TypeString = Type{Category: String}
	TypeWild   = Type{Category: Wildcard}
)

// StructType returns a struct-by-name type.
func StructType(name string) Type { return Type{Category: Struct, Sub: name} }

// ObjectType returns an object-by-class type.
func ObjectType(class string) Type { return Type{Category: Object, Sub: class} }

// String renders the type as "category" or "category:sub".
func (t Type) String() string {
	if t.Sub == "" {
		return string(t.Category)
	}
	return string(t.Category) + ":" + t.Sub
}

// Compatible reports whether a link may carry values between two pins of
// these types. Wildcards match anything; otherwise categories must be equal,
// and struct/object subtypes must agree unless one side leaves the subtype
// open.
func (t Type) Compatible(u Type) bool {
	if t.Category == Wildcard || u.Category == Wildcard {
		return true
	}
	if t.Category != u.Category {
		return false
	}
	if t.Category == Struct || t.Category == Object {
		return t.Sub == "" || u.Sub == "" || t.Sub == u.Sub
	}
	return true
}

// ParseType maps a user-facing type string ("bool", "int", "float",
// "string", "vector", "rotator", "struct:Name", "object:Class") to a Type.
// Unrecognized strings default to real, matching the original editor.
func ParseType(s string) Type {
	switch strings.ToLower(s) {
	case "bool", "boolean":
		return TypeBool
	case "int", "integer":
		return TypeInt
	case "float", "real", "double":
		return TypeReal
	case "string", "text":
		return TypeString
	case "exec":
		return TypeExec
	case "vector":
		return StructType("Vector")
	case "rotator":
		return StructType("Rotator")
	case "transform":
		return StructType("Transform")
	}
	if sub, ok := strings.CutPrefix(s, "struct:"); ok {
		return StructType(sub)
	}
	if sub, ok := strings.CutPrefix(s, "object:"); ok {
		return ObjectType(sub)
	}
	return TypeReal
}

// Definition describes one pin a node kind exposes.
type Definition struct {
	Name      string    `json:"-"`
	Direction Direction `json:"dir"`
	Type      Type      `json:"type"`
	Default   string    `json:"default,omitempty"`
}
