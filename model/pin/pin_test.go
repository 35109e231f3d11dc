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

package pin

import "testing"

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b Type
		want bool
	}{
		{TypeExec, TypeExec, true},
		{TypeExec, TypeBool, false},
		{TypeBool, TypeBool, true},
		{TypeInt, TypeReal, false},
		{TypeWild, TypeExec, true},
		{TypeString, TypeWild, true},
		{StructType("Vector"), StructType("Vector"), true},
		{StructType("Vector"), StructType("Rotator"), false},
		{StructType("Vector"), StructType(""), true},
		{ObjectType("Actor"), ObjectType("Actor"), true},
		{ObjectType("Actor"), ObjectType("Pawn"), false},
		{ObjectType(""), ObjectType("Pawn"), true},
		{StructType("Vector"), ObjectType("Vector"), false},
	}
	for _, test := range tests {
		if got, want := test.a.Compatible(test.b), test.want; got != want {
			t.Errorf("%v.Compatible(%v) = %v, want %v", test.a, test.b, got, want)
		}
		// Compatibility is symmetric.
		if got, want := test.b.Compatible(test.a), test.want; got != want {
			t.Errorf("%v.Compatible(%v) = %v, want %v", test.b, test.a, got, want)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"bool", TypeBool},
		{"Boolean", TypeBool},
		{"int", TypeInt},
		{"float", TypeReal},
		{"string", TypeString},
		{"exec", TypeExec},
		{"vector", StructType("Vector")},
		{"rotator", StructType("Rotator")},
		{"transform", StructType("Transform")},
		{"struct:HitResult", StructType("HitResult")},
		{"object:Actor", ObjectType("Actor")},
		{"mystery", TypeReal},
		{"", TypeReal},
	}
	for _, test := range tests {
		if got, want := ParseType(test.in), test.want; got != want {
			t.Errorf("ParseType(%q) = %v, want %v", test.in, got, want)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		in   Type
		want string
	}{
		{TypeExec, "exec"},
		{StructType("Vector"), "struct:Vector"},
		{ObjectType("Actor"), "object:Actor"},
	}
	for _, test := range tests {
		if got, want := test.in.String(), test.want; got != want {
			t.Errorf("%#v.String() = %q, want %q", test.in, got, want)
		}
	}
}
