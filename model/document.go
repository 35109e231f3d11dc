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

// Package model holds the in-memory representation of blueprint documents:
// graphs of nodes with pins, links between pins, document variables, and
// function signatures, with invariant-preserving mutation operations.
package model

import (
	"strings"

	"github.com/blueforge/blueforge/errors"
)

// Document is a blueprint: one event graph, any number of function graphs,
// and a set of named variables. Variables are referenced from nodes by name
// (a soft reference); deleting or renaming a variable does not cascade to
// nodes that mention it.
type Document struct {
	Name       string
	EventGraph *Graph
	Functions  map[string]*Function // name -> function
	Variables  map[string]*Variable // name -> variable

	dirty bool
}

// NewDocument returns a new document with an empty event graph.
func NewDocument(name string) *Document {
	return &Document{
		Name:       name,
		EventGraph: NewGraph("EventGraph"),
		Functions:  make(map[string]*Function),
		Variables:  make(map[string]*Variable),
	}
}

// Graph resolves a graph by function name. The empty string selects the
// event graph.
func (d *Document) Graph(functionName string) (*Graph, error) {
	if functionName == "" {
		return d.EventGraph, nil
	}
	f, err := d.Function(functionName)
	if err != nil {
		return nil, err
	}
	return f.Graph, nil
}

// Function looks a function up by name, case-insensitively.
func (d *Document) Function(name string) (*Function, error) {
	if f := d.Functions[name]; f != nil {
		return f, nil
	}
	for n, f := range d.Functions {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return nil, errors.NotFound("function", name)
}

// Variable looks a variable up by name, case-insensitively.
func (d *Document) Variable(name string) (*Variable, error) {
	if v := d.Variables[name]; v != nil {
		return v, nil
	}
	for n, v := range d.Variables {
		if strings.EqualFold(n, name) {
			return v, nil
		}
	}
	return nil, errors.NotFound("variable", name)
}

// Graphs returns every graph in the document: the event graph first, then
// function graphs in no particular order.
func (d *Document) Graphs() []*Graph {
	gs := []*Graph{d.EventGraph}
	for _, f := range d.Functions {
		gs = append(gs, f.Graph)
	}
	return gs
}

// MarkDirty records that the document has unsaved structural changes.
func (d *Document) MarkDirty() { d.dirty = true }

// ClearDirty is called once derived state has been refreshed.
func (d *Document) ClearDirty() { d.dirty = false }

// Dirty reports whether the document has changed since the last compile.
func (d *Document) Dirty() bool { return d.dirty }
