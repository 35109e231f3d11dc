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
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/blueforge/blueforge/api"
	"github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model"
	"github.com/blueforge/blueforge/model/pin"
)

// Dispatcher routes decoded commands to their handlers. All handlers run
// under the store lock, so each command observes and produces a
// consistent document.
type Dispatcher struct {
	store *DocumentStore
	log   zerolog.Logger
}

// NewDispatcher returns a dispatcher over the given store.
func NewDispatcher(store *DocumentStore, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{store: store, log: log}
}

type handlerFunc func(d *Dispatcher, params json.RawMessage) (map[string]any, error)

var handlers = map[string]handlerFunc{
	"create_blueprint":               (*Dispatcher).createBlueprint,
	"add_blueprint_node":             (*Dispatcher).addNode,
	"add_event_node":                 (*Dispatcher).addEventNode,
	"connect_nodes":                  (*Dispatcher).connectNodes,
	"disconnect_nodes":               (*Dispatcher).disconnectNodes,
	"delete_node":                    (*Dispatcher).deleteNode,
	"duplicate_node":                 (*Dispatcher).duplicateNode,
	"set_node_property":              (*Dispatcher).setNodeProperty,
	"add_node_pin":                   (*Dispatcher).addNodePin,
	"remove_node_pin":                (*Dispatcher).removeNodePin,
	"create_variable":                (*Dispatcher).createVariable,
	"delete_variable":                (*Dispatcher).deleteVariable,
	"get_blueprint_variable_details": (*Dispatcher).variableDetails,
	"create_function":                (*Dispatcher).createFunction,
	"delete_function":                (*Dispatcher).deleteFunction,
	"rename_function":                (*Dispatcher).renameFunction,
	"add_function_input":             (*Dispatcher).addFunctionInput,
	"add_function_output":            (*Dispatcher).addFunctionOutput,
	"get_blueprint_function_details": (*Dispatcher).functionDetails,
	"read_blueprint_content":         (*Dispatcher).readContent,
	"analyze_blueprint_graph":        (*Dispatcher).analyzeGraph,
	"compile_blueprint":              (*Dispatcher).compileBlueprint,
}

// Dispatch decodes one raw request and executes it, always producing a
// response. Command failures become failure responses; the connection is
// none the wiser.
func (d *Dispatcher) Dispatch(raw []byte) api.Response {
	cmd, err := api.ParseCommand(raw)
	if err != nil {
		return api.Fail(err)
	}
	h := handlers[cmd.Type]
	if h == nil {
		return api.Fail(errors.UnknownCommand(cmd.Type))
	}
	d.store.Lock()
	fields, err := h(d, cmd.Params)
	d.store.Unlock()
	if err != nil {
		d.log.Warn().Str("command", cmd.Type).Err(err).Msg("Command failed")
		return api.Fail(err)
	}
	return api.OK(fields)
}

// graphFor resolves blueprint and graph names to the model objects.
func (d *Dispatcher) graphFor(blueprint, function string) (*model.Document, *model.Graph, error) {
	doc, err := d.store.Lookup(blueprint)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Graph(function)
	if err != nil {
		return nil, nil, err
	}
	return doc, g, nil
}

func (d *Dispatcher) createBlueprint(params json.RawMessage) (map[string]any, error) {
	var r api.CreateBlueprintRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Create(r.Name)
	if err != nil {
		return nil, err
	}
	return map[string]any{"blueprint_name": doc.Name}, nil
}

func (d *Dispatcher) addNode(params json.RawMessage) (map[string]any, error) {
	var r api.AddNodeRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	n, err := g.CreateNode(doc, r.NodeType, r.NodeParams)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"node_id":   n.ID,
		"node_type": n.Kind.TypeKey(),
		"pos_x":     n.X,
		"pos_y":     n.Y,
	}, nil
}

func (d *Dispatcher) addEventNode(params json.RawMessage) (map[string]any, error) {
	var r api.AddEventNodeRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	np := model.Params{}
	for k, v := range r.NodeParams {
		np[k] = v
	}
	np["event_type"] = r.EventName
	n, err := doc.EventGraph.CreateNode(doc, "Event", np)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"node_id":   n.ID,
		"node_type": n.Kind.TypeKey(),
		"pos_x":     n.X,
		"pos_y":     n.Y,
	}, nil
}

func (d *Dispatcher) connectNodes(params json.RawMessage) (map[string]any, error) {
	var r api.LinkRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	l, err := g.Connect(r.SourceNodeID, r.SourcePin, r.TargetNodeID, r.TargetPin)
	if err != nil {
		return nil, err
	}
	doc.MarkDirty()
	return map[string]any{
		"connection": api.LinkSummary{
			SourceNode: l.Source.Node,
			SourcePin:  l.Source.Pin,
			TargetNode: l.Target.Node,
			TargetPin:  l.Target.Pin,
			Type:       l.Type.String(),
		},
	}, nil
}

func (d *Dispatcher) disconnectNodes(params json.RawMessage) (map[string]any, error) {
	var r api.LinkRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	if err := g.Disconnect(r.SourceNodeID, r.SourcePin, r.TargetNodeID, r.TargetPin); err != nil {
		return nil, err
	}
	doc.MarkDirty()
	return map[string]any{}, nil
}

func (d *Dispatcher) deleteNode(params json.RawMessage) (map[string]any, error) {
	var r api.NodeRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	n, err := g.Node(r.NodeID)
	if err != nil {
		return nil, err
	}
	severed := len(g.LinksAt(n.ID))
	g.DeleteNode(n)
	doc.MarkDirty()
	return map[string]any{"deleted_node_id": n.ID, "severed_links": severed}, nil
}

func (d *Dispatcher) duplicateNode(params json.RawMessage) (map[string]any, error) {
	var r api.NodeRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	n, err := g.Node(r.NodeID)
	if err != nil {
		return nil, err
	}
	// Entry and result nodes are one-per-graph.
	switch n.Kind.(type) {
	case *model.FunctionEntry, *model.FunctionResult:
		return nil, errors.InvalidParams("node type %s cannot be duplicated", n.Kind.TypeKey())
	}
	dup := g.DuplicateNode(doc, n)
	return map[string]any{
		"node_id":   dup.ID,
		"node_type": dup.Kind.TypeKey(),
		"pos_x":     dup.X,
		"pos_y":     dup.Y,
	}, nil
}

func (d *Dispatcher) setNodeProperty(params json.RawMessage) (map[string]any, error) {
	var r api.SetPropertyRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	if r.PropertyValue == nil {
		return nil, errors.MissingParameter("property_value")
	}
	doc, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	n, err := g.Node(r.NodeID)
	if err != nil {
		return nil, err
	}
	if err := SetNodeProperty(doc, g, n, r.PropertyName, r.PropertyValue); err != nil {
		return nil, err
	}
	return map[string]any{"updated_property": r.PropertyName}, nil
}

func (d *Dispatcher) addNodePin(params json.RawMessage) (map[string]any, error) {
	var r api.NodeRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	n, err := g.Node(r.NodeID)
	if err != nil {
		return nil, err
	}
	name, err := g.AddNodePin(n)
	if err != nil {
		return nil, err
	}
	doc.MarkDirty()
	return map[string]any{"pin_name": name, "pin_count": len(n.Pins)}, nil
}

func (d *Dispatcher) removeNodePin(params json.RawMessage) (map[string]any, error) {
	var r api.NodeRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	n, err := g.Node(r.NodeID)
	if err != nil {
		return nil, err
	}
	name, err := g.RemoveNodePin(n)
	if err != nil {
		return nil, err
	}
	doc.MarkDirty()
	return map[string]any{"pin_name": name, "pin_count": len(n.Pins)}, nil
}

func (d *Dispatcher) createVariable(params json.RawMessage) (map[string]any, error) {
	var r api.CreateVariableRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	v := &model.Variable{
		Name:     r.VariableName,
		Type:     pin.ParseType(r.VariableType),
		Default:  r.DefaultValue,
		Public:   r.IsPublic,
		Tooltip:  r.Tooltip,
		Category: r.Category,
	}
	if err := doc.CreateVariable(v); err != nil {
		return nil, err
	}
	return map[string]any{"variable": api.SummarizeVariable(v)}, nil
}

func (d *Dispatcher) deleteVariable(params json.RawMessage) (map[string]any, error) {
	var r api.VariableRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	if err := doc.DeleteVariable(r.VariableName); err != nil {
		return nil, err
	}
	return map[string]any{"deleted_variable": r.VariableName}, nil
}

func (d *Dispatcher) variableDetails(params json.RawMessage) (map[string]any, error) {
	var r api.VariableDetailsRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	if r.VariableName != "" {
		v, err := doc.Variable(r.VariableName)
		if err != nil {
			return nil, err
		}
		return map[string]any{"variable": api.SummarizeVariable(v)}, nil
	}
	vars := make([]api.VariableSummary, 0, len(doc.Variables))
	for _, v := range doc.Variables {
		vars = append(vars, api.SummarizeVariable(v))
	}
	return map[string]any{"variables": vars}, nil
}

func (d *Dispatcher) createFunction(params json.RawMessage) (map[string]any, error) {
	var r api.CreateFunctionRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	f, err := doc.CreateFunction(r.FunctionName, r.ReturnType)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"function":       api.SummarizeFunction(f),
		"entry_node_id":  f.EntryID,
		"result_node_id": f.ResultID,
	}, nil
}

func (d *Dispatcher) deleteFunction(params json.RawMessage) (map[string]any, error) {
	var r api.FunctionRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	if err := doc.DeleteFunction(r.FunctionName); err != nil {
		return nil, err
	}
	return map[string]any{"deleted_function": r.FunctionName}, nil
}

func (d *Dispatcher) renameFunction(params json.RawMessage) (map[string]any, error) {
	var r api.RenameFunctionRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	if err := doc.RenameFunction(r.OldName, r.NewName); err != nil {
		return nil, err
	}
	return map[string]any{"function_name": r.NewName}, nil
}

func (d *Dispatcher) addFunctionInput(params json.RawMessage) (map[string]any, error) {
	return d.addFunctionParam(params, true)
}

func (d *Dispatcher) addFunctionOutput(params json.RawMessage) (map[string]any, error) {
	return d.addFunctionParam(params, false)
}

func (d *Dispatcher) addFunctionParam(params json.RawMessage, input bool) (map[string]any, error) {
	var r api.FunctionParamRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	f, err := doc.Function(r.FunctionName)
	if err != nil {
		return nil, err
	}
	add := f.AddOutput
	if input {
		add = f.AddInput
	}
	p, err := add(r.ParamName, r.ParamType)
	if err != nil {
		return nil, err
	}
	doc.MarkDirty()
	return map[string]any{
		"function": api.SummarizeFunction(f),
		"param":    api.ParamSummary{Name: p.Name, Type: p.Type.String()},
	}, nil
}

func (d *Dispatcher) functionDetails(params json.RawMessage) (map[string]any, error) {
	var r api.FunctionDetailsRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	if r.FunctionName != "" {
		f, err := doc.Function(r.FunctionName)
		if err != nil {
			return nil, err
		}
		return map[string]any{"function": api.SummarizeFunction(f)}, nil
	}
	fns := make([]api.FunctionSummary, 0, len(doc.Functions))
	for _, f := range doc.Functions {
		fns = append(fns, api.SummarizeFunction(f))
	}
	return map[string]any{"functions": fns}, nil
}

func (d *Dispatcher) readContent(params json.RawMessage) (map[string]any, error) {
	var r api.BlueprintRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	graphs := make([]api.GraphSummary, 0, len(doc.Functions)+1)
	for _, g := range doc.Graphs() {
		graphs = append(graphs, api.SummarizeGraph(g))
	}
	vars := make([]api.VariableSummary, 0, len(doc.Variables))
	for _, v := range doc.Variables {
		vars = append(vars, api.SummarizeVariable(v))
	}
	fns := make([]api.FunctionSummary, 0, len(doc.Functions))
	for _, f := range doc.Functions {
		fns = append(fns, api.SummarizeFunction(f))
	}
	return map[string]any{
		"blueprint_name": doc.Name,
		"dirty":          doc.Dirty(),
		"graphs":         graphs,
		"variables":      vars,
		"functions":      fns,
	}, nil
}

func (d *Dispatcher) analyzeGraph(params json.RawMessage) (map[string]any, error) {
	var r api.GraphRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	_, g, err := d.graphFor(r.Blueprint, r.FunctionName)
	if err != nil {
		return nil, err
	}
	s := api.SummarizeGraph(g)
	return map[string]any{
		"graph":      s,
		"node_count": len(s.Nodes),
		"link_count": len(s.Links),
	}, nil
}

func (d *Dispatcher) compileBlueprint(params json.RawMessage) (map[string]any, error) {
	var r api.BlueprintRequest
	if err := api.DecodeParams(params, &r); err != nil {
		return nil, err
	}
	doc, err := d.store.Lookup(r.Blueprint)
	if err != nil {
		return nil, err
	}
	diags := model.Compile(doc)
	errs, warns := 0, 0
	for _, diag := range diags {
		if diag.Severity == model.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	return map[string]any{
		"compiled":    errs == 0,
		"diagnostics": diags,
		"errors":      errs,
		"warnings":    warns,
	}, nil
}
