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

package api

import (
	"encoding/json"
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model"
)

var validate = newValidator()

// newValidator builds the request validator. Violations are reported by
// json field name, which is what the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeParams unmarshals raw params into a request struct and checks its
// required fields. The first absent required field is reported as
// MISSING_PARAMETER; requests fail on the first problem found.
func DecodeParams(raw json.RawMessage, into any) error {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, into); err != nil {
			return errors.InvalidParams("malformed params: %v", err)
		}
	}
	if err := validate.Struct(into); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			if f.Tag() == "required" {
				return errors.MissingParameter(f.Field())
			}
			return errors.InvalidParams("invalid %q parameter", f.Field())
		}
		return errors.InvalidParams("invalid params: %v", err)
	}
	return nil
}

// CreateBlueprintRequest names a new blueprint document.
type CreateBlueprintRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddNodeRequest creates one node. FunctionName selects a function graph;
// absent means the event graph.
type AddNodeRequest struct {
	Blueprint    string       `json:"blueprint_name" validate:"required"`
	NodeType     string       `json:"node_type" validate:"required"`
	NodeParams   model.Params `json:"node_params"`
	FunctionName string       `json:"function_name"`
}

// AddEventNodeRequest is the event-node shorthand.
type AddEventNodeRequest struct {
	Blueprint  string       `json:"blueprint_name" validate:"required"`
	EventName  string       `json:"event_name" validate:"required"`
	NodeParams model.Params `json:"node_params"`
}

// LinkRequest names both endpoints of a link, for connect and disconnect.
type LinkRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	SourceNodeID string `json:"source_node_id" validate:"required"`
	SourcePin    string `json:"source_pin_name" validate:"required"`
	TargetNodeID string `json:"target_node_id" validate:"required"`
	TargetPin    string `json:"target_pin_name" validate:"required"`
	FunctionName string `json:"function_name"`
}

// NodeRequest names one node, for delete and pin-count commands.
type NodeRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	NodeID       string `json:"node_id" validate:"required"`
	FunctionName string `json:"function_name"`
}

// SetPropertyRequest updates one property on one node. PropertyValue is
// checked for presence by the dispatcher, since false and 0 are legal
// values.
type SetPropertyRequest struct {
	Blueprint     string `json:"blueprint_name" validate:"required"`
	NodeID        string `json:"node_id" validate:"required"`
	PropertyName  string `json:"property_name" validate:"required"`
	PropertyValue any    `json:"property_value"`
	FunctionName  string `json:"function_name"`
}

// CreateVariableRequest declares a document variable.
type CreateVariableRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	VariableName string `json:"variable_name" validate:"required"`
	VariableType string `json:"variable_type" validate:"required"`
	DefaultValue string `json:"default_value"`
	IsPublic     bool   `json:"is_public"`
	Tooltip      string `json:"tooltip"`
	Category     string `json:"category"`
}

// VariableRequest names one variable.
type VariableRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	VariableName string `json:"variable_name" validate:"required"`
}

// VariableDetailsRequest asks for one variable, or all when the name is
// absent.
type VariableDetailsRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	VariableName string `json:"variable_name"`
}

// CreateFunctionRequest declares a function graph. ReturnType may be
// empty or "void".
type CreateFunctionRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	FunctionName string `json:"function_name" validate:"required"`
	ReturnType   string `json:"return_type"`
}

// FunctionRequest names one function.
type FunctionRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	FunctionName string `json:"function_name" validate:"required"`
}

// RenameFunctionRequest renames a function. Call sites are not rewritten.
type RenameFunctionRequest struct {
	Blueprint string `json:"blueprint_name" validate:"required"`
	OldName   string `json:"old_name" validate:"required"`
	NewName   string `json:"new_name" validate:"required"`
}

// FunctionParamRequest appends one parameter to a function signature.
type FunctionParamRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	FunctionName string `json:"function_name" validate:"required"`
	ParamName    string `json:"param_name" validate:"required"`
	ParamType    string `json:"param_type" validate:"required"`
}

// FunctionDetailsRequest asks for one function, or all when the name is
// absent.
type FunctionDetailsRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	FunctionName string `json:"function_name"`
}

// BlueprintRequest names one blueprint.
type BlueprintRequest struct {
	Blueprint string `json:"blueprint_name" validate:"required"`
}

// GraphRequest names one graph within a blueprint.
type GraphRequest struct {
	Blueprint    string `json:"blueprint_name" validate:"required"`
	FunctionName string `json:"function_name"`
}
