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

package kinds

import (
	"strings"

	bferrors "github.com/blueforge/blueforge/errors"
)

// enums maps enumeration names to their ordered value names. Keys are
// stored lowercase.
var enums = map[string][]string{}

// RegisterEnum makes an enumeration resolvable by SwitchEnum and
// ByteToEnum nodes.
func RegisterEnum(name string, values []string) {
	enums[strings.ToLower(name)] = values
}

// LookupEnum resolves an enumeration by name, case-insensitively.
func LookupEnum(name string) ([]string, error) {
	if vs, ok := enums[strings.ToLower(name)]; ok {
		return vs, nil
	}
	return nil, bferrors.NotFound("enum", name)
}

func init() {
	RegisterEnum("ECollisionResponse", []string{"Ignore", "Overlap", "Block"})
	RegisterEnum("EAttachmentRule", []string{"KeepRelative", "KeepWorld", "SnapToTarget"})
	RegisterEnum("EEndPlayReason", []string{"Destroyed", "LevelTransition", "EndPlayInEditor", "RemovedFromWorld", "Quit"})
}
