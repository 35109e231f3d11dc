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
	"strings"
	"sync"

	"github.com/blueforge/blueforge/errors"
	"github.com/blueforge/blueforge/model"
)

// DocumentStore holds every open blueprint document. The mutex guards all
// documents: the dispatcher holds it for the duration of one command, so
// concurrent connections interleave whole commands, never partial
// mutations.
type DocumentStore struct {
	mu   sync.Mutex
	docs map[string]*model.Document
}

// NewDocumentStore returns an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*model.Document)}
}

// Lock takes the store-wide command lock.
func (s *DocumentStore) Lock() { s.mu.Lock() }

// Unlock releases the store-wide command lock.
func (s *DocumentStore) Unlock() { s.mu.Unlock() }

// Create adds a new document. The caller must hold the lock.
func (s *DocumentStore) Create(name string) (*model.Document, error) {
	if _, err := s.Lookup(name); err == nil {
		return nil, errors.AlreadyExists("blueprint", name)
	}
	d := model.NewDocument(name)
	s.docs[name] = d
	return d, nil
}

// Lookup resolves a document by name, case-insensitively. The caller must
// hold the lock.
func (s *DocumentStore) Lookup(name string) (*model.Document, error) {
	if d := s.docs[name]; d != nil {
		return d, nil
	}
	for n, d := range s.docs {
		if strings.EqualFold(n, name) {
			return d, nil
		}
	}
	return nil, errors.NotFound("blueprint", name)
}

// Names returns the open document names. The caller must hold the lock.
func (s *DocumentStore) Names() []string {
	names := make([]string, 0, len(s.docs))
	for n := range s.docs {
		names = append(names, n)
	}
	return names
}
