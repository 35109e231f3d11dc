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
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// roundTrip sends one request over the pipe and decodes the response.
func roundTrip(t *testing.T, conn net.Conn, req string) map[string]any {
	t.Helper()
	if err := WriteMessage(conn, []byte(req)); err != nil {
		t.Fatalf("WriteMessage = error %v", err)
	}
	raw, err := ReadMessage(conn, 5*time.Second)
	if err != nil {
		t.Fatalf("ReadMessage = error %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	return resp
}

func TestServeConn(t *testing.T) {
	s := New("", NewDocumentStore(), zerolog.Nop())
	s.ReceiveTimeout = 5 * time.Second
	client, srv := net.Pipe()
	defer client.Close()
	go s.serveConn(srv)

	resp := roundTrip(t, client, `{"type": "create_blueprint", "params": {"name": "BP"}}`)
	if ok, _ := resp["success"].(bool); !ok {
		t.Fatalf("create_blueprint response = %v, want success", resp)
	}

	// A failed command produces a failure response; the connection stays up.
	resp = roundTrip(t, client, `{"type": "summon_gremlins"}`)
	if ok, _ := resp["success"].(bool); ok {
		t.Fatalf("summon_gremlins response = %v, want failure", resp)
	}
	if got, want := resp["error_code"], "UNKNOWN_COMMAND"; got != want {
		t.Errorf("error_code = %v, want %v", got, want)
	}

	resp = roundTrip(t, client, `{"type": "read_blueprint_content", "params": {"blueprint_name": "BP"}}`)
	if ok, _ := resp["success"].(bool); !ok {
		t.Fatalf("read_blueprint_content response = %v, want success", resp)
	}
	if got, want := resp["blueprint_name"], "BP"; got != want {
		t.Errorf("blueprint_name = %v, want %v", got, want)
	}
}
