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
	"io"
	"net"
	"time"

	"github.com/blueforge/blueforge/errors"
)

// DefaultReceiveTimeout bounds how long one message may take to arrive.
const DefaultReceiveTimeout = 30 * time.Second

// ReadMessage reads one complete JSON value from the connection, bounded
// by the timeout. TCP gives no message boundaries, so chunks accumulate
// until the buffer parses.
func ReadMessage(conn net.Conn, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, errors.Transport(err)
		}
		defer conn.SetReadDeadline(time.Time{})
	}
	return readJSON(conn)
}

func readJSON(r io.Reader) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if n > 0 && json.Valid(buf) {
			return buf, nil
		}
		if err != nil {
			if err == io.EOF && json.Valid(buf) {
				return buf, nil
			}
			return nil, errors.Transport(err)
		}
	}
}

// WriteMessage delivers the whole message, tolerating short writes.
func WriteMessage(w io.Writer, msg []byte) error {
	for len(msg) > 0 {
		n, err := w.Write(msg)
		if err != nil {
			return errors.Transport(err)
		}
		msg = msg[n:]
	}
	return nil
}
