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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/blueforge/blueforge/errors"
)

// chunkReader serves its payload in fixed-size chunks, like a TCP stream
// that fragments messages arbitrarily.
type chunkReader struct {
	data  []byte
	chunk int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.chunk
	if n > len(r.data) {
		n = len(r.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

// shortWriter accepts at most limit bytes per call.
type shortWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		p = p[:w.limit]
	}
	return w.buf.Write(p)
}

func payload(size int) []byte {
	msg := map[string]string{"data": strings.Repeat("x", size)}
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func TestReadJSONReassemblesChunks(t *testing.T) {
	tests := []struct {
		size  int
		chunk int
	}{
		{1, 1},
		{1, 4096},
		{1024, 1},
		{1024, 7},
		{1024, 4096},
		{100 * 1024, 1024},
		{100 * 1024, 4096},
	}
	for _, test := range tests {
		name := fmt.Sprintf("size=%d,chunk=%d", test.size, test.chunk)
		want := payload(test.size)
		got, err := readJSON(&chunkReader{data: want, chunk: test.chunk})
		if err != nil {
			t.Errorf("%s: readJSON = error %v", name, err)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s: readJSON returned %d bytes, want %d", name, len(got), len(want))
		}
	}
}

func TestReadJSONTruncatedStream(t *testing.T) {
	whole := payload(64)
	_, err := readJSON(&chunkReader{data: whole[:len(whole)-1], chunk: 16})
	if got, want := errors.CodeOf(err), errors.CodeTransportError; got != want {
		t.Errorf("readJSON(truncated) = error %v, want code %s", err, want)
	}
}

func TestWriteMessageShortWrites(t *testing.T) {
	for _, size := range []int{1, 1024, 100 * 1024} {
		msg := payload(size)
		w := &shortWriter{limit: 10}
		if err := WriteMessage(w, msg); err != nil {
			t.Errorf("size=%d: WriteMessage = error %v", size, err)
			continue
		}
		if !bytes.Equal(w.buf.Bytes(), msg) {
			t.Errorf("size=%d: delivered %d bytes, want %d", size, w.buf.Len(), len(msg))
		}
	}
}

func TestWriteMessageFailure(t *testing.T) {
	err := WriteMessage(failWriter{}, payload(8))
	if got, want := errors.CodeOf(err), errors.CodeTransportError; got != want {
		t.Errorf("WriteMessage(failing) = error %v, want code %s", err, want)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }
