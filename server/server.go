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

// Package server hosts blueprint documents behind a JSON-over-TCP command
// protocol: one request, then one response, strictly alternating per
// connection.
package server

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/blueforge/blueforge/api"
)

// Server accepts client connections and feeds their commands through a
// dispatcher.
type Server struct {
	Addr           string
	ReceiveTimeout time.Duration

	dispatcher *Dispatcher
	log        zerolog.Logger
}

// New returns a server over the given store.
func New(addr string, store *DocumentStore, log zerolog.Logger) *Server {
	return &Server{
		Addr:           addr,
		ReceiveTimeout: DefaultReceiveTimeout,
		dispatcher:     NewDispatcher(store, log),
		log:            log,
	}
}

// ListenAndServe accepts connections until the context is cancelled.
// Each connection is served on its own goroutine; commands within a
// connection run strictly one at a time.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.log.Info().Str("addr", l.Addr().String()).Msg("Listening")

	go func() {
		<-ctx.Done()
		l.Close()
	}()

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()
	activeConnections.Inc()
	defer activeConnections.Dec()

	log := s.log.With().Str("remote", conn.RemoteAddr().String()).Logger()
	log.Info().Msg("Connection opened")

	for {
		raw, err := ReadMessage(conn, s.ReceiveTimeout)
		if err != nil {
			log.Warn().Err(err).Msg("Connection closed")
			return
		}
		resp := s.process(log, raw)
		out, err := json.Marshal(resp)
		if err != nil {
			log.Error().Err(err).Msg("Marshaling response")
			return
		}
		if err := WriteMessage(conn, out); err != nil {
			log.Warn().Err(err).Msg("Connection closed")
			return
		}
	}
}

func (s *Server) process(log zerolog.Logger, raw []byte) api.Response {
	start := time.Now()
	cmdType := commandType(raw)
	resp := s.dispatcher.Dispatch(raw)
	elapsed := time.Since(start)

	outcome := "ok"
	if ok, _ := resp["success"].(bool); !ok {
		outcome = "error"
	}
	commandsProcessed.WithLabelValues(cmdType, outcome).Inc()
	commandDuration.WithLabelValues(cmdType).Observe(elapsed.Seconds())
	log.Debug().
		Str("command", cmdType).
		Str("outcome", outcome).
		Dur("elapsed", elapsed).
		Msg("Command processed")
	return resp
}

// commandType peeks at the envelope for labelling. Unparseable requests
// label as "invalid".
func commandType(raw []byte) string {
	c, err := api.ParseCommand(raw)
	if err != nil {
		return "invalid"
	}
	return c.Type
}
