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
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	commandsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blueforge",
			Subsystem: "server",
			Name:      "commands_total",
			Help:      "Commands processed, by command type and outcome.",
		},
		[]string{"command", "outcome"},
	)

	commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "blueforge",
			Subsystem: "server",
			Name:      "command_duration_seconds",
			Help:      "Command processing time, by command type.",
		},
		[]string{"command"},
	)

	activeConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "blueforge",
			Subsystem: "server",
			Name:      "active_connections",
			Help:      "Currently open client connections.",
		},
	)
)

func init() {
	prometheus.MustRegister(commandsProcessed, commandDuration, activeConnections)
}

// ServeMetrics exposes the prometheus registry over HTTP. It blocks.
func ServeMetrics(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
