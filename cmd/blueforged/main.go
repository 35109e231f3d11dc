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

// The blueforged command serves blueprint documents over the JSON command
// protocol.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	_ "github.com/blueforge/blueforge/model/kinds"
	"github.com/blueforge/blueforge/server"
)

func main() {
	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BLUEFORGE")
	v.AutomaticEnv()
	v.SetDefault("listen_addr", "127.0.0.1:55557")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("receive_timeout", server.DefaultReceiveTimeout)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)

	log := newLogger(v.GetString("log_level"), v.GetBool("log_pretty"))

	if addr := v.GetString("metrics_addr"); addr != "" {
		go func() {
			if err := server.ServeMetrics(addr); err != nil {
				log.Error().Err(err).Msg("Metrics listener failed")
			}
		}()
		log.Info().Str("addr", addr).Msg("Serving metrics")
	}

	srv := server.New(v.GetString("listen_addr"), server.NewDocumentStore(), log)
	srv.ReceiveTimeout = v.GetDuration("receive_timeout")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("Shut down")
}

func newLogger(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
