// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/queuestat/pkg/calculator"
	"github.com/NVIDIA/queuestat/pkg/logging"
	"github.com/NVIDIA/queuestat/pkg/server"
)

const (
	name           = "queuestatd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/queuestat/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes maps URL patterns to the calculator handlers.
func Routes(h *calculator.Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/":         h.HandlePage,
		"/v1/stats": h.HandleStats,
	}
}

// NewServer builds the calculator server. A nil cfg uses server defaults.
func NewServer(cfg *server.Config) (*server.Server, error) {
	h, err := calculator.NewHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to create calculator handler: %w", err)
	}

	opts := make([]server.Option, 0, 4)
	if cfg != nil {
		opts = append(opts, server.WithConfig(cfg))
	}
	opts = append(opts,
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(h)),
	)

	return server.New(opts...), nil
}

// Run serves the calculator until ctx is canceled or a termination signal
// arrives. Logging is left to the caller.
func Run(ctx context.Context, cfg *server.Config) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := NewServer(cfg)
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// Serve configures structured logging from the environment and runs the
// server with default configuration. It blocks until shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return Run(context.Background(), nil)
}
