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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/queuestat/pkg/api"
	"github.com/NVIDIA/queuestat/pkg/logging"
	"github.com/NVIDIA/queuestat/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the calculator form and JSON API over HTTP",
		Description: `Start the HTTP server with the HTML form at / and the JSON API at /v1/stats.

Configuration comes from the environment (PORT, LOG_LEVEL, RATE_LIMIT,
SHUTDOWN_TIMEOUT_SECONDS). An optional .env file is loaded first and never
overrides variables already set. --port takes precedence over PORT.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP port (default: $PORT or 8080)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file with server settings",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := buildServerConfig(cmd)
			if err != nil {
				return err
			}
			return api.Run(ctx, cfg)
		},
	}
}

// buildServerConfig loads the env file, if any, and resolves the server
// configuration from the environment and flags.
func buildServerConfig(cmd *cli.Command) (*server.Config, error) {
	if envFile := cmd.String("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
		slog.Debug("loaded env file", "path", envFile)

		// the env file may carry the log level
		if lvl := os.Getenv(logging.EnvLogLevel); lvl != "" && !cmd.IsSet("log-level") {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, lvl)
		}
	}

	cfg := server.NewConfig()
	if cmd.IsSet("port") {
		port := cmd.Int("port")
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
		}
		cfg.Port = port
	}
	return cfg, nil
}
