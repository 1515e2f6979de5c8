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

// Package server provides the HTTP server shared by the queuestat daemon
// and the serve command.
//
// Application handlers are registered by pattern and run behind a fixed
// middleware chain:
//
//	metrics -> version -> request ID -> panic recovery -> rate limit -> body limit -> logging
//
// System endpoints bypass the chain:
//
//   - GET /health  liveness
//   - GET /ready   readiness, 503 before Start and during shutdown
//   - GET /metrics Prometheus exposition
//
// When no handler is registered for "/", a JSON index of the routes is
// served there and unknown paths return a NOT_FOUND error envelope.
//
// Usage:
//
//	s := server.New(
//		server.WithName("queuestatd"),
//		server.WithVersion(version),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/v1/stats": h.HandleStats,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
//
// Configuration defaults come from pkg/defaults and may be overridden by
// the PORT, SHUTDOWN_TIMEOUT_SECONDS and RATE_LIMIT environment variables
// or by passing a Config through WithConfig.
//
// Errors are written as ErrorResponse JSON. WriteErrorFromErr maps
// pkg/errors codes to HTTP statuses and retryability.
package server
