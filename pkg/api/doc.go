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

// Package api wires the calculator handlers into pkg/server.
//
// Usage:
//
//	func main() {
//		if err := api.Serve(); err != nil {
//			log.Fatalf("server error: %v", err)
//		}
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /          HTML form
//   - POST /          form submission, renders results
//   - GET  /v1/stats  statistics from arrival_rate, service_rate, num_counters and max_queue query parameters
//   - POST /v1/stats  statistics from a JSON or YAML body
//
// System endpoints:
//   - GET /health
//   - GET /ready
//   - GET /metrics
//
// Example:
//
//	curl -s 'http://localhost:8080/v1/stats?arrival_rate=2&service_rate=5&num_counters=1'
//
//	curl -s -X POST http://localhost:8080/v1/stats \
//	  -H 'Content-Type: application/json' -H 'Accept-Language: id' \
//	  -d '{"arrivalRate":10,"serviceRate":8,"numCounters":1}'
//
// # Configuration
//
//   - PORT: HTTP port (default 8080)
//   - LOG_LEVEL: debug, info, warn or error
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
//   - RATE_LIMIT: requests per second
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/queuestat/pkg/api.version=1.0.0'"
package api
