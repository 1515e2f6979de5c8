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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// StatsHandlerTimeout bounds a single calculator request, page or API.
	StatsHandlerTimeout = 10 * time.Second

	// StatsCacheTTL is the Cache-Control max-age for calculator responses.
	// Results are a pure function of the query, so they can be cached freely.
	StatsCacheTTL = 5 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits.
const (
	// ServerRateLimit is the sustained request rate per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket size.
	ServerRateLimitBurst = 200

	// ServerMaxBodyBytes caps form and JSON request bodies.
	ServerMaxBodyBytes = 64 << 10
)

// Calculator defaults.
const (
	// MaxQueueLength is the default upper bound of the queue-length table.
	MaxQueueLength = 10

	// MaxQueueLengthLimit is the largest table a caller may request.
	MaxQueueLengthLimit = 50

	// MaxRate is the largest arrival or service rate, in customers per minute.
	MaxRate = 1_000_000

	// MaxCounters is the largest number of service counters.
	MaxCounters = 1000

	// MinutesPerHour converts per-minute rates into hourly figures.
	MinutesPerHour = 60
)
