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

// Package logging configures log/slog for queuestat binaries.
//
// Records are JSON on stderr and always carry "module" and "version"
// attributes. Debug level adds source locations. The level comes from the
// LOG_LEVEL environment variable (debug, info, warn, error; default info) or
// from an explicit value such as the CLI --log-level flag.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("queuestatd", version)
//	    slog.Info("calculator ready", "port", 8080)
//	}
//
// Explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("queuestat", version, "debug")
//
// Example record:
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"server started",
//	 "module":"queuestatd","version":"v1.0.0","port":8080}
package logging
