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

// Package cli implements the queuestat command-line interface.
//
// # Commands
//
// calc - Calculate statistics for one scenario:
//
//	queuestat calc --arrival-rate 2 --service-rate 5 --counters 1 [--max-queue 10]
//	    [--format yaml|json|table] [--output FILE] [--lang en|id] [--input scenario.yaml]
//
// Rates are customers per minute. --input loads a JSON or YAML scenario
// (arrivalRate, serviceRate, numCounters, maxQueue); flags on the command
// line override values from the file. Invalid input exits non-zero with the
// validation message.
//
// serve - Run the HTTP form and JSON API:
//
//	queuestat serve [--port 8080] [--env-file .env]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default), JSON, and table. The table output uses the report
// language for its labels.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/queuestat/pkg/cli.version=1.0.0'"
package cli
