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

package server

import (
	"testing"
	"time"

	"github.com/NVIDIA/queuestat/pkg/defaults"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvShutdownTimeout, "")
	t.Setenv(EnvRateLimit, "")

	cfg := parseConfig()

	assert.Equal(t, "server", cfg.Name)
	assert.Empty(t, cfg.Address)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, rate.Limit(defaults.ServerRateLimit), cfg.RateLimit)
	assert.Equal(t, defaults.ServerRateLimitBurst, cfg.RateLimitBurst)
	assert.Equal(t, int64(defaults.ServerMaxBodyBytes), cfg.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestParseConfig_Environment(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg *Config)
	}{
		{"port", EnvPort, "9090", func(t *testing.T, cfg *Config) {
			assert.Equal(t, 9090, cfg.Port)
		}},
		{"malformed port ignored", EnvPort, "eighty", func(t *testing.T, cfg *Config) {
			assert.Equal(t, 8080, cfg.Port)
		}},
		{"out of range port ignored", EnvPort, "70000", func(t *testing.T, cfg *Config) {
			assert.Equal(t, 8080, cfg.Port)
		}},
		{"shutdown timeout", EnvShutdownTimeout, "5", func(t *testing.T, cfg *Config) {
			assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
		}},
		{"negative shutdown ignored", EnvShutdownTimeout, "-1", func(t *testing.T, cfg *Config) {
			assert.Equal(t, defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
		}},
		{"rate limit raises burst", EnvRateLimit, "500", func(t *testing.T, cfg *Config) {
			assert.Equal(t, rate.Limit(500), cfg.RateLimit)
			assert.Equal(t, 500, cfg.RateLimitBurst)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			tt.check(t, parseConfig())
		})
	}
}
