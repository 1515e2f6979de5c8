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

package queue

import (
	"fmt"
	"math"

	"github.com/NVIDIA/queuestat/pkg/defaults"
	cnserrors "github.com/NVIDIA/queuestat/pkg/errors"
)

// Form field names shared by the HTML form, the JSON API errors and the CLI.
const (
	FieldArrivalRate = "arrival_rate"
	FieldServiceRate = "service_rate"
	FieldCounters    = "num_counters"
	FieldMaxQueue    = "max_queue"
)

// Limits enforced by Validate.
const (
	MaxQueueLimit = defaults.MaxQueueLengthLimit
	MaxRate       = defaults.MaxRate
	MaxCounters   = defaults.MaxCounters
)

// Input holds the three calculator parameters plus the table size.
// Rates are customers per minute.
type Input struct {
	ArrivalRate float64 `json:"arrivalRate" yaml:"arrivalRate"`
	ServiceRate float64 `json:"serviceRate" yaml:"serviceRate"`
	Counters    int     `json:"numCounters" yaml:"numCounters"`
	MaxQueue    int     `json:"maxQueue" yaml:"maxQueue"`
}

// NewInput returns an Input with the default queue-length table size.
func NewInput(arrivalRate, serviceRate float64, counters int) Input {
	return Input{
		ArrivalRate: arrivalRate,
		ServiceRate: serviceRate,
		Counters:    counters,
		MaxQueue:    defaults.MaxQueueLength,
	}
}

// Validate rejects inputs the calculator functions are undefined for.
// The returned error is an INVALID_REQUEST StructuredError naming the field.
func (in Input) Validate() error {
	if err := validateRate(FieldArrivalRate, in.ArrivalRate); err != nil {
		return err
	}
	if err := validateRate(FieldServiceRate, in.ServiceRate); err != nil {
		return err
	}
	if in.Counters < 1 || in.Counters > MaxCounters {
		e := cnserrors.InvalidField(FieldCounters,
			fmt.Sprintf("num_counters must be between 1 and %d", MaxCounters))
		e.Context["max"] = MaxCounters
		return e
	}
	if in.MaxQueue < 0 || in.MaxQueue > MaxQueueLimit {
		e := cnserrors.InvalidField(FieldMaxQueue,
			fmt.Sprintf("max_queue must be between 0 and %d", MaxQueueLimit))
		e.Context["max"] = MaxQueueLimit
		return e
	}
	// utilization is λ/(μ·c) and must survive percent conversion and rounding
	if !representable(in.SystemUtilization() * 100) {
		return cnserrors.InvalidField(FieldServiceRate, "service_rate is too small for arrival_rate")
	}
	return nil
}

// representable reports whether v stays finite through Round2.
func representable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v*100, 0)
}

func validateRate(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cnserrors.InvalidField(field, field+" must be a finite number")
	}
	if v <= 0 {
		return cnserrors.InvalidField(field, field+" must be greater than 0")
	}
	if v > MaxRate {
		e := cnserrors.InvalidField(field, fmt.Sprintf("%s must not exceed %d", field, MaxRate))
		e.Context["max"] = MaxRate
		return e
	}
	return nil
}

// Utilization returns ρ = λ/μ, the per-counter load used by the waiting-time
// buckets.
func (in Input) Utilization() float64 {
	return in.ArrivalRate / in.ServiceRate
}

// SystemUtilization returns λ/(μ·c), the load spread across all counters.
func (in Input) SystemUtilization() float64 {
	return in.ArrivalRate / (in.ServiceRate * float64(in.Counters))
}
