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

// QueueLengthProbability is one row of the queue-length table.
type QueueLengthProbability struct {
	Length  int     `json:"length" yaml:"length"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// WaitingTimes holds the waiting-time buckets as percentages.
// Short is under 5 minutes, Medium 5 to 15 minutes, Long over 15 minutes.
// The buckets are a heuristic and need not sum to 100.
type WaitingTimes struct {
	Short  float64 `json:"short" yaml:"short"`
	Medium float64 `json:"medium" yaml:"medium"`
	Long   float64 `json:"long" yaml:"long"`

	// Saturated is true when ρ >= 1 and the fixed fallback was returned.
	Saturated bool `json:"saturated" yaml:"saturated"`
}

// ServiceLevels holds the service-level buckets as percentages.
// Busy is not conditioned on Overload, so the three need not sum to 100.
type ServiceLevels struct {
	Adequate float64 `json:"adequate" yaml:"adequate"`
	Busy     float64 `json:"busy" yaml:"busy"`
	Overload float64 `json:"overload" yaml:"overload"`
}

// Summary holds the headline figures. ExpectedQueue is +Inf when the
// arrival rate is not below the service rate.
type Summary struct {
	ExpectedQueue          float64
	UtilizationPct         float64
	ArrivalsPerHour        float64
	ServiceCapacityPerHour float64
}

// Unbounded reports whether the expected queue length is infinite.
func (s Summary) Unbounded() bool {
	return isInf(s.ExpectedQueue)
}

// Result is the full output of one calculation.
type Result struct {
	Input         Input                    `json:"input" yaml:"input"`
	QueueLengths  []QueueLengthProbability `json:"queueLengths" yaml:"queueLengths"`
	WaitingTimes  WaitingTimes             `json:"waitingTimes" yaml:"waitingTimes"`
	ServiceLevels ServiceLevels            `json:"serviceLevels" yaml:"serviceLevels"`
	Summary       Summary                  `json:"summary" yaml:"summary"`
}
