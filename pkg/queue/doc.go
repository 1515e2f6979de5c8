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

// Package queue implements the queue statistics calculator.
//
// Given an arrival rate λ and a service rate μ (customers per minute) and a
// number of service counters c, it derives four independent result groups:
//
//   - QueueLengthProbabilities: Poisson(λ) PMF over queue lengths 0..maxQueue
//   - WaitingTimeBuckets: short/medium/long waits from ρ = λ/μ
//   - ServiceLevelBuckets: adequate/busy/overload from the Poisson CDF at c and c+2
//   - SummaryStatistics: expected queue, utilization and hourly throughput
//
// All functions are pure and safe for concurrent use. They assume validated
// input; Calculate runs Input.Validate first and composes the four groups.
//
//	res, err := queue.Calculate(queue.NewInput(2, 5, 1))
//	if err != nil {
//	    return err // INVALID_REQUEST StructuredError
//	}
//	fmt.Println(res.WaitingTimes.Short) // 60
//
// A saturated system (λ >= μ) is not an error: waiting times fall back to
// {0, 20, 80} and the expected queue is +Inf.
package queue
