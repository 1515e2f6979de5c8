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
	"math"

	"github.com/NVIDIA/queuestat/pkg/defaults"
)

// Fallback waiting-time buckets for a saturated system (ρ >= 1). This is a
// policy choice meaning "most waits are long", not a derived probability.
var saturatedWaitingTimes = WaitingTimes{
	Short:     0,
	Medium:    20,
	Long:      80,
	Saturated: true,
}

// QueueLengthProbabilities returns Poisson(λ) probabilities, as percentages
// rounded to two decimals, for queue lengths 0 through maxQueue inclusive.
// The caller guarantees arrivalRate > 0 and maxQueue >= 0.
func QueueLengthProbabilities(arrivalRate float64, maxQueue int) []QueueLengthProbability {
	probs := make([]QueueLengthProbability, 0, maxQueue+1)
	for i := 0; i <= maxQueue; i++ {
		probs = append(probs, QueueLengthProbability{
			Length:  i,
			Percent: Round2(poissonPMF(i, arrivalRate) * 100),
		})
	}
	return probs
}

// WaitingTimeBuckets derives the waiting-time buckets from ρ = λ/μ.
// The caller guarantees serviceRate > 0.
func WaitingTimeBuckets(arrivalRate, serviceRate float64) WaitingTimes {
	rho := arrivalRate / serviceRate
	if rho >= 1 {
		return saturatedWaitingTimes
	}

	return WaitingTimes{
		Short:  Round2((1 - rho) * 100),
		Medium: Round2(rho * (1 - rho) * 100),
		Long:   Round2(rho * rho * 100),
	}
}

// ServiceLevelBuckets derives the service-level buckets from the Poisson CDF
// at c and c+2 counters.
func ServiceLevelBuckets(arrivalRate float64, counters int) ServiceLevels {
	atCounters := poissonCDF(counters, arrivalRate)
	withSpare := poissonCDF(counters+2, arrivalRate)

	return ServiceLevels{
		Adequate: Round2(atCounters * 100),
		Busy:     Round2((1 - atCounters) * withSpare * 100),
		Overload: Round2((1 - withSpare) * 100),
	}
}

// SummaryStatistics computes the headline figures.
//
// ExpectedQueue uses the single-counter λ/(μ−λ) form and the λ < μ
// saturation check regardless of the counter count.
func SummaryStatistics(arrivalRate, serviceRate float64, counters int) Summary {
	expected := math.Inf(1)
	if arrivalRate < serviceRate {
		expected = arrivalRate / (serviceRate - arrivalRate)
	}

	return Summary{
		ExpectedQueue:          expected,
		UtilizationPct:         arrivalRate / (serviceRate * float64(counters)) * 100,
		ArrivalsPerHour:        math.RoundToEven(arrivalRate * defaults.MinutesPerHour),
		ServiceCapacityPerHour: math.RoundToEven(serviceRate * float64(counters) * defaults.MinutesPerHour),
	}
}

// Calculate validates in and computes all four result groups. Either every
// group is returned or the input is rejected.
func Calculate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &Result{
		Input:         in,
		QueueLengths:  QueueLengthProbabilities(in.ArrivalRate, in.MaxQueue),
		WaitingTimes:  WaitingTimeBuckets(in.ArrivalRate, in.ServiceRate),
		ServiceLevels: ServiceLevelBuckets(in.ArrivalRate, in.Counters),
		Summary:       SummaryStatistics(in.ArrivalRate, in.ServiceRate, in.Counters),
	}, nil
}
