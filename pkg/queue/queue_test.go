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
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/NVIDIA/queuestat/pkg/errors"
)

// referenceCDF sums the Poisson PMF directly, independent of gonum.
func referenceCDF(k int, lambda float64) float64 {
	sum := 0.0
	term := math.Exp(-lambda)
	for i := 0; i <= k; i++ {
		if i > 0 {
			term *= lambda / float64(i)
		}
		sum += term
	}
	return sum
}

func TestQueueLengthProbabilities(t *testing.T) {
	t.Run("known values for lambda 2", func(t *testing.T) {
		got := QueueLengthProbabilities(2, 10)
		require.Len(t, got, 11)

		want := []float64{13.53, 27.07, 27.07, 18.04, 9.02, 3.61, 1.2, 0.34, 0.09, 0.02, 0}
		for i, row := range got {
			assert.Equal(t, i, row.Length)
			assert.InDelta(t, want[i], row.Percent, 1e-9, "length %d", i)
		}
	})

	t.Run("entry count follows maxQueue", func(t *testing.T) {
		for _, maxQueue := range []int{0, 1, 5, 10, 50} {
			assert.Len(t, QueueLengthProbabilities(3.5, maxQueue), maxQueue+1)
		}
	})

	t.Run("percentages within range and unimodal", func(t *testing.T) {
		for _, lambda := range []float64{0.5, 1, 2.5, 4, 7.2} {
			rows := QueueLengthProbabilities(lambda, 20)

			peak := 0
			for i, row := range rows {
				if row.Percent < 0 || row.Percent > 100 {
					t.Fatalf("lambda %v length %d: percent %v out of range", lambda, i, row.Percent)
				}
				if row.Percent > rows[peak].Percent {
					peak = i
				}
			}

			floor := int(math.Floor(lambda))
			if peak != floor && peak != floor-1 {
				t.Errorf("lambda %v: peak at %d, want near %d", lambda, peak, floor)
			}
			for i := 1; i <= peak; i++ {
				if rows[i].Percent < rows[i-1].Percent {
					t.Errorf("lambda %v: not rising before peak at %d", lambda, i)
				}
			}
			for i := peak + 1; i < len(rows); i++ {
				if rows[i].Percent > rows[i-1].Percent {
					t.Errorf("lambda %v: not falling after peak at %d", lambda, i)
				}
			}
		}
	})
}

func TestWaitingTimeBuckets(t *testing.T) {
	tests := []struct {
		name    string
		arrival float64
		service float64
		want    WaitingTimes
	}{
		{
			name:    "moderate load",
			arrival: 2,
			service: 5,
			want:    WaitingTimes{Short: 60, Medium: 24, Long: 16},
		},
		{
			name:    "half load",
			arrival: 1,
			service: 2,
			want:    WaitingTimes{Short: 50, Medium: 25, Long: 25},
		},
		{
			name:    "saturated",
			arrival: 10,
			service: 8,
			want:    WaitingTimes{Short: 0, Medium: 20, Long: 80, Saturated: true},
		},
		{
			name:    "exactly at capacity",
			arrival: 5,
			service: 5,
			want:    WaitingTimes{Short: 0, Medium: 20, Long: 80, Saturated: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WaitingTimeBuckets(tt.arrival, tt.service)
			assert.InDelta(t, tt.want.Short, got.Short, 1e-9)
			assert.InDelta(t, tt.want.Medium, got.Medium, 1e-9)
			assert.InDelta(t, tt.want.Long, got.Long, 1e-9)
			assert.Equal(t, tt.want.Saturated, got.Saturated)
		})
	}
}

func TestWaitingTimeBucketsLimits(t *testing.T) {
	t.Run("light load tends to all short", func(t *testing.T) {
		got := WaitingTimeBuckets(0.0001, 1000)
		assert.InDelta(t, 100, got.Short, 0.01)
		assert.InDelta(t, 0, got.Medium, 0.01)
		assert.InDelta(t, 0, got.Long, 0.01)
	})

	t.Run("near capacity tends to no short waits", func(t *testing.T) {
		got := WaitingTimeBuckets(0.9999, 1)
		assert.InDelta(t, 0, got.Short, 0.02)
		assert.False(t, got.Saturated)
	})

	t.Run("buckets stay in range below capacity", func(t *testing.T) {
		for rho := 0.01; rho < 1; rho += 0.07 {
			got := WaitingTimeBuckets(rho*3, 3)
			for _, v := range []float64{got.Short, got.Medium, got.Long} {
				if v < 0 || v > 100 {
					t.Fatalf("rho %v: bucket %v out of range", rho, v)
				}
			}
		}
	})
}

func TestServiceLevelBuckets(t *testing.T) {
	t.Run("lambda 2 one counter", func(t *testing.T) {
		got := ServiceLevelBuckets(2, 1)
		assert.InDelta(t, 40.6, got.Adequate, 1e-9)
		assert.InDelta(t, 50.91, got.Busy, 1e-9)
		assert.InDelta(t, 14.29, got.Overload, 1e-9)
	})

	t.Run("matches reference CDF", func(t *testing.T) {
		for _, lambda := range []float64{0.3, 1, 2.5, 6, 11} {
			for _, c := range []int{1, 2, 4, 8} {
				got := ServiceLevelBuckets(lambda, c)
				assert.InDelta(t, referenceCDF(c, lambda)*100, got.Adequate, 0.006,
					"adequate lambda=%v c=%d", lambda, c)
				assert.InDelta(t, (1-referenceCDF(c+2, lambda))*100, got.Overload, 0.006,
					"overload lambda=%v c=%d", lambda, c)
			}
		}
	})

	t.Run("busy is not a partition remainder", func(t *testing.T) {
		got := ServiceLevelBuckets(4, 2)
		sum := got.Adequate + got.Busy + got.Overload
		assert.Greater(t, math.Abs(100-sum), 0.1)
	})
}

func TestSummaryStatistics(t *testing.T) {
	t.Run("stable single counter", func(t *testing.T) {
		got := SummaryStatistics(2, 5, 1)
		assert.InDelta(t, 2.0/3.0, got.ExpectedQueue, 1e-12)
		assert.InDelta(t, 40, got.UtilizationPct, 1e-9)
		assert.Equal(t, 120.0, got.ArrivalsPerHour)
		assert.Equal(t, 300.0, got.ServiceCapacityPerHour)
		assert.False(t, got.Unbounded())
	})

	t.Run("saturated is unbounded", func(t *testing.T) {
		got := SummaryStatistics(10, 8, 1)
		assert.True(t, math.IsInf(got.ExpectedQueue, 1))
		assert.True(t, got.Unbounded())
		assert.InDelta(t, 125, got.UtilizationPct, 1e-9)
	})

	t.Run("saturation check ignores extra counters", func(t *testing.T) {
		got := SummaryStatistics(6, 5, 2)
		assert.True(t, got.Unbounded())
		assert.InDelta(t, 60, got.UtilizationPct, 1e-9)
		assert.Equal(t, 600.0, got.ServiceCapacityPerHour)
	})

	t.Run("hourly figures are rounded", func(t *testing.T) {
		got := SummaryStatistics(0.123, 0.5, 3)
		assert.Equal(t, 7.0, got.ArrivalsPerHour)
		assert.Equal(t, 90.0, got.ServiceCapacityPerHour)
	})
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(NewInput(2, 5, 1))
	require.NoError(t, err)

	assert.Len(t, res.QueueLengths, 11)
	assert.Equal(t, WaitingTimeBuckets(2, 5), res.WaitingTimes)
	assert.Equal(t, ServiceLevelBuckets(2, 1), res.ServiceLevels)
	assert.Equal(t, SummaryStatistics(2, 5, 1), res.Summary)
	assert.Equal(t, NewInput(2, 5, 1), res.Input)
}

func TestCalculateIsIdempotent(t *testing.T) {
	in := NewInput(3.7, 4.1, 2)

	first, err := Calculate(in)
	require.NoError(t, err)
	second, err := Calculate(in)
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"zero arrival", NewInput(0, 5, 1), FieldArrivalRate},
		{"negative arrival", NewInput(-1, 5, 1), FieldArrivalRate},
		{"NaN arrival", NewInput(math.NaN(), 5, 1), FieldArrivalRate},
		{"infinite arrival", NewInput(math.Inf(1), 5, 1), FieldArrivalRate},
		{"zero service", NewInput(2, 0, 1), FieldServiceRate},
		{"negative service", NewInput(2, -3, 1), FieldServiceRate},
		{"zero counters", NewInput(2, 5, 0), FieldCounters},
		{"counters over limit", NewInput(2, 5, MaxCounters+1), FieldCounters},
		{"counters at int limit", NewInput(2, 5, math.MaxInt), FieldCounters},
		{"arrival over limit", NewInput(1e307, 1, 1), FieldArrivalRate},
		{"service over limit", NewInput(2, MaxRate*2, 1), FieldServiceRate},
		{"service too small for utilization", NewInput(MaxRate, math.SmallestNonzeroFloat64, 1), FieldServiceRate},
		{"negative max queue", Input{ArrivalRate: 2, ServiceRate: 5, Counters: 1, MaxQueue: -1}, FieldMaxQueue},
		{"max queue too large", Input{ArrivalRate: 2, ServiceRate: 5, Counters: 1, MaxQueue: MaxQueueLimit + 1}, FieldMaxQueue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.in)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest))

			var se *cnserrors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.field, se.Context["field"])
		})
	}
}

func TestCalculateAtLimits(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"max counters", NewInput(2, 5, MaxCounters)},
		{"max rates", NewInput(MaxRate, MaxRate, MaxCounters)},
		{"busy arrivals on slow counters", NewInput(MaxRate, 1e-6, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.in)
			require.NoError(t, err)

			wantOverload := Round2((1 - referenceCDF(tt.in.Counters+2, tt.in.ArrivalRate)) * 100)
			assert.InDelta(t, wantOverload, res.ServiceLevels.Overload, 0.011)

			s := res.Summary
			for _, v := range []float64{s.UtilizationPct, s.ArrivalsPerHour, s.ServiceCapacityPerHour} {
				assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "summary %+v", s)
			}
			_, err = json.Marshal(res)
			assert.NoError(t, err)
		})
	}
}

func TestInputUtilization(t *testing.T) {
	in := NewInput(3, 2, 3)
	assert.InDelta(t, 1.5, in.Utilization(), 1e-12)
	assert.InDelta(t, 0.5, in.SystemUtilization(), 1e-12)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{40, "40.0"},
		{40.00000000000001, "40.0"},
		{2.0 / 3.0, "0.67"},
		{120, "120.0"},
		{12.5, "12.5"},
		{0.125, "0.12"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestSummaryJSON(t *testing.T) {
	t.Run("bounded", func(t *testing.T) {
		data, err := json.Marshal(SummaryStatistics(2, 5, 1))
		require.NoError(t, err)
		assert.JSONEq(t, `{"expectedQueue":0.67,"unbounded":false,"utilizationPct":40,
			"arrivalsPerHour":120,"serviceCapacityPerHour":300}`, string(data))
	})

	t.Run("unbounded encodes null", func(t *testing.T) {
		data, err := json.Marshal(SummaryStatistics(10, 8, 1))
		require.NoError(t, err)
		assert.JSONEq(t, `{"expectedQueue":null,"unbounded":true,"utilizationPct":125,
			"arrivalsPerHour":600,"serviceCapacityPerHour":480}`, string(data))

		var back Summary
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, back.Unbounded())
	})
}
