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

package calculator

import (
	"net/url"
	"testing"

	"github.com/NVIDIA/queuestat/pkg/queue"
)

// FuzzParseInputFromValues checks that form parsing never panics and that
// anything it accepts is safe to calculate.
func FuzzParseInputFromValues(f *testing.F) {
	f.Add("2", "5", "1", "")
	f.Add("10", "8", "1", "")
	f.Add("0.5", "0.5", "3", "0")
	f.Add("1e308", "1e-308", "1", "50")
	f.Add("", "", "", "")
	f.Add("NaN", "Inf", "-1", "51")
	f.Add("abc", "5", "1.0", "x")
	f.Add(" 2 ", "5 ", " 1", " 10 ")
	f.Add("0x10", "5", "1", "")

	f.Fuzz(func(t *testing.T, arrival, service, counters, maxQueue string) {
		v := url.Values{}
		v.Set(queue.FieldArrivalRate, arrival)
		v.Set(queue.FieldServiceRate, service)
		v.Set(queue.FieldCounters, counters)
		v.Set(queue.FieldMaxQueue, maxQueue)

		in, err := ParseInputFromValues(v)
		if err != nil {
			if fieldOf(err) == "" {
				t.Errorf("error without field context: %v", err)
			}
			return
		}

		if in.ArrivalRate <= 0 || in.ServiceRate <= 0 || in.Counters < 1 {
			t.Fatalf("accepted invalid input %+v", in)
		}
		if in.MaxQueue < 0 || in.MaxQueue > queue.MaxQueueLimit {
			t.Fatalf("accepted max queue %d", in.MaxQueue)
		}

		res, err := queue.Calculate(in)
		if err != nil {
			t.Fatalf("Calculate rejected parsed input %+v: %v", in, err)
		}
		if len(res.QueueLengths) != in.MaxQueue+1 {
			t.Errorf("expected %d rows, got %d", in.MaxQueue+1, len(res.QueueLengths))
		}
	})
}
