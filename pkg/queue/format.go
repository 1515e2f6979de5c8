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
	"strconv"
	"strings"
)

// Round2 rounds v to two decimals, ties to even.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// FormatNumber renders v rounded to two decimals in its shortest form,
// always keeping at least one fractional digit: 40 -> "40.0", 0.6667 -> "0.67".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(Round2(v), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func isInf(v float64) bool {
	return math.IsInf(v, 1)
}

// summaryWire is the encoded form of Summary. JSON cannot represent
// infinity, so an unbounded expected queue is written as null.
type summaryWire struct {
	ExpectedQueue          *float64 `json:"expectedQueue" yaml:"expectedQueue"`
	Unbounded              bool     `json:"unbounded" yaml:"unbounded"`
	UtilizationPct         float64  `json:"utilizationPct" yaml:"utilizationPct"`
	ArrivalsPerHour        float64  `json:"arrivalsPerHour" yaml:"arrivalsPerHour"`
	ServiceCapacityPerHour float64  `json:"serviceCapacityPerHour" yaml:"serviceCapacityPerHour"`
}

func (s Summary) wire() summaryWire {
	w := summaryWire{
		Unbounded:              s.Unbounded(),
		UtilizationPct:         Round2(s.UtilizationPct),
		ArrivalsPerHour:        s.ArrivalsPerHour,
		ServiceCapacityPerHour: s.ServiceCapacityPerHour,
	}
	if !w.Unbounded {
		eq := Round2(s.ExpectedQueue)
		w.ExpectedQueue = &eq
	}
	return w
}

// MarshalJSON implements json.Marshaler.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.wire())
}

// UnmarshalJSON implements json.Unmarshaler. A null or missing expectedQueue
// decodes as +Inf.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var w summaryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.ExpectedQueue = math.Inf(1)
	if w.ExpectedQueue != nil && !w.Unbounded {
		s.ExpectedQueue = *w.ExpectedQueue
	}
	s.UtilizationPct = w.UtilizationPct
	s.ArrivalsPerHour = w.ArrivalsPerHour
	s.ServiceCapacityPerHour = w.ServiceCapacityPerHour
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same shape as JSON.
func (s Summary) MarshalYAML() (any, error) {
	return s.wire(), nil
}
