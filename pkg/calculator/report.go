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
	"strconv"

	"github.com/NVIDIA/queuestat/pkg/header"
	"github.com/NVIDIA/queuestat/pkg/queue"
	"github.com/NVIDIA/queuestat/pkg/serializer"
)

// Report is a calculation result with display labels in one language.
// It is the body of /v1/stats and the output of the calc command.
type Report struct {
	header.Header `yaml:",inline"`
	queue.Result  `yaml:",inline"`

	Language string        `json:"language" yaml:"language"`
	Labels   SummaryLabels `json:"labels" yaml:"labels"`

	loc *Localizer
}

// NewReport attaches labels for loc to res. opts add header metadata.
func NewReport(res *queue.Result, loc *Localizer, opts ...header.Option) *Report {
	return &Report{
		Header:   header.New(header.KindReport, opts...),
		Result:   *res,
		Language: loc.Language(),
		Labels:   loc.Labels(res.Summary),
		loc:      loc,
	}
}

// Rows lays the report out for table output in page order.
func (r *Report) Rows() []serializer.Row {
	t := r.loc.T
	pct := func(v float64) string { return queue.FormatNumber(v) + "%" }

	rows := []serializer.Row{
		{Field: t("Arrival rate (customers per minute)"), Value: queue.FormatNumber(r.Input.ArrivalRate)},
		{Field: t("Service rate (customers per minute)"), Value: queue.FormatNumber(r.Input.ServiceRate)},
		{Field: t("Number of counters"), Value: strconv.Itoa(r.Input.Counters)},
	}

	for _, q := range r.QueueLengths {
		rows = append(rows, serializer.Row{
			Field: t("Queue length") + " " + strconv.Itoa(q.Length),
			Value: pct(q.Percent),
		})
	}

	rows = append(rows,
		serializer.Row{Field: t("Short (under 5 minutes)"), Value: pct(r.WaitingTimes.Short)},
		serializer.Row{Field: t("Medium (5 to 15 minutes)"), Value: pct(r.WaitingTimes.Medium)},
		serializer.Row{Field: t("Long (over 15 minutes)"), Value: pct(r.WaitingTimes.Long)},
		serializer.Row{Field: t("Adequate"), Value: pct(r.ServiceLevels.Adequate)},
		serializer.Row{Field: t("Busy"), Value: pct(r.ServiceLevels.Busy)},
		serializer.Row{Field: t("Overload"), Value: pct(r.ServiceLevels.Overload)},
		serializer.Row{Field: t("Average queue length"), Value: r.Labels.ExpectedQueue},
		serializer.Row{Field: t("Counter utilization"), Value: r.Labels.Utilization},
		serializer.Row{Field: t("Arrivals per hour"), Value: r.Labels.ArrivalsPerHour},
		serializer.Row{Field: t("Service capacity"), Value: r.Labels.ServiceCapacity},
	)
	return rows
}
