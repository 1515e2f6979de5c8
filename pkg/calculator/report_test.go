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
	"bytes"
	"context"
	"testing"

	"github.com/NVIDIA/queuestat/pkg/header"
	"github.com/NVIDIA/queuestat/pkg/queue"
	"github.com/NVIDIA/queuestat/pkg/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func newTestReport(t *testing.T, lang language.Tag, in queue.Input) *Report {
	t.Helper()
	res, err := queue.Calculate(in)
	require.NoError(t, err)
	return NewReport(res, NewLocalizer(lang))
}

func TestReport_Rows(t *testing.T) {
	in := queue.NewInput(2, 5, 1)
	in.MaxQueue = 2
	rows := newTestReport(t, language.English, in).Rows()

	// 3 inputs, 3 queue lengths, 3 waiting, 3 service, 4 summary
	require.Len(t, rows, 16)
	assert.Equal(t, serializer.Row{Field: "Arrival rate (customers per minute)", Value: "2.0"}, rows[0])
	assert.Equal(t, serializer.Row{Field: "Queue length 1", Value: "27.07%"}, rows[4])
	assert.Equal(t, serializer.Row{Field: "Average queue length", Value: "0.67 people"}, rows[12])
	assert.Equal(t, serializer.Row{Field: "Service capacity", Value: "300.0 people/hour"}, rows[15])
}

func TestReport_TableIndonesian(t *testing.T) {
	var buf bytes.Buffer
	w := serializer.NewWriter(serializer.FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), newTestReport(t, language.Indonesian, queue.NewInput(10, 8, 1))))

	out := buf.String()
	assert.Contains(t, out, "Rata-rata Panjang Antrian")
	assert.Contains(t, out, "tak terhingga")
	assert.Contains(t, out, "Kapasitas Layanan")
}

func TestReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := serializer.NewWriter(serializer.FormatYAML, &buf)
	require.NoError(t, w.Serialize(context.Background(), newTestReport(t, language.English, queue.NewInput(10, 8, 1))))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "en", got["language"])
	assert.Equal(t, "QueueReport", got["kind"])
	assert.Equal(t, header.APIVersion, got["apiVersion"])
	assert.Contains(t, got, "queueLengths", "result fields are inlined")
	summary := got["summary"].(map[string]any)
	assert.Nil(t, summary["expectedQueue"])
	assert.Equal(t, true, summary["unbounded"])
}
