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
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/NVIDIA/queuestat/pkg/defaults"
	cnserrors "github.com/NVIDIA/queuestat/pkg/errors"
	"github.com/NVIDIA/queuestat/pkg/queue"
	"github.com/NVIDIA/queuestat/pkg/serializer"
	"gopkg.in/yaml.v3"
)

// inputRequest is the POST /v1/stats body. Pointers distinguish a missing
// field from an explicit zero.
type inputRequest struct {
	ArrivalRate *float64 `json:"arrivalRate" yaml:"arrivalRate"`
	ServiceRate *float64 `json:"serviceRate" yaml:"serviceRate"`
	Counters    *int     `json:"numCounters" yaml:"numCounters"`
	MaxQueue    *int     `json:"maxQueue,omitempty" yaml:"maxQueue,omitempty"`
}

// ParseInputFromValues builds a validated Input from form or query values
// named arrival_rate, service_rate, num_counters and optionally max_queue.
func ParseInputFromValues(values url.Values) (queue.Input, error) {
	var in queue.Input
	var err error

	if in.ArrivalRate, err = parseFloatField(values, queue.FieldArrivalRate); err != nil {
		return queue.Input{}, err
	}
	if in.ServiceRate, err = parseFloatField(values, queue.FieldServiceRate); err != nil {
		return queue.Input{}, err
	}
	if in.Counters, err = parseIntField(values, queue.FieldCounters); err != nil {
		return queue.Input{}, err
	}

	in.MaxQueue = defaults.MaxQueueLength
	if strings.TrimSpace(values.Get(queue.FieldMaxQueue)) != "" {
		if in.MaxQueue, err = parseIntField(values, queue.FieldMaxQueue); err != nil {
			return queue.Input{}, err
		}
	}

	if err := in.Validate(); err != nil {
		return queue.Input{}, err
	}
	return in, nil
}

func parseFloatField(values url.Values, field string) (float64, error) {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return 0, cnserrors.InvalidField(field, field+" is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			field+" must be a number", err, map[string]any{"field": field, "value": raw})
	}
	return v, nil
}

func parseIntField(values url.Values, field string) (int, error) {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return 0, cnserrors.InvalidField(field, field+" is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			field+" must be a whole number", err, map[string]any{"field": field, "value": raw})
	}
	return v, nil
}

// ParseInputFromBody builds a validated Input from a JSON or YAML document.
// YAML is used for application/yaml, application/x-yaml and text/yaml;
// anything else is decoded as JSON. Unknown fields are rejected.
func ParseInputFromBody(body io.Reader, contentType string) (queue.Input, error) {
	if body == nil {
		return queue.Input{}, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "request body is required")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return queue.Input{}, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return queue.Input{}, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "request body is required")
	}

	var req inputRequest
	switch mediaType(contentType) {
	case "application/x-yaml", "application/yaml", "text/yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&req); err != nil {
			return queue.Input{}, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "request body is not valid YAML", err)
		}
	default:
		if err := serializer.DecodeJSON(bytes.NewReader(data), &req); err != nil {
			return queue.Input{}, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "request body is not valid JSON", err)
		}
	}

	return req.toInput()
}

func (req inputRequest) toInput() (queue.Input, error) {
	switch {
	case req.ArrivalRate == nil:
		return queue.Input{}, missing("arrivalRate", queue.FieldArrivalRate)
	case req.ServiceRate == nil:
		return queue.Input{}, missing("serviceRate", queue.FieldServiceRate)
	case req.Counters == nil:
		return queue.Input{}, missing("numCounters", queue.FieldCounters)
	}

	in := queue.NewInput(*req.ArrivalRate, *req.ServiceRate, *req.Counters)
	if req.MaxQueue != nil {
		in.MaxQueue = *req.MaxQueue
	}
	if err := in.Validate(); err != nil {
		return queue.Input{}, err
	}
	return in, nil
}

func missing(key, field string) error {
	return cnserrors.InvalidField(field, fmt.Sprintf("%s is required", key))
}

func mediaType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	return ct
}
