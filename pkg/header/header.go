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

package header

import (
	"fmt"
	"time"

	cnserrors "github.com/NVIDIA/queuestat/pkg/errors"
)

// APIVersion is the schema version of the documents queuestat reads and writes.
const APIVersion = "queuestat.nvidia.com/v1"

// Kind represents the type of a queuestat document.
type Kind string

const (
	// KindScenario is a calculator input loaded from a file.
	KindScenario Kind = "QueueScenario"
	// KindReport is a calculation result with display labels.
	KindReport Kind = "QueueReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindScenario, KindReport:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithVersion records the producing tool version in the metadata.
func WithVersion(version string) Option {
	return WithMetadata("version", version)
}

// Header identifies a queuestat document. Documents written by queuestat
// always carry one; on input all fields are optional.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New returns a Header of the given kind at the current APIVersion with a
// UTC creation timestamp, then applies opts.
func New(kind Kind, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata: map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Check accepts a header read from a file when each set field matches the
// expected kind and the current APIVersion.
func (h Header) Check(want Kind) error {
	if h.Kind != "" && h.Kind != want {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected document kind %q, want %q", h.Kind, want),
			map[string]any{"field": "kind"})
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion),
			map[string]any{"field": "apiVersion"})
	}
	return nil
}
