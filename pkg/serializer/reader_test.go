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

package serializer

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"in.json", FormatJSON},
		{"IN.JSON", FormatJSON},
		{"in.yaml", FormatYAML},
		{"in.yml", FormatYAML},
		{"out.txt", FormatTable},
		{"out.table", FormatTable},
		{"noext", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewReader_RejectsTable(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	require.Error(t, err)

	_, err = NewReader("xml", strings.NewReader(""))
	require.Error(t, err)
}

func TestReader_Deserialize(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: lunch\narrivalRate: 2.5\nnumCounters: 2\n"))
	require.NoError(t, err)

	var got scenario
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, scenario{Name: "lunch", Arrival: 2.5, Counters: 2}, got)
	assert.NoError(t, r.Close())

	var nilReader *Reader
	assert.Error(t, nilReader.Deserialize(&got))
	assert.NoError(t, nilReader.Close())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "s.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"evening","arrivalRate":4,"numCounters":3}`), 0o600))

	got, err := FromFile[scenario](jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "evening", got.Name)
	assert.Equal(t, 3, got.Counters)

	_, err = FromFile[scenario](filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("arrivalRate: [oops"), 0o600))
	_, err = FromFile[scenario](badPath)
	assert.Error(t, err)
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRespondHTML(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`<p>{{.}}</p>`))

	rec := httptest.NewRecorder()
	RespondHTML(rec, http.StatusBadRequest, tmpl, "page", "hello")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hello</p>", rec.Body.String())
}

type failingRenderer struct{}

func (failingRenderer) ExecuteTemplate(_ io.Writer, _ string, _ any) error {
	return errors.New("boom")
}

func TestRespondHTML_RenderFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondHTML(rec, http.StatusOK, failingRenderer{}, "page", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<p>")
}

func TestDecodeJSON(t *testing.T) {
	var got scenario
	require.NoError(t, DecodeJSON(strings.NewReader(`{"name":"a","arrivalRate":1}`), &got))
	assert.Equal(t, 1.0, got.Arrival)

	assert.Error(t, DecodeJSON(strings.NewReader(`{"unknown":1}`), &got))
	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"a"} {"name":"b"}`), &got))
	assert.Error(t, DecodeJSON(strings.NewReader(``), &got))
}
