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
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NVIDIA/queuestat/pkg/defaults"
	cnserrors "github.com/NVIDIA/queuestat/pkg/errors"
	"github.com/NVIDIA/queuestat/pkg/queue"
	"github.com/NVIDIA/queuestat/pkg/serializer"
	"github.com/NVIDIA/queuestat/pkg/server"
)

const pageTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the calculator page and the JSON API.
type Handler struct {
	templates *template.Template
	cacheTTL  time.Duration
	timeout   time.Duration
}

// NewHandler parses the embedded page templates.
func NewHandler() (*Handler, error) {
	t, err := template.New("").
		Funcs(template.FuncMap{"num": queue.FormatNumber}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &Handler{
		templates: t,
		cacheTTL:  defaults.StatsCacheTTL,
		timeout:   defaults.StatsHandlerTimeout,
	}, nil
}

// formValues echoes the submitted fields back into the form.
type formValues struct {
	ArrivalRate string
	ServiceRate string
	Counters    string
}

// page is the data for index.html.
type page struct {
	Form       formValues
	Error      string
	ErrorField string
	Report     *Report

	loc *Localizer
}

// T translates key for the template.
func (p *page) T(key string) string {
	return p.loc.T(key)
}

// Lang is the document language.
func (p *page) Lang() string {
	return p.loc.Language()
}

// HandlePage serves the HTML form at "/". GET renders an empty form; POST
// computes and renders the results, or re-renders the form with a localized
// error and status 400 when the input is invalid.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		server.WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	p := &page{loc: LocalizerFromRequest(r)}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.render(w, http.StatusOK, p)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err := r.ParseForm(); err != nil {
		calculationsTotal.WithLabelValues(surfacePage, outcomeInvalid).Inc()
		slog.Debug("failed to parse form", "error", err)
		p.Error = p.loc.ErrorMessage("")
		h.render(w, http.StatusBadRequest, p)
		return
	}

	p.Form = formValues{
		ArrivalRate: strings.TrimSpace(r.PostForm.Get(queue.FieldArrivalRate)),
		ServiceRate: strings.TrimSpace(r.PostForm.Get(queue.FieldServiceRate)),
		Counters:    strings.TrimSpace(r.PostForm.Get(queue.FieldCounters)),
	}

	in, err := ParseInputFromValues(r.PostForm)
	if err != nil {
		calculationsTotal.WithLabelValues(surfacePage, outcomeInvalid).Inc()
		p.ErrorField = fieldOf(err)
		p.Error = p.loc.ErrorMessage(p.ErrorField)
		h.render(w, http.StatusBadRequest, p)
		return
	}

	res, err := calculate(ctx, surfacePage, in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to calculate statistics", nil)
		return
	}

	p.Report = NewReport(res, p.loc)
	h.render(w, http.StatusOK, p)
}

func (h *Handler) render(w http.ResponseWriter, status int, p *page) {
	w.Header().Set("Content-Language", p.Lang())
	serializer.RespondHTML(w, status, h.templates, pageTemplate, p)
}

// HandleStats serves /v1/stats. GET reads the form field names from the
// query string; POST accepts a JSON or YAML Input body.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var in queue.Input
	var err error

	switch r.Method {
	case http.MethodGet:
		in, err = ParseInputFromValues(r.URL.Query())
	case http.MethodPost:
		in, err = ParseInputFromBody(r.Body, r.Header.Get("Content-Type"))
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err != nil {
		calculationsTotal.WithLabelValues(surfaceAPI, outcomeInvalid).Inc()
		server.WriteErrorFromErr(w, r, err, "Invalid calculator input", nil)
		return
	}

	res, err := calculate(ctx, surfaceAPI, in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to calculate statistics", nil)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, NewReport(res, LocalizerFromRequest(r)))
}

// calculate runs queue.Calculate and records metrics for surface.
func calculate(ctx context.Context, surface string, in queue.Input) (*queue.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "calculation canceled", err)
	}

	start := time.Now()
	res, err := queue.Calculate(in)
	calculationDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		calculationsTotal.WithLabelValues(surface, outcomeInvalid).Inc()
		return nil, err
	case res.WaitingTimes.Saturated:
		calculationsTotal.WithLabelValues(surface, outcomeSaturated).Inc()
	default:
		calculationsTotal.WithLabelValues(surface, outcomeOK).Inc()
	}

	slog.Debug("calculated queue statistics",
		"surface", surface,
		"arrivalRate", in.ArrivalRate,
		"serviceRate", in.ServiceRate,
		"counters", in.Counters,
		"saturated", res.WaitingTimes.Saturated,
	)
	return res, nil
}

// fieldOf returns the "field" context of a structured error, if any.
func fieldOf(err error) string {
	var se *cnserrors.StructuredError
	if errors.As(err, &se) {
		if f, ok := se.Context["field"].(string); ok {
			return f
		}
	}
	return ""
}
