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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/NVIDIA/queuestat/pkg/queue"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

// Supported languages. The first entry is the fallback.
var supportedLanguages = []language.Tag{
	language.English,
	language.Indonesian,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// Message keys are the English text. Each entry gives the Indonesian form.
var indonesian = [][2]string{
	{"Queue Statistics Calculator", "Kalkulator Statistik Antrian"},
	{"Arrival rate (customers per minute)", "Tingkat kedatangan (pelanggan per menit)"},
	{"Service rate (customers per minute)", "Tingkat layanan (pelanggan per menit)"},
	{"Number of counters", "Jumlah loket"},
	{"Calculate", "Hitung"},
	{"Queue length probability", "Probabilitas panjang antrian"},
	{"Queue length", "Panjang antrian"},
	{"Probability", "Probabilitas"},
	{"Waiting time", "Waktu tunggu"},
	{"Short (under 5 minutes)", "Singkat (< 5 menit)"},
	{"Medium (5 to 15 minutes)", "Sedang (5-15 menit)"},
	{"Long (over 15 minutes)", "Lama (> 15 menit)"},
	{"Arrivals meet or exceed capacity; waiting times are an estimate.", "Kedatangan melebihi kapasitas; waktu tunggu hanya perkiraan."},
	{"Service level", "Tingkat layanan"},
	{"Adequate", "Memadai"},
	{"Busy", "Sibuk"},
	{"Overload", "Kelebihan beban"},
	{"Summary", "Ringkasan"},
	{"Average queue length", "Rata-rata Panjang Antrian"},
	{"Counter utilization", "Utilisasi Loket"},
	{"Arrivals per hour", "Kedatangan per Jam"},
	{"Service capacity", "Kapasitas Layanan"},
	{"%s people", "%s orang"},
	{"%s people/hour", "%s orang/jam"},
	{"unbounded", "tak terhingga"},
	{"Arrival rate must be a positive number no greater than %s.", "Tingkat kedatangan harus berupa angka positif yang tidak lebih dari %s."},
	{"Service rate must be a positive number no greater than %s.", "Tingkat layanan harus berupa angka positif yang tidak lebih dari %s."},
	{"Number of counters must be a whole number from 1 to %s.", "Jumlah loket harus bilangan bulat dari 1 sampai %s."},
	{"Maximum queue length must be between 0 and %d.", "Panjang antrian maksimum harus antara 0 dan %d."},
	{"The input could not be processed.", "Masukan tidak dapat diproses."},
}

func init() {
	for _, m := range indonesian {
		if err := message.SetString(language.Indonesian, m[0], m[1]); err != nil {
			panic(fmt.Sprintf("failed to register translation %q: %v", m[0], err))
		}
	}
}

// Localizer formats user-facing text in one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocalizer returns a Localizer for tag, matched to the closest
// supported language.
func NewLocalizer(tag language.Tag) *Localizer {
	_, idx, _ := languageMatcher.Match(tag)
	matched := supportedLanguages[idx]
	return &Localizer{
		tag:     matched,
		printer: message.NewPrinter(matched),
	}
}

// LocalizerFromRequest picks the language from the lang query parameter,
// then Accept-Language, then English.
func LocalizerFromRequest(r *http.Request) *Localizer {
	if lang := r.URL.Query().Get(LangParam); lang != "" {
		if tag, err := ParseLanguage(lang); err == nil {
			return NewLocalizer(tag)
		}
	}

	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return NewLocalizer(supportedLanguages[0])
	}
	_, idx, _ := languageMatcher.Match(tags...)
	return NewLocalizer(supportedLanguages[idx])
}

// ParseLanguage parses a BCP 47 tag and fails unless it matches a
// supported language.
func ParseLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", s, err)
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("unsupported language %q, supported: %s", s, strings.Join(SupportedLanguages(), ", "))
	}
	return supportedLanguages[idx], nil
}

// SupportedLanguages returns the supported language codes.
func SupportedLanguages() []string {
	out := make([]string, 0, len(supportedLanguages))
	for _, t := range supportedLanguages {
		out = append(out, t.String())
	}
	return out
}

// Language returns the BCP 47 code of the localizer's language.
func (l *Localizer) Language() string {
	return l.tag.String()
}

// T translates key and formats it with args.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// SummaryLabels are the summary figures as display strings with units.
type SummaryLabels struct {
	ExpectedQueue   string `json:"expectedQueue" yaml:"expectedQueue"`
	Utilization     string `json:"utilization" yaml:"utilization"`
	ArrivalsPerHour string `json:"arrivalsPerHour" yaml:"arrivalsPerHour"`
	ServiceCapacity string `json:"serviceCapacity" yaml:"serviceCapacity"`
}

// Labels renders s for display, e.g. "0.67 people", "40.0%",
// "120.0 people" and "300.0 people/hour". An unbounded expected queue is
// rendered as the localized word with no unit.
func (l *Localizer) Labels(s queue.Summary) SummaryLabels {
	expected := l.T("unbounded")
	if !s.Unbounded() {
		expected = l.T("%s people", queue.FormatNumber(s.ExpectedQueue))
	}

	return SummaryLabels{
		ExpectedQueue:   expected,
		Utilization:     queue.FormatNumber(s.UtilizationPct) + "%",
		ArrivalsPerHour: l.T("%s people", queue.FormatNumber(s.ArrivalsPerHour)),
		ServiceCapacity: l.T("%s people/hour", queue.FormatNumber(s.ServiceCapacityPerHour)),
	}
}

// Limits are passed as strings so the printer does not group their digits.
var maxRateText = strconv.Itoa(queue.MaxRate)

// ErrorMessage returns a localized explanation for a validation error,
// keyed on the offending field.
func (l *Localizer) ErrorMessage(field string) string {
	switch field {
	case queue.FieldArrivalRate:
		return l.T("Arrival rate must be a positive number no greater than %s.", maxRateText)
	case queue.FieldServiceRate:
		return l.T("Service rate must be a positive number no greater than %s.", maxRateText)
	case queue.FieldCounters:
		return l.T("Number of counters must be a whole number from 1 to %s.", strconv.Itoa(queue.MaxCounters))
	case queue.FieldMaxQueue:
		return l.T("Maximum queue length must be between 0 and %d.", queue.MaxQueueLimit)
	default:
		return l.T("The input could not be processed.")
	}
}
