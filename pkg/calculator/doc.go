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

// Package calculator is the request boundary around pkg/queue.
//
// It turns form values, query strings and JSON or YAML bodies into a
// validated queue.Input, runs the calculation and renders the result either
// as the HTML page served at "/" or as a Report on /v1/stats.
//
// User-facing text is localized with golang.org/x/text. English is the
// default and Indonesian is selected by Accept-Language or ?lang=id.
//
// Validation failures are INVALID_REQUEST errors from pkg/errors carrying
// the offending form field under the "field" context key. The page
// re-renders the form with status 400; the API returns the standard error
// envelope.
package calculator
