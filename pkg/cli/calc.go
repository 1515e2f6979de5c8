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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/queuestat/pkg/calculator"
	"github.com/NVIDIA/queuestat/pkg/defaults"
	cnserrors "github.com/NVIDIA/queuestat/pkg/errors"
	"github.com/NVIDIA/queuestat/pkg/header"
	"github.com/NVIDIA/queuestat/pkg/queue"
	"github.com/NVIDIA/queuestat/pkg/serializer"
)

// scenario is the on-disk form of a calculator input. Pointer fields tell
// an omitted value apart from an explicit zero.
type scenario struct {
	header.Header `yaml:",inline"`

	ArrivalRate *float64 `json:"arrivalRate,omitempty" yaml:"arrivalRate,omitempty"`
	ServiceRate *float64 `json:"serviceRate,omitempty" yaml:"serviceRate,omitempty"`
	Counters    *int     `json:"numCounters,omitempty" yaml:"numCounters,omitempty"`
	MaxQueue    *int     `json:"maxQueue,omitempty" yaml:"maxQueue,omitempty"`
}

func (s *scenario) apply(in *queue.Input) {
	if s.ArrivalRate != nil {
		in.ArrivalRate = *s.ArrivalRate
	}
	if s.ServiceRate != nil {
		in.ServiceRate = *s.ServiceRate
	}
	if s.Counters != nil {
		in.Counters = *s.Counters
	}
	if s.MaxQueue != nil {
		in.MaxQueue = *s.MaxQueue
	}
}

func calcCmd() *cli.Command {
	return &cli.Command{
		Name:                  "calc",
		EnableShellCompletion: true,
		Usage:                 "Calculate queue statistics for one scenario",
		Description: `Calculate queue statistics from an arrival rate, a service rate and a
number of service counters. Rates are customers per minute.

The result contains:
  - Queue-length probabilities for 0..max-queue waiting customers
  - Waiting-time buckets (short, medium, long)
  - Service-level buckets (adequate, busy, overload)
  - Summary statistics (expected queue, utilization, hourly figures)

Inputs can be loaded from a JSON or YAML scenario file with --input;
flags given on the command line override values from the file.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:    "arrival-rate",
				Aliases: []string{"a"},
				Usage:   fmt.Sprintf("Customer arrival rate per minute (0 < rate <= %d)", queue.MaxRate),
			},
			&cli.FloatFlag{
				Name:    "service-rate",
				Aliases: []string{"s"},
				Usage:   fmt.Sprintf("Customers served per minute by one counter (0 < rate <= %d)", queue.MaxRate),
			},
			&cli.IntFlag{
				Name:    "counters",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Number of service counters (1..%d)", queue.MaxCounters),
			},
			&cli.IntFlag{
				Name:  "max-queue",
				Value: defaults.MaxQueueLength,
				Usage: fmt.Sprintf("Largest queue length in the probability table (0..%d)", queue.MaxQueueLimit),
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"f"},
				Usage:   "Path to a JSON or YAML scenario file",
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: fmt.Sprintf("Report language (supported values: %s)",
					strings.Join(calculator.SupportedLanguages(), ", ")),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			tag, err := calculator.ParseLanguage(cmd.String("lang"))
			if err != nil {
				return err
			}

			in, err := buildInputFromCmd(cmd)
			if err != nil {
				return fmt.Errorf("error parsing calculator input: %w", err)
			}

			res, err := queue.Calculate(in)
			if err != nil {
				return fmt.Errorf("invalid calculator input: %w", err)
			}
			slog.Debug("calculated queue statistics",
				"arrivalRate", in.ArrivalRate,
				"serviceRate", in.ServiceRate,
				"counters", in.Counters,
				"unbounded", res.Summary.Unbounded())

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, calculator.NewReport(res, calculator.NewLocalizer(tag), header.WithVersion(version)))
		},
	}
}

// buildInputFromCmd merges the optional scenario file with the flags set on
// the command line. Without a file the three rate flags are required.
func buildInputFromCmd(cmd *cli.Command) (queue.Input, error) {
	in := queue.NewInput(0, 0, 0)

	path := cmd.String("input")
	if path != "" {
		sc, err := serializer.FromFile[scenario](path)
		if err != nil {
			return in, fmt.Errorf("failed to load scenario from %q: %w", path, err)
		}
		if err := sc.Check(header.KindScenario); err != nil {
			return in, err
		}
		sc.apply(&in)
	} else {
		for _, f := range []struct{ flag, field string }{
			{"arrival-rate", queue.FieldArrivalRate},
			{"service-rate", queue.FieldServiceRate},
			{"counters", queue.FieldCounters},
		} {
			if !cmd.IsSet(f.flag) {
				return in, cnserrors.InvalidField(f.field, fmt.Sprintf("--%s is required without --input", f.flag))
			}
		}
	}

	if cmd.IsSet("arrival-rate") {
		in.ArrivalRate = cmd.Float("arrival-rate")
	}
	if cmd.IsSet("service-rate") {
		in.ServiceRate = cmd.Float("service-rate")
	}
	if cmd.IsSet("counters") {
		in.Counters = cmd.Int("counters")
	}
	if cmd.IsSet("max-queue") || path == "" {
		in.MaxQueue = cmd.Int("max-queue")
	}

	return in, nil
}
