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
	"gonum.org/v1/gonum/stat/distuv"
)

// poissonPMF returns P(X = k) for X ~ Poisson(lambda).
func poissonPMF(k int, lambda float64) float64 {
	return distuv.Poisson{Lambda: lambda}.Prob(float64(k))
}

// poissonCDF returns P(X <= k) for X ~ Poisson(lambda).
func poissonCDF(k int, lambda float64) float64 {
	return distuv.Poisson{Lambda: lambda}.CDF(float64(k))
}
