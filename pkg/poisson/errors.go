// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poisson

import "errors"

// ErrNotIntegrable signals that integration requires integrating a coefficient
// whose type does not support integration.
var ErrNotIntegrable = errors.New("unable to integrate Poisson series: coefficient type is not integrable")

// ErrNotPolynomial signals that integration requires integration by parts of a
// coefficient whose type is not a polynomial.
var ErrNotPolynomial = errors.New("unable to integrate Poisson series: coefficient type is not a polynomial")

// ErrIntegralDegree signals that integration by parts encountered a
// polynomial coefficient whose degree is not integral.
var ErrIntegralDegree = errors.New("unable to integrate Poisson series: cannot extract integral degree of polynomial coefficient")

// ErrNegativeDegree signals that integration by parts encountered a
// polynomial coefficient with a negative integral degree.
var ErrNegativeDegree = errors.New("unable to integrate Poisson series: polynomial coefficient has negative integral degree")
