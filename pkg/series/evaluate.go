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
package series

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ErrNotEvaluable signals that a transcendental function cannot be evaluated
// exactly on a given series.
var ErrNotEvaluable = errors.New("cannot evaluate transcendental function")

// TranscendentalCoefficient is the constraint satisfied by coefficients of
// series on which the generic sine and cosine evaluators operate.
type TranscendentalCoefficient[C any] interface {
	Coefficient[C]
	Transcendental[C]
}

// Sin computes the sine of a series.  This is only defined when the series is a
// single coefficient, in which case evaluation is delegated to the
// coefficient.  Observe that, for the empty series, sin(0) = 0.
func Sin[C TranscendentalCoefficient[C], K Key[K]](s *Series[C, K]) (*Series[C, K], error) {
	return evaluate(s, "sine", func(c C) (C, error) { return c.Sin() })
}

// Cos computes the cosine of a series.  This is only defined when the series is
// a single coefficient, in which case evaluation is delegated to the
// coefficient.  Observe that, for the empty series, cos(0) = 1.
func Cos[C TranscendentalCoefficient[C], K Key[K]](s *Series[C, K]) (*Series[C, K], error) {
	return evaluate(s, "cosine", func(c C) (C, error) { return c.Cos() })
}

func evaluate[C TranscendentalCoefficient[C], K Key[K]](s *Series[C, K], name string,
	fn func(C) (C, error)) (*Series[C, K], error) {
	//
	if !s.IsSingleCoefficient() {
		return nil, fmt.Errorf("%s of series with %d terms: %w", name, s.Len(), ErrNotEvaluable)
	}
	//
	val, err := fn(s.Coefficient())
	//
	if err != nil {
		return nil, fmt.Errorf("%s of series coefficient: %w", name, err)
	}
	//
	log.Debugf("evaluated %s of single coefficient %s", name, s.String())
	//
	var (
		key K
		res = New[C, K](s.Symbols())
	)
	//
	res.Insert(val, key.Unit(s.Symbols()))
	//
	return res, nil
}
