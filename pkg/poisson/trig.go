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

import (
	"github.com/consensys/go-poisson/pkg/polynomial"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/trig"
	"github.com/consensys/go-poisson/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// Sin returns the sine of this series.  When this series is a single
// coefficient representing an integral linear combination a of symbols, the
// result is the single term sin(a).  Otherwise, the sine is evaluated on the
// coefficient itself (which typically fails unless it is zero).
func (p Series[C, T]) Sin() (Series[C, T], error) {
	if r, ok := p.reduce(false); ok {
		return r, nil
	}
	//
	log.Debugf("evaluating sine of %s without reduction", p.String())
	//
	r, err := series.Sin(p.terms)
	//
	return Series[C, T]{r}, err
}

// Cos returns the cosine of this series.  When this series is a single
// coefficient representing an integral linear combination a of symbols, the
// result is the single term cos(a).  Otherwise, the cosine is evaluated on the
// coefficient itself (which typically fails unless it is zero).
func (p Series[C, T]) Cos() (Series[C, T], error) {
	if r, ok := p.reduce(true); ok {
		return r, nil
	}
	//
	log.Debugf("evaluating cosine of %s without reduction", p.String())
	//
	r, err := series.Cos(p.terms)
	//
	return Series[C, T]{r}, err
}

// Attempt to reduce sin(p) or cos(p) to a single trigonometric term.
func (p Series[C, T]) reduce(cosine bool) (Series[C, T], bool) {
	var traits T
	//
	if p.IsEmpty() || !p.terms.IsSingleCoefficient() {
		return Series[C, T]{}, false
	}
	//
	cf := p.terms.Coefficient()
	lc, ok := traits.IntegralCombination(cf).Get()
	//
	if !ok {
		return Series[C, T]{}, false
	}
	//
	names, multipliers, flipped, ok := multipliersOf(lc)
	//
	if !ok {
		return Series[C, T]{}, false
	}
	//
	one := cf.One()
	// sin(-a) = -sin(a), whilst cos(-a) = cos(a)
	if flipped && !cosine {
		one = one.Neg()
	}
	//
	result := series.New[C, trig.Key](symbol.NewSet(names...))
	result.Insert(one, trig.NewKey(cosine, multipliers...))
	//
	return Series[C, T]{result}, true
}

// Extract the names and multipliers of a linear combination, such that the
// leading multiplier is positive.  This fails if any multiplier does not fit
// in a machine integer.
func multipliersOf(lc polynomial.Combination) ([]string, []int64, bool, bool) {
	var (
		names       = make([]string, len(lc))
		multipliers = make([]int64, len(lc))
		flipped     = len(lc) > 0 && lc[0].Factor.Sign() < 0
	)
	//
	for i, m := range lc {
		var ok bool
		//
		if !m.Factor.IsInt64() {
			log.Debugf("multiplier %s of %s out of range", m.Factor.String(), m.Name)
			return nil, nil, false, false
		}
		//
		names[i] = m.Name
		multipliers[i] = m.Factor.Int64()
		//
		if flipped {
			if multipliers[i], ok = math.NegInt64(multipliers[i]); !ok {
				return nil, nil, false, false
			}
		}
	}
	//
	return names, multipliers, flipped, true
}
