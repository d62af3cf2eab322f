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
	"fmt"
	"math/big"

	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/trig"
)

// Subs substitutes a named symbol with a given value throughout this series.
// Substitution in the argument of a term uses the angle addition formulae,
// hence each term generally splits into two.  For example, substituting x
// with y in c*cos(2x+z) gives c*cos(2y)*cos(z) - c*sin(2y)*sin(z).  This fails
// if the sine or cosine of a multiple of the value cannot be evaluated.
func (p Series[C, T]) Subs(name string, x C) (Series[C, T], error) {
	var (
		result    Series[C, T]
		symbols   = p.Symbols()
		remaining = symbols.Remove(name)
		index, ok = symbols.Index(name)
	)
	//
	for _, t := range p.Terms() {
		cf, err := t.Coefficient.Subs(name, x)
		//
		if err != nil {
			return Series[C, T]{}, fmt.Errorf("substituting %s in %s: %w", name, t.Coefficient.String(), err)
		}
		//
		factor := FromCoefficient[C, T](cf)
		//
		if !ok {
			// Key does not mention symbol
			result = result.Add(factor.Mul(FromTerms[C, T](symbols, series.NewTerm(cf.One(), t.Key))))
			continue
		}
		//
		n, parts := t.Key.Subs(index)
		arg := FromCoefficient[C, T](x.Scale(big.NewRat(n, 1)))
		//
		for _, part := range parts {
			value, err := arg.evaluate(part)
			//
			if err != nil {
				return Series[C, T]{}, fmt.Errorf("substituting %s in %s: %w", name, t.Key.Format(symbols), err)
			}
			//
			residual := FromTerms[C, T](remaining, series.NewTerm(cf.One(), part.Residual))
			result = result.Add(factor.Mul(residual).Mul(value))
		}
	}
	//
	return result, nil
}

// IpowSubs substitutes occurrences of a named symbol raised to the power n
// with a given value.  This only affects coefficients.
func (p Series[C, T]) IpowSubs(name string, n *big.Int, x C) (Series[C, T], error) {
	var (
		result  Series[C, T]
		symbols = p.Symbols()
	)
	//
	for _, t := range p.Terms() {
		cf, err := t.Coefficient.IpowSubs(name, n, x)
		//
		if err != nil {
			return Series[C, T]{}, fmt.Errorf("substituting %s^%s in %s: %w", name, n.String(), t.Coefficient.String(), err)
		}
		//
		single := FromTerms[C, T](symbols, series.NewTerm(cf.One(), t.Key))
		result = result.Add(FromCoefficient[C, T](cf).Mul(single))
	}
	//
	return result, nil
}

// Evaluate the factor of a substituted component for this argument.
func (p Series[C, T]) evaluate(part trig.Component) (Series[C, T], error) {
	var (
		factor Series[C, T]
		err    error
	)
	//
	if part.Sine {
		factor, err = p.Sin()
	} else {
		factor, err = p.Cos()
	}
	//
	if err == nil && part.Negated {
		factor = factor.Neg()
	}
	//
	return factor, err
}
