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
	log "github.com/sirupsen/logrus"
)

// Integrate this series term-by-term with respect to a named symbol.  Terms
// whose key does not depend on the symbol are integrated via their
// coefficient.  Terms whose coefficient does not depend on the symbol are
// integrated via their key.  Otherwise, the term is integrated by parts which
// requires a polynomial coefficient.  Integration either succeeds for every
// term, or fails as a whole.
func (p Series[C, T]) Integrate(name string) (Series[C, T], error) {
	var (
		traits    T
		symbols   = p.Symbols()
		index, ok = symbols.Index(name)
		result    = series.New[C, trig.Key](symbols)
	)
	//
	for _, t := range p.Terms() {
		var (
			n   int64
			key trig.Key
		)
		//
		if ok {
			n, key = t.Key.Integrate(index)
		}
		//
		switch {
		case n == 0:
			cf, err := traits.Integrate(t.Coefficient, name)
			//
			if err != nil {
				return Series[C, T]{}, fmt.Errorf("integrating %s: %w", t.Coefficient.String(), err)
			}
			//
			result.Insert(cf, t.Key)
		case t.Coefficient.Partial(name).IsZero():
			result.Insert(t.Coefficient.Scale(big.NewRat(1, n)), key)
		default:
			if err := p.integrateByParts(result, t, index, name); err != nil {
				return Series[C, T]{}, err
			}
		}
	}
	//
	return Series[C, T]{result}, nil
}

// Integrate a term where both the coefficient and key depend on the symbol
// being integrated.  Let c be the coefficient, and K_0 the key with successive
// integrals K_i/m_i.  Then the integral is the sum of c_i*K_i for i = 1..d+1
// where c_1 = c/m_1 and c_i = -d(c_{i-1}/m_i)/dx, and d is the degree of c in
// the symbol.
func (p Series[C, T]) integrateByParts(result *series.Series[C, trig.Key], term Term[C], index uint,
	name string) error {
	var traits T
	//
	degree, err := traits.IntegralDegree(term.Coefficient, name)
	//
	if err != nil {
		return fmt.Errorf("integrating %s by parts: %w", term.Coefficient.String(), err)
	}
	//
	log.Debugf("integrating %s by parts with %d iterations", term.Coefficient.String(), degree)
	//
	m, key := term.Key.Integrate(index)
	cf := term.Coefficient.Scale(big.NewRat(1, m))
	result.Insert(cf, key)
	//
	for i := uint64(0); i < degree; i++ {
		m, key = key.Integrate(index)
		cf = cf.Scale(big.NewRat(1, m)).Partial(name).Neg()
		result.Insert(cf, key)
	}
	//
	return nil
}

// Partial returns the partial derivative of this series with respect to a
// named symbol, applying the product rule to each term.
func (p Series[C, T]) Partial(name string) Series[C, T] {
	var (
		symbols   = p.Symbols()
		index, ok = symbols.Index(name)
		result    = series.New[C, trig.Key](symbols)
	)
	//
	for _, t := range p.Terms() {
		result.Insert(t.Coefficient.Partial(name), t.Key)
		//
		if !ok {
			continue
		}
		//
		if f, key := t.Key.Partial(index); f != 0 {
			result.Insert(t.Coefficient.Scale(big.NewRat(f, 1)), key)
		}
	}
	//
	return Series[C, T]{result}
}
