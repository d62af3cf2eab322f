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

	"github.com/consensys/go-poisson/pkg/polynomial"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/util"
)

// Coefficient captures the operations required of the coefficients of a
// Poisson series.
type Coefficient[C any] interface {
	series.TranscendentalCoefficient[C]
	// Partial returns the partial derivative with respect to a named symbol.
	Partial(name string) C
	// Subs substitutes a named symbol with a given value.
	Subs(name string, x C) (C, error)
	// IpowSubs substitutes a named symbol raised to a given power with a
	// given value.
	IpowSubs(name string, n *big.Int, x C) (C, error)
}

// Traits determines those capabilities of a coefficient type which are not
// shared by all coefficients, namely whether it is a polynomial (hence can be
// integrated, and may be a linear combination of symbols).  These are fixed
// per coefficient type, rather than determined per value.
type Traits[C any] interface {
	// IntegralCombination extracts the linear combination of symbols
	// represented by a coefficient, if it is one.
	IntegralCombination(C) util.Option[polynomial.Combination]
	// Integrate a coefficient with respect to a named symbol.
	Integrate(C, string) (C, error)
	// IntegralDegree returns the degree of a coefficient in a named symbol,
	// provided every exponent of that symbol is a non-negative integer.
	IntegralDegree(C, string) (uint64, error)
}

// PolynomialTraits are the traits of polynomial coefficients.
type PolynomialTraits struct{}

// IntegralCombination implementation for the Traits interface.
func (PolynomialTraits) IntegralCombination(c polynomial.Polynomial) util.Option[polynomial.Combination] {
	return c.IntegralCombination()
}

// Integrate implementation for the Traits interface.
func (PolynomialTraits) Integrate(c polynomial.Polynomial, name string) (polynomial.Polynomial, error) {
	return c.Integrate(name)
}

// IntegralDegree implementation for the Traits interface.
func (PolynomialTraits) IntegralDegree(c polynomial.Polynomial, name string) (uint64, error) {
	var (
		degree    uint64
		index, ok = c.Symbols().Index(name)
	)
	//
	if !ok {
		return 0, nil
	}
	//
	for _, t := range c.Terms() {
		e := t.Key.Exponent(index)
		n, ok := e.Int64()
		//
		switch {
		case !ok:
			return 0, fmt.Errorf("exponent %s of %s in %s: %w", e.String(), name, c.String(), ErrIntegralDegree)
		case n < 0:
			return 0, fmt.Errorf("exponent %s of %s in %s: %w", e.String(), name, c.String(), ErrNegativeDegree)
		}
		//
		degree = max(degree, uint64(n))
	}
	//
	return degree, nil
}

// PlainTraits are the traits of coefficients which are neither polynomials
// nor integrable, such as rationals or field elements.
type PlainTraits[C any] struct{}

// IntegralCombination implementation for the Traits interface.
func (PlainTraits[C]) IntegralCombination(C) util.Option[polynomial.Combination] {
	return util.None[polynomial.Combination]()
}

// Integrate implementation for the Traits interface.
func (PlainTraits[C]) Integrate(c C, name string) (C, error) {
	return c, fmt.Errorf("integrating coefficient with respect to %s: %w", name, ErrNotIntegrable)
}

// IntegralDegree implementation for the Traits interface.
func (PlainTraits[C]) IntegralDegree(_ C, name string) (uint64, error) {
	return 0, fmt.Errorf("degree of coefficient in %s: %w", name, ErrNotPolynomial)
}
