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
package power

import (
	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/series"
)

// DegreeCoefficient captures coefficients which have a notion of degree, such
// as polynomials.  Coefficients carry their own symbols, hence partial degrees
// are determined by name.
type DegreeCoefficient[C any] interface {
	series.Coefficient[C]
	// Degree returns the total (high) degree of this coefficient.
	Degree() rational.Rational
	// LDegree returns the total low degree of this coefficient.
	LDegree() rational.Rational
	// PartialDegree returns the high degree restricted to the named symbols.
	PartialDegree(names ...string) rational.Rational
	// PartialLDegree returns the low degree restricted to the named symbols.
	PartialLDegree(names ...string) rational.Rational
}

// DegreeKey captures keys which have a notion of degree, such as monomials.
// Keys are interpreted against the symbol set of their enclosing series, hence
// partial degrees are determined by a mask over that set.
type DegreeKey[K any] interface {
	series.Key[K]
	// Degree returns the sum of all exponents in this key.
	Degree() rational.Rational
	// PartialDegree returns the sum of all exponents selected by the mask.
	PartialDegree(mask []bool) rational.Rational
}

// Strategy determines how the degree of a term is computed from its
// coefficient and key.  Exactly one strategy exists for each pairing of
// coefficient and key where at least one has a degree.  There is no strategy
// where neither does, in which case the plain series is used instead.
type Strategy[C series.Coefficient[C], K series.Key[K]] interface {
	// TermDegree returns the degree of a term.
	TermDegree(term series.Term[C, K]) rational.Rational
	// TermLDegree returns the low degree of a term.
	TermLDegree(term series.Term[C, K]) rational.Rational
	// TermPartialDegree returns the degree of a term, restricted to a given
	// set of symbols (given both by name and as a mask over the series'
	// symbols).
	TermPartialDegree(term series.Term[C, K], names []string, mask []bool) rational.Rational
	// TermPartialLDegree returns the low degree of a term, restricted to a
	// given set of symbols.
	TermPartialLDegree(term series.Term[C, K], names []string, mask []bool) rational.Rational
}

// Both combines the degree of the coefficient and key of a term by addition.
type Both[C DegreeCoefficient[C], K DegreeKey[K]] struct{}

// TermDegree implementation for the Strategy interface.
func (Both[C, K]) TermDegree(term series.Term[C, K]) rational.Rational {
	return term.Coefficient.Degree().Add(term.Key.Degree())
}

// TermLDegree implementation for the Strategy interface.  Observe that, for a
// key, the low degree and the degree coincide.
func (Both[C, K]) TermLDegree(term series.Term[C, K]) rational.Rational {
	return term.Coefficient.LDegree().Add(term.Key.Degree())
}

// TermPartialDegree implementation for the Strategy interface.
func (Both[C, K]) TermPartialDegree(term series.Term[C, K], names []string, mask []bool) rational.Rational {
	return term.Coefficient.PartialDegree(names...).Add(term.Key.PartialDegree(mask))
}

// TermPartialLDegree implementation for the Strategy interface.
func (Both[C, K]) TermPartialLDegree(term series.Term[C, K], names []string, mask []bool) rational.Rational {
	return term.Coefficient.PartialLDegree(names...).Add(term.Key.PartialDegree(mask))
}

// KeyOnly takes the degree of a term from its key.
type KeyOnly[C series.Coefficient[C], K DegreeKey[K]] struct{}

// TermDegree implementation for the Strategy interface.
func (KeyOnly[C, K]) TermDegree(term series.Term[C, K]) rational.Rational {
	return term.Key.Degree()
}

// TermLDegree implementation for the Strategy interface.
func (KeyOnly[C, K]) TermLDegree(term series.Term[C, K]) rational.Rational {
	return term.Key.Degree()
}

// TermPartialDegree implementation for the Strategy interface.
func (KeyOnly[C, K]) TermPartialDegree(term series.Term[C, K], _ []string, mask []bool) rational.Rational {
	return term.Key.PartialDegree(mask)
}

// TermPartialLDegree implementation for the Strategy interface.
func (KeyOnly[C, K]) TermPartialLDegree(term series.Term[C, K], _ []string, mask []bool) rational.Rational {
	return term.Key.PartialDegree(mask)
}

// CoefficientOnly takes the degree of a term from its coefficient.
type CoefficientOnly[C DegreeCoefficient[C], K series.Key[K]] struct{}

// TermDegree implementation for the Strategy interface.
func (CoefficientOnly[C, K]) TermDegree(term series.Term[C, K]) rational.Rational {
	return term.Coefficient.Degree()
}

// TermLDegree implementation for the Strategy interface.
func (CoefficientOnly[C, K]) TermLDegree(term series.Term[C, K]) rational.Rational {
	return term.Coefficient.LDegree()
}

// TermPartialDegree implementation for the Strategy interface.
func (CoefficientOnly[C, K]) TermPartialDegree(term series.Term[C, K], names []string, _ []bool) rational.Rational {
	return term.Coefficient.PartialDegree(names...)
}

// TermPartialLDegree implementation for the Strategy interface.
func (CoefficientOnly[C, K]) TermPartialLDegree(term series.Term[C, K], names []string, _ []bool) rational.Rational {
	return term.Coefficient.PartialLDegree(names...)
}
